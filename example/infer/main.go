package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/jnale-hub/heredity"
)

func main() {
	path := flag.String("data", "", "Pedigree to process: a CSV file (optionally .gz/.zst compressed, or gs://bucket/object, or - for stdin), or a SQLite database ending in .db or .sqlite")
	modelPath := flag.String("model", "", "Optional YAML probability model; the built-in constants are used when empty")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file given")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	model := (*heredity.Model)(nil)
	if *modelPath != "" {
		var err error
		if model, err = heredity.LoadModel(*modelPath); err != nil {
			log.Fatalln(err)
		}
	}

	var ped *heredity.Pedigree
	var err error
	if strings.HasSuffix(*path, ".db") || strings.HasSuffix(*path, ".sqlite") {
		db, err := heredity.OpenDB(*path)
		if err != nil {
			log.Fatalln(err)
		}
		defer db.Close()
		if ped, err = db.Read(); err != nil {
			log.Fatalln(err)
		}
	} else if ped, err = heredity.Open(*path); err != nil {
		log.Fatalln(err)
	}

	log.Printf("Scoring %.0f joint assignments for %d people\n", heredity.AssignmentCount(ped), ped.Len())

	results, err := heredity.Infer(ped, model)
	if err != nil {
		log.Fatalln(err)
	}

	for _, name := range ped.Names() {
		posterior := results[name]
		fmt.Printf("%s:\n", name)
		fmt.Printf("  Gene:\n")
		for genes := 2; genes >= 0; genes-- {
			fmt.Printf("    %d: %.4f\n", genes, posterior.Gene[genes])
		}
		fmt.Printf("  Trait:\n")
		fmt.Printf("    True: %.4f\n", posterior.Trait.Present)
		fmt.Printf("    False: %.4f\n", posterior.Trait.Absent)
	}
}
