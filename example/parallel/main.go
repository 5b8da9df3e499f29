package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/jnale-hub/heredity"
)

// Runs exact inference over many pedigree files concurrently, one independent
// inference per file. Usage: parallel [-model model.yaml] data1.csv data2.csv ...

type inferred struct {
	path    string
	ped     *heredity.Pedigree
	results heredity.Results
}

func main() {
	modelPath := flag.String("model", "", "Optional YAML probability model shared by every run")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.PrintDefaults()
		log.Fatalln("No pedigree files given")
	}

	model := (*heredity.Model)(nil)
	if *modelPath != "" {
		var err error
		if model, err = heredity.LoadModel(*modelPath); err != nil {
			log.Fatalln(err)
		}
	}

	paths := make(chan string)
	output := make(chan inferred)

	// The accumulator goroutine is the only printer, so per-file output is
	// never interleaved.
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for res := range output {
			fmt.Printf("==> %s\n", res.path)
			for _, name := range res.ped.Names() {
				posterior := res.results[name]
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
	}()

	// Each worker runs whole inferences; runs share only the read-only model.
	log.Println("Launching", runtime.NumCPU(), "workers")
	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				ped, err := heredity.Open(path)
				if err != nil {
					log.Println(err)
					continue
				}
				results, err := heredity.Infer(ped, model)
				if err != nil {
					log.Println(err)
					continue
				}
				output <- inferred{path: path, ped: ped, results: results}
			}
		}()
	}

	for _, path := range flag.Args() {
		paths <- path
	}
	close(paths)
	wg.Wait()
	close(output)
	<-printed
}
