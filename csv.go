package heredity

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
)

// ReadCSV parses a pedigree from CSV data with a header row naming the
// columns name, mother, father, and trait (in any order; extra columns are
// ignored). mother and father must both be blank or both be names present in
// the file. trait is 1 or 0 when observed, blank otherwise.
func ReadCSV(r io.Reader) (*Pedigree, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("reading pedigree header: %w", err))
	}

	cols := make(map[string]int, len(header))
	for i, col := range header {
		cols[col] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := cols[required]; !ok {
			return nil, pfx.Err(fmt.Errorf("pedigree header is missing the %q column", required))
		}
	}

	var people []Person
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		var trait TraitObservation
		if err := trait.scanText(record[cols["trait"]]); err != nil {
			return nil, pfx.Err(fmt.Errorf("person %q: %w", record[cols["name"]], err))
		}

		people = append(people, Person{
			Name:   record[cols["name"]],
			Mother: record[cols["mother"]],
			Father: record[cols["father"]],
			Trait:  trait.Ptr(),
		})
	}

	return NewPedigree(people)
}
