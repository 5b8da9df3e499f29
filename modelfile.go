package heredity

import (
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

// modelFile is the YAML shape of a probability-model override. Every field is
// optional; omitted values keep the DefaultModel constants.
//
//	gene:
//	  0: 0.96
//	  1: 0.03
//	  2: 0.01
//	trait:
//	  0: 0.01
//	  1: 0.56
//	  2: 0.65
//	mutation: 0.01
type modelFile struct {
	Gene     map[int]float64 `yaml:"gene"`
	Trait    map[int]float64 `yaml:"trait"`
	Mutation *float64        `yaml:"mutation"`
}

// LoadModel reads a probability model from a YAML file at path.
func LoadModel(path string) (*Model, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer fh.Close()

	return ParseModel(fh)
}

// ParseModel decodes a YAML probability model, applying any values present on
// top of DefaultModel and validating the result.
func ParseModel(r io.Reader) (*Model, error) {
	var mf modelFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil {
		return nil, pfx.Err(err)
	}

	m := DefaultModel()
	for g, p := range mf.Gene {
		if g < 0 || g > 2 {
			return nil, pfx.Err(fmt.Errorf("gene prior declared for %d copies; copy counts are 0, 1, or 2", g))
		}
		m.Gene[g] = p
	}
	for g, p := range mf.Trait {
		if g < 0 || g > 2 {
			return nil, pfx.Err(fmt.Errorf("trait probability declared for %d copies; copy counts are 0, 1, or 2", g))
		}
		m.TraitGivenGene[g] = p
	}
	if mf.Mutation != nil {
		m.Mutation = *mf.Mutation
	}

	if err := m.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	return m, nil
}
