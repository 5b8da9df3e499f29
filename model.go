package heredity

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// Model holds the probability constants the network factorizes over: the
// unconditional prior on carrying 0, 1, or 2 copies of the variant, the
// probability of expressing the trait conditional on each copy count, and the
// per-transmission mutation rate. A Model is read-only once built and may be
// shared across concurrent inference runs.
type Model struct {
	Gene           [3]float64 // prior over carrying 0, 1, or 2 copies
	TraitGivenGene [3]float64 // P(trait present | copies carried), indexed by copy count
	Mutation       float64    // probability a transmitted allele flips type
}

// DefaultModel returns the standard constants for the studied variant.
func DefaultModel() *Model {
	return &Model{
		Gene:           [3]float64{0.96, 0.03, 0.01},
		TraitGivenGene: [3]float64{0.01, 0.56, 0.65},
		Mutation:       0.01,
	}
}

// Validate checks that the model describes valid probabilities: the gene
// prior sums to 1 and every entry lies in [0, 1].
func (m *Model) Validate() error {
	sum := 0.0
	for g, p := range m.Gene {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("gene prior for %d copies is %v, outside [0, 1]", g, p))
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		return pfx.Err(fmt.Errorf("gene prior sums to %v, expected 1", sum))
	}
	for g, p := range m.TraitGivenGene {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("trait probability given %d copies is %v, outside [0, 1]", g, p))
		}
	}
	if m.Mutation < 0 || m.Mutation > 1 {
		return pfx.Err(fmt.Errorf("mutation rate is %v, outside [0, 1]", m.Mutation))
	}
	return nil
}

// passProb is the probability that a parent carrying g copies transmits the
// variant to a child, accounting for mutation of the transmitted allele. A
// heterozygous parent transmits either allele with equal chance, so mutation
// cancels and the probability stays 0.5.
func (m *Model) passProb(g int) float64 {
	switch g {
	case 2:
		return 1 - m.Mutation
	case 1:
		return 0.5
	default:
		return m.Mutation
	}
}
