package heredity

import (
	"errors"
	"fmt"

	"github.com/carbocation/pfx"
)

// ErrInconsistentEvidence is returned when no joint assignment has nonzero
// probability under the observed traits. This cannot happen under
// DefaultModel, whose factors are all strictly positive; it becomes reachable
// with user-supplied models containing zero entries (e.g. a zero mutation
// rate).
var ErrInconsistentEvidence = errors.New("no joint assignment is consistent with the observed traits")

// GeneDist is a probability distribution over carrying 0, 1, or 2 copies of
// the variant, indexed by copy count.
type GeneDist [3]float64

// TraitDist is a probability distribution over expressing the trait.
type TraitDist struct {
	Present float64
	Absent  float64
}

// Posterior holds one person's two normalized posterior distributions.
type Posterior struct {
	Gene  GeneDist
	Trait TraitDist
}

// Results maps each person's name to their posterior distributions.
type Results map[string]*Posterior

// Infer runs exact inference over the pedigree: it enumerates every joint
// assignment consistent with the observed traits, scores each with the joint
// evaluator, accumulates the scores into per-person marginals, and normalizes
// them. A nil model means DefaultModel. The cost is exponential in pedigree
// size; this is exact enumeration, intended for small pedigrees.
func Infer(ped *Pedigree, m *Model) (Results, error) {
	if m == nil {
		m = DefaultModel()
	}
	if err := m.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	// Observed-trait evidence as two masks: who was observed at all, and who
	// among those expresses the trait. A candidate haveTrait set is
	// consistent with the evidence exactly when it agrees with expressed on
	// every observed bit.
	var observed, expressed uint64
	for i, name := range ped.names {
		if t := ped.people[name].Trait; t != nil {
			observed |= 1 << uint(i)
			if *t {
				expressed |= 1 << uint(i)
			}
		}
	}

	acc := newAccumulator(ped.Len())
	full := ped.universe()

	traits := newSubsetIter(full)
	for haveTrait, ok := traits.Next(); ok; haveTrait, ok = traits.Next() {
		if haveTrait&observed != expressed {
			continue
		}

		ones := newSubsetIter(full)
		for oneGene, ok := ones.Next(); ok; oneGene, ok = ones.Next() {
			twos := newSubsetIter(full &^ oneGene)
			for twoGenes, ok := twos.Next(); ok; twoGenes, ok = twos.Next() {
				acc.add(oneGene, twoGenes, haveTrait, ped.joint(m, oneGene, twoGenes, haveTrait))
			}
		}
	}

	return acc.normalize(ped)
}

// accumulator keeps each person's running sums of unnormalized probability
// mass, bucketed by assigned copy count and by assigned trait value. Buckets
// start at zero and only grow; every joint probability is non-negative.
type accumulator struct {
	gene  [][3]float64
	trait [][2]float64 // index 0 = trait absent, 1 = trait present
}

func newAccumulator(n int) *accumulator {
	return &accumulator{
		gene:  make([][3]float64, n),
		trait: make([][2]float64, n),
	}
}

// add folds one scored combination into every person's buckets.
func (acc *accumulator) add(oneGene, twoGenes, haveTrait uint64, p float64) {
	for i := range acc.gene {
		acc.gene[i][genesOf(i, oneGene, twoGenes)] += p
		acc.trait[i][(haveTrait>>uint(i))&1] += p
	}
}

// normalize rescales every person's two distributions to sum to 1, keeping
// relative proportions. A zero sum means no assignment survived the evidence
// filter with nonzero mass, which is reported rather than divided through.
func (acc *accumulator) normalize(ped *Pedigree) (Results, error) {
	out := make(Results, len(ped.names))

	for i, name := range ped.names {
		geneSum := acc.gene[i][0] + acc.gene[i][1] + acc.gene[i][2]
		traitSum := acc.trait[i][0] + acc.trait[i][1]
		if geneSum <= 0 || traitSum <= 0 {
			return nil, pfx.Err(fmt.Errorf("person %q: %w", name, ErrInconsistentEvidence))
		}

		out[name] = &Posterior{
			Gene: GeneDist{
				acc.gene[i][0] / geneSum,
				acc.gene[i][1] / geneSum,
				acc.gene[i][2] / geneSum,
			},
			Trait: TraitDist{
				Present: acc.trait[i][1] / traitSum,
				Absent:  acc.trait[i][0] / traitSum,
			},
		}
	}

	return out, nil
}
