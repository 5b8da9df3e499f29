package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// JointProbability computes the unnormalized probability of one complete
// assignment: everyone in oneGene carries one copy of the variant, everyone
// in twoGenes carries two, everyone else carries none, everyone in haveTrait
// expresses the trait, and nobody else does. oneGene and twoGenes must be
// disjoint. A nil model means DefaultModel.
func JointProbability(ped *Pedigree, m *Model, oneGene, twoGenes, haveTrait map[string]bool) (float64, error) {
	if m == nil {
		m = DefaultModel()
	}
	if err := m.Validate(); err != nil {
		return 0, pfx.Err(err)
	}

	one, err := ped.mask(oneGene)
	if err != nil {
		return 0, pfx.Err(err)
	}
	two, err := ped.mask(twoGenes)
	if err != nil {
		return 0, pfx.Err(err)
	}
	trait, err := ped.mask(haveTrait)
	if err != nil {
		return 0, pfx.Err(err)
	}
	if one&two != 0 {
		return 0, pfx.Err(fmt.Errorf("oneGene and twoGenes overlap"))
	}

	return ped.joint(m, one, two, trait), nil
}

// joint is the evaluator the enumeration driver runs on every surviving
// combination. The factorization mirrors the network structure: a founder's
// gene count draws from the unconditional prior, a child's depends only on
// both parents' transmission probabilities, and each trait depends only on
// its carrier's own gene count. The two parents enter symmetrically.
func (ped *Pedigree) joint(m *Model, oneGene, twoGenes, haveTrait uint64) float64 {
	prob := 1.0

	for i := range ped.names {
		g := genesOf(i, oneGene, twoGenes)

		if ped.mother[i] < 0 {
			prob *= m.Gene[g]
		} else {
			pm := m.passProb(genesOf(ped.mother[i], oneGene, twoGenes))
			pf := m.passProb(genesOf(ped.father[i], oneGene, twoGenes))
			switch g {
			case 2:
				prob *= pm * pf
			case 1:
				prob *= pm*(1-pf) + (1-pm)*pf
			default:
				prob *= (1 - pm) * (1 - pf)
			}
		}

		if haveTrait&(1<<uint(i)) != 0 {
			prob *= m.TraitGivenGene[g]
		} else {
			prob *= 1 - m.TraitGivenGene[g]
		}
	}

	return prob
}

// genesOf decodes person i's assigned copy count from the two gene masks.
func genesOf(i int, oneGene, twoGenes uint64) int {
	bit := uint64(1) << uint(i)
	switch {
	case twoGenes&bit != 0:
		return 2
	case oneGene&bit != 0:
		return 1
	}
	return 0
}
