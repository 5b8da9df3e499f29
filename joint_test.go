package heredity

import (
	"math"
	"testing"
)

func TestJointProbabilityReferenceValue(t *testing.T) {
	ped := classicFamily(t)

	got, err := JointProbability(ped, nil,
		map[string]bool{"Harry": true},
		map[string]bool{"James": true},
		map[string]bool{"James": true},
	)
	if err != nil {
		t.Fatal(err)
	}

	// James: 0.01 * 0.65; Lily: 0.96 * 0.99;
	// Harry: (0.01*0.01 + 0.99*0.99) * 0.44 with pm=0.01 (Lily, zero
	// copies) and pf=0.99 (James, two copies).
	const expected = 0.0026643247488
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("Got %v, expected %v", got, expected)
	}
}

func TestJointProbabilityFoundersOnly(t *testing.T) {
	ped := mustPedigree(t, []Person{
		{Name: "Alice"},
		{Name: "Brin"},
		{Name: "Cora"},
	})

	got, err := JointProbability(ped, nil, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	expected := math.Pow(0.96*0.99, 3)
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("Got %v, expected %v", got, expected)
	}
}

func TestJointProbabilityParentSymmetry(t *testing.T) {
	build := func(mother, father string) *Pedigree {
		return mustPedigree(t, []Person{
			{Name: "Alice"},
			{Name: "Ben"},
			{Name: "Kid", Mother: mother, Father: father},
		})
	}

	oneGene := map[string]bool{"Kid": true}
	twoGenes := map[string]bool{"Alice": true}
	haveTrait := map[string]bool{"Kid": true}

	forward, err := JointProbability(build("Alice", "Ben"), nil, oneGene, twoGenes, haveTrait)
	if err != nil {
		t.Fatal(err)
	}
	swapped, err := JointProbability(build("Ben", "Alice"), nil, oneGene, twoGenes, haveTrait)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(forward-swapped) > 1e-15 {
		t.Errorf("Swapping mother and father changed the joint probability: %v vs %v", forward, swapped)
	}
}

func TestJointProbabilityRejectsOverlappingGeneSets(t *testing.T) {
	ped := classicFamily(t)

	_, err := JointProbability(ped, nil,
		map[string]bool{"Harry": true},
		map[string]bool{"Harry": true},
		nil,
	)
	if err == nil {
		t.Error("Overlapping oneGene and twoGenes must be rejected")
	}
}

func TestJointProbabilityRejectsUnknownPerson(t *testing.T) {
	ped := classicFamily(t)

	_, err := JointProbability(ped, nil, map[string]bool{"Hermione": true}, nil, nil)
	if err == nil {
		t.Error("A set naming someone outside the pedigree must be rejected")
	}
}
