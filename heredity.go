package heredity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
)

// MaxPeople is the largest pedigree the enumeration engine accepts. Sets of
// people are tracked as bits of a uint64, which caps membership at 63; exact
// enumeration scores on the order of 2^n * 3^n assignments, so this bound is
// never the practical limit.
const MaxPeople = 63

// ErrPedigreeTooLarge is returned when a pedigree exceeds MaxPeople.
var ErrPedigreeTooLarge = errors.New("pedigree exceeds the exact-enumeration size limit")

// Person is one pedigree member. Mother and Father are either both empty (a
// founder) or both names of other people in the same pedigree. Trait is nil
// when the phenotype was not observed for this person.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  *bool
}

// Founder reports whether this person has no recorded parents.
func (p Person) Founder() bool {
	return p.Mother == "" && p.Father == ""
}

// Pedigree is a validated, immutable set of people keyed by name. It is the
// main object consumed by the inference engine and is safe for concurrent
// reads once constructed.
type Pedigree struct {
	people map[string]Person

	// Indexed view used by the enumeration engine. names is sorted so that
	// the same set of people always indexes identically.
	names  []string
	index  map[string]int
	mother []int // index of the mother, or -1 for founders
	father []int // index of the father, or -1 for founders
}

// NewPedigree validates people and returns an indexed Pedigree. It fails on a
// duplicate name, a recorded parent who is not in the pedigree, a person with
// exactly one recorded parent, an ancestry cycle, and pedigrees larger than
// MaxPeople. The returned Pedigree must not be mutated through retained
// Person values; modify and reconstruct instead.
func NewPedigree(people []Person) (*Pedigree, error) {
	if len(people) > MaxPeople {
		return nil, pfx.Err(fmt.Errorf("%w: %d people, limit %d", ErrPedigreeTooLarge, len(people), MaxPeople))
	}

	ped := &Pedigree{
		people: make(map[string]Person, len(people)),
		index:  make(map[string]int, len(people)),
	}

	for _, person := range people {
		if person.Name == "" {
			return nil, pfx.Err(fmt.Errorf("person with empty name"))
		}
		if _, seen := ped.people[person.Name]; seen {
			return nil, pfx.Err(fmt.Errorf("duplicate person %q", person.Name))
		}
		ped.people[person.Name] = person
		ped.names = append(ped.names, person.Name)
	}
	sort.Strings(ped.names)
	for i, name := range ped.names {
		ped.index[name] = i
	}

	ped.mother = make([]int, len(ped.names))
	ped.father = make([]int, len(ped.names))
	for i, name := range ped.names {
		person := ped.people[name]

		if (person.Mother == "") != (person.Father == "") {
			return nil, pfx.Err(fmt.Errorf("person %q has exactly one recorded parent; a person has either both parents or neither", name))
		}
		if person.Founder() {
			ped.mother[i], ped.father[i] = -1, -1
			continue
		}

		var ok bool
		if ped.mother[i], ok = ped.index[person.Mother]; !ok {
			return nil, pfx.Err(fmt.Errorf("person %q: mother %q is not in the pedigree", name, person.Mother))
		}
		if ped.father[i], ok = ped.index[person.Father]; !ok {
			return nil, pfx.Err(fmt.Errorf("person %q: father %q is not in the pedigree", name, person.Father))
		}
	}

	if name, ok := ped.findCycle(); ok {
		return nil, pfx.Err(fmt.Errorf("person %q is their own ancestor", name))
	}

	return ped, nil
}

// findCycle walks parent edges from every person and reports a member of an
// ancestry cycle, if one exists. The evaluator assumes parent edges form a
// forest, so this runs once at construction.
func (ped *Pedigree) findCycle() (string, bool) {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make([]int, len(ped.names))

	var visit func(i int) (string, bool)
	visit = func(i int) (string, bool) {
		switch state[i] {
		case done:
			return "", false
		case inProgress:
			return ped.names[i], true
		}
		state[i] = inProgress
		for _, parent := range []int{ped.mother[i], ped.father[i]} {
			if parent < 0 {
				continue
			}
			if name, cyclic := visit(parent); cyclic {
				return name, true
			}
		}
		state[i] = done
		return "", false
	}

	for i := range ped.names {
		if name, cyclic := visit(i); cyclic {
			return name, true
		}
	}
	return "", false
}

// Len returns the number of people in the pedigree.
func (ped *Pedigree) Len() int {
	return len(ped.names)
}

// Names returns every person's name in sorted order.
func (ped *Pedigree) Names() []string {
	out := make([]string, len(ped.names))
	copy(out, ped.names)
	return out
}

// Person returns the named person, if present.
func (ped *Pedigree) Person(name string) (Person, bool) {
	person, ok := ped.people[name]
	return person, ok
}

// mask converts a name set into the engine's bitmask representation. Names
// mapped to false are ignored, matching set-membership semantics.
func (ped *Pedigree) mask(set map[string]bool) (uint64, error) {
	var mask uint64
	for name, in := range set {
		if !in {
			continue
		}
		i, ok := ped.index[name]
		if !ok {
			return 0, fmt.Errorf("person %q is not in the pedigree", name)
		}
		mask |= 1 << uint(i)
	}
	return mask, nil
}

// universe is the bitmask containing every person.
func (ped *Pedigree) universe() uint64 {
	if len(ped.names) == 0 {
		return 0
	}
	return (uint64(1) << uint(len(ped.names))) - 1
}
