package heredity

import (
	"fmt"
	"testing"
)

func boolPtr(b bool) *bool {
	return &b
}

func mustPedigree(t *testing.T, people []Person) *Pedigree {
	t.Helper()
	ped, err := NewPedigree(people)
	if err != nil {
		t.Fatal(err)
	}
	return ped
}

// classicFamily is the two-founders-one-child pedigree used throughout the
// engine tests: James (trait observed present) and Lily (trait observed
// absent) are founders, Harry is their child with no observation.
func classicFamily(t *testing.T) *Pedigree {
	t.Helper()
	return mustPedigree(t, []Person{
		{Name: "Harry", Mother: "Lily", Father: "James"},
		{Name: "James", Trait: boolPtr(true)},
		{Name: "Lily", Trait: boolPtr(false)},
	})
}

func TestNewPedigreeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		people []Person
	}{
		{
			name:   "empty name",
			people: []Person{{Name: ""}},
		},
		{
			name: "duplicate name",
			people: []Person{
				{Name: "Arthur"},
				{Name: "Arthur"},
			},
		},
		{
			name: "single recorded parent",
			people: []Person{
				{Name: "Molly"},
				{Name: "Ron", Mother: "Molly"},
			},
		},
		{
			name: "dangling mother",
			people: []Person{
				{Name: "Arthur"},
				{Name: "Ron", Mother: "Molly", Father: "Arthur"},
			},
		},
		{
			name: "dangling father",
			people: []Person{
				{Name: "Molly"},
				{Name: "Ron", Mother: "Molly", Father: "Arthur"},
			},
		},
		{
			name: "self parent",
			people: []Person{
				{Name: "Arthur"},
				{Name: "Ron", Mother: "Ron", Father: "Arthur"},
			},
		},
		{
			name: "ancestry cycle",
			people: []Person{
				{Name: "Alice", Mother: "Brin", Father: "Cora"},
				{Name: "Brin", Mother: "Alice", Father: "Cora"},
				{Name: "Cora"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPedigree(tt.people); err == nil {
				t.Errorf("NewPedigree accepted a pedigree with %s", tt.name)
			}
		})
	}
}

func TestNewPedigreeRejectsOversizedPedigree(t *testing.T) {
	people := make([]Person, MaxPeople+1)
	for i := range people {
		people[i] = Person{Name: fmt.Sprintf("p%03d", i)}
	}

	if _, err := NewPedigree(people); err == nil {
		t.Errorf("NewPedigree accepted %d people; the limit is %d", len(people), MaxPeople)
	}
}

func TestPedigreeAccessors(t *testing.T) {
	ped := classicFamily(t)

	if got := ped.Len(); got != 3 {
		t.Errorf("Len: got %d, expected 3", got)
	}

	names := ped.Names()
	expected := []string{"Harry", "James", "Lily"}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Names[%d]: got %q, expected %q", i, names[i], name)
		}
	}

	harry, ok := ped.Person("Harry")
	if !ok {
		t.Fatal("Harry not found")
	}
	if harry.Founder() {
		t.Error("Harry has two recorded parents but reports Founder")
	}
	if harry.Mother != "Lily" || harry.Father != "James" {
		t.Errorf("Harry's parents: got %q/%q, expected Lily/James", harry.Mother, harry.Father)
	}

	james, _ := ped.Person("James")
	if !james.Founder() {
		t.Error("James has no recorded parents but does not report Founder")
	}

	if _, ok := ped.Person("Voldemort"); ok {
		t.Error("Person returned ok for a name not in the pedigree")
	}
}
