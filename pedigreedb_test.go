package heredity

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *PedigreeDB {
	t.Helper()

	db, err := OpenDB(filepath.Join(t.TempDir(), "family.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	db.DB.MustExec(`CREATE TABLE pedigree (
		name TEXT PRIMARY KEY,
		mother TEXT,
		father TEXT,
		trait INTEGER
	)`)
	db.DB.MustExec(`INSERT INTO pedigree (name, mother, father, trait) VALUES
		('Harry', 'Lily', 'James', NULL),
		('James', NULL, NULL, 1),
		('Lily', NULL, NULL, 0)`)

	return db
}

func TestPedigreeDBRead(t *testing.T) {
	ped, err := newTestDB(t).Read()
	if err != nil {
		t.Fatal(err)
	}

	if ped.Len() != 3 {
		t.Fatalf("Got %d people, expected 3", ped.Len())
	}

	harry, _ := ped.Person("Harry")
	if harry.Trait != nil {
		t.Error("Harry's NULL trait parsed as observed")
	}
	if harry.Mother != "Lily" || harry.Father != "James" {
		t.Errorf("Harry's parents: got %q/%q", harry.Mother, harry.Father)
	}

	james, _ := ped.Person("James")
	if !james.Founder() {
		t.Error("James's NULL parents did not parse as founder")
	}
	if james.Trait == nil || !*james.Trait {
		t.Error("James's trait=1 did not parse as observed-present")
	}
}

func TestPedigreeDBMetadata(t *testing.T) {
	db := newTestDB(t)
	db.DB.MustExec(`CREATE TABLE metadata (name TEXT, source TEXT, created_at INTEGER)`)
	db.DB.MustExec(`INSERT INTO metadata (name, source, created_at) VALUES ('family', 'census.csv', 1651000000)`)

	var meta PedigreeMetadata
	if err := db.DB.Get(&meta, "SELECT * FROM metadata LIMIT 1"); err != nil {
		t.Fatal(err)
	}
	if meta.Name != "family" || meta.Source != "census.csv" {
		t.Errorf("Got %q/%q, expected family/census.csv", meta.Name, meta.Source)
	}
	if time.Time(meta.CreatedAt).Unix() != 1651000000 {
		t.Errorf("CreatedAt: got %v", time.Time(meta.CreatedAt))
	}
}

func TestPedigreeDBInferEndToEnd(t *testing.T) {
	ped, err := newTestDB(t).Read()
	if err != nil {
		t.Fatal(err)
	}

	results, err := Infer(ped, nil)
	if err != nil {
		t.Fatal(err)
	}
	if results["James"].Trait.Present != 1 {
		t.Errorf("James observed with the trait: got Present=%v", results["James"].Trait.Present)
	}
}
