package heredity

import (
	"database/sql"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PedigreeDB wraps a SQLite database holding a pedigree table. Open it with
// OpenDB, which picks the cgo or pure-Go SQLite driver at build time.
type PedigreeDB struct {
	DB       *sqlx.DB
	Metadata *PedigreeMetadata
}

func (db *PedigreeDB) Close() error {
	return db.DB.Close()
}

// PedigreeRow conforms to the rows of the "pedigree" table, and can be easily
// parsed with sqlx. mother and father are NULL (or empty) for founders; trait
// is NULL when unobserved.
type PedigreeRow struct {
	Name   string           `db:"name"`
	Mother sql.NullString   `db:"mother"`
	Father sql.NullString   `db:"father"`
	Trait  TraitObservation `db:"trait"`
}

// PedigreeMetadata conforms to the optional "metadata" table describing when
// and from what source the pedigree database was built.
type PedigreeMetadata struct {
	Name      string `db:"name"`
	Source    string `db:"source"`
	CreatedAt Time   `db:"created_at"`
}

// Read loads every person from the pedigree table and returns the validated
// Pedigree.
func (db *PedigreeDB) Read() (*Pedigree, error) {
	rows, err := db.DB.Queryx("SELECT name, mother, father, trait FROM pedigree ORDER BY name ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	var people []Person
	var row PedigreeRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}
		people = append(people, Person{
			Name:   row.Name,
			Mother: row.Mother.String,
			Father: row.Father.String,
			Trait:  row.Trait.Ptr(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return NewPedigree(people)
}
