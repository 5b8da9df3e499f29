//go:build !cgo

package heredity

// If cgo is not enabled, we will use the modernc.org/sqlite non-cgo sqlite
// driver. It is slower than the sqlite3 cgo driver.

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

const whichSQLiteDriver = "sqlite"

func OpenDB(path string) (*PedigreeDB, error) {
	db := &PedigreeDB{
		Metadata: &PedigreeMetadata{},
	}

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	conn, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.DB = conn

	_, err = conn.DB.Exec(`
	PRAGMA journal_mode = OFF;
	PRAGMA synchronous = OFF;
	PRAGMA auto_vacuum = NONE;
	`)
	if err != nil {
		return nil, fmt.Errorf("unable to set pragmas: %w", err)
	}

	// Not all pedigree databases have metadata; ignore any error
	_ = db.DB.Get(db.Metadata, "SELECT * FROM metadata LIMIT 1")

	return db, nil
}
