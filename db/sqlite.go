package db

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

// ErrNotFound is returned when the requested row doesn't exist
var ErrNotFound = errors.New("not found")

// NewSQLiteDB opens the SQLite DB at dbPath. The connection settings go on the DSN so every
// connection of the pool gets them. WAL mode lets readers (the rpc) run concurrently with the writer
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000&_txlock=immediate",
		dbPath,
	)
	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	_, err = database.Exec(`PRAGMA journal_size_limit = 6144000;`)
	return database, err
}

// ReturnErrNotFound translates sql.ErrNoRows into ErrNotFound
func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func sqliteErr(err error) (*sqlite.Error, bool) {
	target := &sqlite.Error{}
	if errors.As(err, target) {
		return target, true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		return target, errors.As(driverErr, target)
	}
	return target, false
}

// IsConstraintErr returns true if err is a violation of a primary key or unique constraint
func IsConstraintErr(err error) bool {
	e, ok := sqliteErr(err)
	if !ok {
		return false
	}
	return e.ExtendedCode == sqlite.ErrConstraintPrimaryKey ||
		e.ExtendedCode == sqlite.ErrConstraintUnique
}
