package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/0xPolygon/cdk-bridge/log"
	migrate "github.com/rubenv/sql-migrate"
)

const upDownSeparator = "-- +migrate Up"

// NewMigration builds a migration out of a sql file that holds the down statements
// followed by the up statements, separated by the "-- +migrate Up" marker
func NewMigration(id, sqlFile string) *migrate.Migration {
	splitted := strings.Split(sqlFile, upDownSeparator)
	if len(splitted) != 2 { //nolint:mnd
		panic(fmt.Sprintf("migration %s is not split in down and up sections", id))
	}
	return &migrate.Migration{
		Id:   id,
		Up:   []string{splitted[1]},
		Down: []string{splitted[0]},
	}
}

// RunMigrations will execute pending migrations if needed to keep
// the database updated with the latest changes
func RunMigrations(dbPath string, migrations []*migrate.Migration) error {
	db, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer db.Close()
	return RunMigrationsDB(log.GetDefaultLogger(), db, migrations)
}

// RunMigrationsDB runs the given migrations up on an already opened DB
func RunMigrationsDB(logger *log.Logger, db *sql.DB, migrations []*migrate.Migration) error {
	for _, m := range migrations {
		logger.Debugf("adding migration %s", m.Id)
	}
	nMigrations, err := migrate.Exec(db, "sqlite3", &migrate.MemoryMigrationSource{Migrations: migrations}, migrate.Up)
	if err != nil {
		return fmt.Errorf("error executing migration %w", err)
	}

	logger.Infof("successfully ran %d migrations", nMigrations)
	return nil
}
