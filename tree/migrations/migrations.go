package migrations

import (
	"github.com/0xPolygon/cdk-bridge/db"
	migrate "github.com/rubenv/sql-migrate"

	_ "embed"
)

//go:embed tree0001.sql
var mig001 string

var Migrations = []*migrate.Migration{
	db.NewMigration("tree001", mig001),
}

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, Migrations)
}
