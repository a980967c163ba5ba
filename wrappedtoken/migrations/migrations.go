package migrations

import (
	"github.com/0xPolygon/cdk-bridge/db"
	migrate "github.com/rubenv/sql-migrate"

	_ "embed"
)

//go:embed wrappedtoken0001.sql
var mig001 string

var Migrations = []*migrate.Migration{
	db.NewMigration("wrappedtoken001", mig001),
}

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, Migrations)
}
