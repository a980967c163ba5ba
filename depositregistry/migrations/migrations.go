package migrations

import (
	"github.com/0xPolygon/cdk-bridge/db"
	treeMigrations "github.com/0xPolygon/cdk-bridge/tree/migrations"
	migrate "github.com/rubenv/sql-migrate"

	_ "embed"
)

//go:embed depositregistry0001.sql
var mig001 string

// Migrations of the deposit log. The local exit tree tables are included
var Migrations = append([]*migrate.Migration{
	db.NewMigration("depositregistry001", mig001),
}, treeMigrations.Migrations...)

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, Migrations)
}
