package migrations

import (
	claimbitmapMigrations "github.com/0xPolygon/cdk-bridge/claimbitmap/migrations"
	"github.com/0xPolygon/cdk-bridge/db"
	depositregistryMigrations "github.com/0xPolygon/cdk-bridge/depositregistry/migrations"
	gerMigrations "github.com/0xPolygon/cdk-bridge/globalexitroot/migrations"
	vaultMigrations "github.com/0xPolygon/cdk-bridge/vault/migrations"
	wrappedtokenMigrations "github.com/0xPolygon/cdk-bridge/wrappedtoken/migrations"
	migrate "github.com/rubenv/sql-migrate"

	_ "embed"
)

//go:embed bridge0001.sql
var mig001 string

// Migrations holds the tables of every component of the bridge, since all of them share the same DB
var Migrations = func() []*migrate.Migration {
	migrations := []*migrate.Migration{
		db.NewMigration("bridge001", mig001),
	}
	migrations = append(migrations, depositregistryMigrations.Migrations...)
	migrations = append(migrations, gerMigrations.Migrations...)
	migrations = append(migrations, claimbitmapMigrations.Migrations...)
	migrations = append(migrations, wrappedtokenMigrations.Migrations...)
	// the ledger of the shipped vault lives in the same DB so it can share the bridge tx
	migrations = append(migrations, vaultMigrations.Migrations...)
	return migrations
}()

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, Migrations)
}
