package db

import (
	"context"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTxCallbacks(t *testing.T) {
	ctx := context.Background()
	database, err := NewSQLiteDB(path.Join(t.TempDir(), "tx.sqlite"))
	require.NoError(t, err)
	_, err = database.Exec(`CREATE TABLE foo (id INTEGER PRIMARY KEY);`)
	require.NoError(t, err)

	var committed, rolledBack []int

	tx, err := NewTx(ctx, database)
	require.NoError(t, err)
	_, err = tx.Exec(`INSERT INTO foo (id) VALUES (1);`)
	require.NoError(t, err)
	tx.AddCommitCallback(func() { committed = append(committed, 1) })
	tx.AddRollbackCallback(func() { rolledBack = append(rolledBack, 1) })
	require.NoError(t, tx.Commit())
	require.Equal(t, []int{1}, committed)
	require.Empty(t, rolledBack)

	tx, err = NewTx(ctx, database)
	require.NoError(t, err)
	_, err = tx.Exec(`INSERT INTO foo (id) VALUES (2);`)
	require.NoError(t, err)
	tx.AddCommitCallback(func() { committed = append(committed, 2) })
	tx.AddRollbackCallback(func() { rolledBack = append(rolledBack, 2) })
	tx.AddRollbackCallback(func() { rolledBack = append(rolledBack, 3) })
	require.NoError(t, tx.Rollback())
	require.Equal(t, []int{1}, committed)
	require.Equal(t, []int{3, 2}, rolledBack)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM foo;`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestIsConstraintErr(t *testing.T) {
	database, err := NewSQLiteDB(path.Join(t.TempDir(), "constraint.sqlite"))
	require.NoError(t, err)
	_, err = database.Exec(`CREATE TABLE foo (id INTEGER PRIMARY KEY);`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO foo (id) VALUES (1);`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO foo (id) VALUES (1);`)
	require.Error(t, err)
	require.True(t, IsConstraintErr(err))
	require.False(t, IsConstraintErr(ErrNotFound))
}

func TestNewMigration(t *testing.T) {
	m := NewMigration("foo001", "-- +migrate Down\nDROP TABLE foo;\n-- +migrate Up\nCREATE TABLE foo (id INTEGER);\n")
	require.Equal(t, "foo001", m.Id)
	require.Contains(t, m.Up[0], "CREATE TABLE foo")
	require.Contains(t, m.Down[0], "DROP TABLE foo")
	require.Panics(t, func() { NewMigration("bad", "CREATE TABLE foo (id INTEGER);") })
}
