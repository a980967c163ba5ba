package db

import (
	"context"
	"database/sql"
)

type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type DBer interface {
	Querier
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Txer is a Querier bound to a transaction that can register callbacks to be executed
// after it's committed or rolled back
type Txer interface {
	Querier
	Commit() error
	Rollback() error
	AddRollbackCallback(cb func())
	AddCommitCallback(cb func())
}
