package db

import (
	"context"
	"database/sql"
)

type Tx struct {
	*sql.Tx
	rollbackCallbacks []func()
	commitCallbacks   []func()
}

func NewTx(ctx context.Context, db DBer) (Txer, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{
		Tx: tx,
	}, nil
}

func (s *Tx) AddRollbackCallback(cb func()) {
	s.rollbackCallbacks = append(s.rollbackCallbacks, cb)
}

func (s *Tx) AddCommitCallback(cb func()) {
	s.commitCallbacks = append(s.commitCallbacks, cb)
}

// Commit commits the tx and runs the commit callbacks. If the commit fails
// the in-memory state is restored through the rollback callbacks.
func (s *Tx) Commit() error {
	if err := s.Tx.Commit(); err != nil {
		s.runRollbackCallbacks()
		return err
	}
	for _, cb := range s.commitCallbacks {
		cb()
	}
	return nil
}

func (s *Tx) Rollback() error {
	if err := s.Tx.Rollback(); err != nil {
		return err
	}
	s.runRollbackCallbacks()
	return nil
}

func (s *Tx) runRollbackCallbacks() {
	// undo in reverse order of registration
	for i := len(s.rollbackCallbacks) - 1; i >= 0; i-- {
		s.rollbackCallbacks[i]()
	}
}
