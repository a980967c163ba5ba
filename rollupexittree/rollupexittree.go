package rollupexittree

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	cdkcommon "github.com/0xPolygon/cdk-bridge/common"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/0xPolygon/cdk-bridge/tree"
	"github.com/0xPolygon/cdk-bridge/tree/migrations"
	"github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
)

// Sink receives the new rollup exit roots. Bridges are sinks, the caller identifies the rollup authority
type Sink interface {
	UpdateExitRoot(ctx context.Context, caller common.Address, newRoot common.Hash) (common.Hash, error)
}

// Manager is the rollup authority: it keeps the tree whose leaf i is the local exit root of the rollup
// with rollup index i
type Manager struct {
	mu        sync.Mutex
	db        *sql.DB
	tree      *tree.UpdatableTree
	authority common.Address
	sinks     []Sink
	log       *log.Logger
}

// New returns a Manager that stores the tree in cfg.DBPath. Every new rollup exit root is pushed to sinks
func New(ctx context.Context, cfg Config, sinks ...Sink) (*Manager, error) {
	if err := migrations.RunMigrations(cfg.DBPath); err != nil {
		return nil, err
	}
	database, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	t, err := tree.NewUpdatableTree(ctx, database)
	if err != nil {
		return nil, err
	}
	return &Manager{
		db:        database,
		tree:      t,
		authority: cfg.AuthorityAddress,
		sinks:     sinks,
		log:       log.WithFields("module", cdkcommon.ROLLUP_EXIT_TREE),
	}, nil
}

// AddSink registers a new receiver of the rollup exit roots
func (m *Manager) AddSink(s Sink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sinks = append(m.sinks, s)
}

// SetLocalExitRoot sets the local exit root of a rollup and returns the new rollup exit root. The new root is
// committed before being pushed to the sinks, if a sink fails the error is returned and the push can be retried
// with PushRollupExitRoot
func (m *Manager) SetLocalExitRoot(
	ctx context.Context, rollupIndex uint32, localExitRoot common.Hash,
) (common.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, err := db.NewTx(ctx, m.db)
	if err != nil {
		return common.Hash{}, err
	}
	shouldRollback := true
	defer func() {
		if shouldRollback {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				m.log.Errorf("error while rolling back tx %v", errRllbck)
			}
		}
	}()

	newRoot, err := m.tree.UpsertLeaf(tx, types.Leaf{Index: rollupIndex, Hash: localExitRoot})
	if err != nil {
		return common.Hash{}, err
	}
	if err := tx.Commit(); err != nil {
		return common.Hash{}, err
	}
	shouldRollback = false
	m.log.Infof(
		"local exit root of rollup %d set to %s, new rollup exit root %s",
		rollupIndex, localExitRoot.Hex(), newRoot.Hex(),
	)
	return newRoot, m.push(ctx, newRoot)
}

// PushRollupExitRoot sends the current rollup exit root to the sinks
func (m *Manager) PushRollupExitRoot(ctx context.Context) (common.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	root, err := m.GetRollupExitRoot(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	return root, m.push(ctx, root)
}

func (m *Manager) push(ctx context.Context, root common.Hash) error {
	var errs []error
	for i, s := range m.sinks {
		if _, err := s.UpdateExitRoot(ctx, m.authority, root); err != nil {
			m.log.Warnf("error pushing rollup exit root %s to sink %d: %v", root.Hex(), i, err)
			errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// GetRollupExitRoot returns the current rollup exit root, the root of the empty tree if no rollup has
// set its local exit root
func (m *Manager) GetRollupExitRoot(ctx context.Context) (common.Hash, error) {
	root, err := m.tree.GetLastRoot(ctx)
	if errors.Is(err, db.ErrNotFound) {
		return tree.EmptyRoot(), nil
	}
	if err != nil {
		return common.Hash{}, err
	}
	return root.Hash, nil
}

// GetProof returns the proof of the local exit root of the rollup against a current or past rollup exit root
func (m *Manager) GetProof(ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash) (types.Proof, error) {
	return m.tree.GetProof(ctx, rollupIndex, rollupExitRoot)
}

// GetLocalExitRoot returns the local exit root that the rollup had on the given rollup exit root
func (m *Manager) GetLocalExitRoot(
	ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash,
) (common.Hash, error) {
	return m.tree.GetLeaf(ctx, rollupIndex, rollupExitRoot)
}
