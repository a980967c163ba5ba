package exitrootsync

import (
	"context"
	"errors"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/ethereum/go-ethereum/common"
)

// ExitRootUpdater is a bridge, local or remote, whose exit roots can be updated
type ExitRootUpdater interface {
	UpdateExitRoot(ctx context.Context, caller common.Address, newRoot common.Hash) (common.Hash, error)
	LastMainnetExitRoot(ctx context.Context) (common.Hash, error)
	LastRollupExitRoot(ctx context.Context) (common.Hash, error)
}

// RollupExitTreeSetter is a rollup exit tree, local or remote
type RollupExitTreeSetter interface {
	SetLocalExitRoot(ctx context.Context, rollupIndex uint32, localExitRoot common.Hash) (common.Hash, error)
	GetRollupExitRoot(ctx context.Context) (common.Hash, error)
	GetLocalExitRoot(ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash) (common.Hash, error)
}

// ExitRootTarget updates one half of the global exit root of a bridge using the identity of caller
type ExitRootTarget struct {
	updater ExitRootUpdater
	caller  common.Address
	last    func(ctx context.Context) (common.Hash, error)
}

// NewMainnetExitRootTarget delivers roots as the mainnet exit root of the bridge
func NewMainnetExitRootTarget(updater ExitRootUpdater, caller common.Address) *ExitRootTarget {
	return &ExitRootTarget{
		updater: updater,
		caller:  caller,
		last:    updater.LastMainnetExitRoot,
	}
}

// NewRollupExitRootTarget delivers roots as the rollup exit root of the bridge
func NewRollupExitRootTarget(updater ExitRootUpdater, caller common.Address) *ExitRootTarget {
	return &ExitRootTarget{
		updater: updater,
		caller:  caller,
		last:    updater.LastRollupExitRoot,
	}
}

func (t *ExitRootTarget) IsRootAlreadySubmitted(ctx context.Context, root common.Hash) (bool, error) {
	last, err := t.last(ctx)
	if err != nil {
		return false, err
	}
	return last == root, nil
}

func (t *ExitRootTarget) SubmitRoot(ctx context.Context, root common.Hash) error {
	_, err := t.updater.UpdateExitRoot(ctx, t.caller, root)
	return err
}

// LocalExitRootTarget delivers the local exit root of a rollup to the rollup exit tree
type LocalExitRootTarget struct {
	tree        RollupExitTreeSetter
	rollupIndex uint32
}

func NewLocalExitRootTarget(tree RollupExitTreeSetter, rollupIndex uint32) *LocalExitRootTarget {
	return &LocalExitRootTarget{
		tree:        tree,
		rollupIndex: rollupIndex,
	}
}

func (t *LocalExitRootTarget) IsRootAlreadySubmitted(ctx context.Context, root common.Hash) (bool, error) {
	rollupExitRoot, err := t.tree.GetRollupExitRoot(ctx)
	if err != nil {
		return false, err
	}
	current, err := t.tree.GetLocalExitRoot(ctx, t.rollupIndex, rollupExitRoot)
	if errors.Is(err, db.ErrNotFound) {
		// the rollup has never set its local exit root
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return current == root, nil
}

func (t *LocalExitRootTarget) SubmitRoot(ctx context.Context, root common.Hash) error {
	_, err := t.tree.SetLocalExitRoot(ctx, t.rollupIndex, root)
	return err
}
