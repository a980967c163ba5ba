package depositregistry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/0xPolygon/cdk-bridge/tree"
	treetypes "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

const depositTable = "deposit"

// Registry is the append only log of the deposits done from this network. Every deposit is
// a leaf of the local exit tree, indexed by its deposit count
type Registry struct {
	db       *sql.DB
	exitTree *tree.AppendOnlyTree
	log      *log.Logger
}

// New returns a Registry that uses the deposit and exit tree tables of database
func New(ctx context.Context, database *sql.DB) (*Registry, error) {
	exitTree, err := tree.NewAppendOnlyTree(ctx, database)
	if err != nil {
		return nil, err
	}
	return &Registry{
		db:       database,
		exitTree: exitTree,
		log:      log.WithFields("module", "depositregistry"),
	}, nil
}

// NextDepositCount returns the deposit count that the next recorded deposit must have
func (r *Registry) NextDepositCount() uint32 {
	return r.exitTree.NextIndex()
}

// Record appends the deposit to the log and to the local exit tree. The deposit count of rec must be
// NextDepositCount, otherwise ErrDepositCountMismatch is returned. LeafHash and LocalExitRoot are filled
func (r *Registry) Record(tx db.Txer, rec *bridgetypes.DepositRecord) (uint32, error) {
	deposit := rec.Deposit()
	leaf := deposit.Hash()
	root, err := r.exitTree.AddLeaf(tx, treetypes.Leaf{
		Index: rec.DepositCount,
		Hash:  leaf,
	})
	if err != nil {
		if errors.Is(err, tree.ErrInvalidIndex) {
			return 0, fmt.Errorf("%w: %s", bridgetypes.ErrDepositCountMismatch, err.Error())
		}
		return 0, err
	}
	rec.LeafHash = leaf
	rec.LocalExitRoot = root
	if err := meddler.Insert(tx, depositTable, rec); err != nil {
		if db.IsConstraintErr(err) {
			return 0, fmt.Errorf("%w: deposit %d already recorded", bridgetypes.ErrDepositCountMismatch, rec.DepositCount)
		}
		return 0, fmt.Errorf("error inserting deposit %d: %w", rec.DepositCount, err)
	}
	r.log.Debugf("deposit %d recorded, leaf %s, new local exit root %s", rec.DepositCount, leaf.Hex(), root.Hex())
	return rec.DepositCount, nil
}

// DepositCount returns the amount of deposits recorded
func (r *Registry) DepositCount(ctx context.Context) (uint32, error) {
	root, err := r.exitTree.GetLastRoot(ctx)
	if errors.Is(err, db.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return root.Index + 1, nil
}

// GetRoot returns the current local exit root. It's the root of the empty tree if there are no deposits
func (r *Registry) GetRoot(ctx context.Context) (common.Hash, error) {
	root, err := r.exitTree.GetLastRoot(ctx)
	if errors.Is(err, db.ErrNotFound) {
		return tree.EmptyRoot(), nil
	}
	if err != nil {
		return common.Hash{}, err
	}
	return root.Hash, nil
}

// GetRootByDepositCount returns the local exit root right after the given deposit was recorded
func (r *Registry) GetRootByDepositCount(ctx context.Context, depositCount uint32) (common.Hash, error) {
	root, err := r.exitTree.GetRootByIndex(ctx, depositCount)
	if err != nil {
		return common.Hash{}, err
	}
	return root.Hash, nil
}

// GetProof returns the merkle proof of the given deposit against localExitRoot
func (r *Registry) GetProof(
	ctx context.Context, depositCount uint32, localExitRoot common.Hash,
) (treetypes.Proof, error) {
	return r.exitTree.GetProof(ctx, depositCount, localExitRoot)
}

// GetDeposit returns the deposit with the given deposit count
func (r *Registry) GetDeposit(ctx context.Context, depositCount uint32) (*bridgetypes.DepositRecord, error) {
	rec := &bridgetypes.DepositRecord{}
	err := meddler.QueryRow(r.db, rec, `SELECT * FROM deposit WHERE deposit_count = $1;`, depositCount)
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return rec, nil
}

// GetDeposits returns the deposits between fromDepositCount and toDepositCount, both included
func (r *Registry) GetDeposits(
	ctx context.Context, fromDepositCount, toDepositCount uint32,
) ([]*bridgetypes.DepositRecord, error) {
	deposits := []*bridgetypes.DepositRecord{}
	err := meddler.QueryAll(
		r.db, &deposits,
		`SELECT * FROM deposit WHERE deposit_count >= $1 AND deposit_count <= $2 ORDER BY deposit_count ASC;`,
		fromDepositCount, toDepositCount,
	)
	if err != nil {
		return nil, err
	}
	return deposits, nil
}
