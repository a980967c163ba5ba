package globalexitroot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"golang.org/x/crypto/sha3"
)

const snapshotID = 1

// Snapshot is the current state of both halves of the global exit root
type Snapshot struct {
	ID              uint8       `meddler:"id"`
	MainnetExitRoot common.Hash `meddler:"mainnet_exit_root,hash"`
	RollupExitRoot  common.Hash `meddler:"rollup_exit_root,hash"`
	GlobalExitRoot  common.Hash `meddler:"global_exit_root,hash"`
}

// GlobalExitRootInfo is an entry of the history of combinations
type GlobalExitRootInfo struct {
	Position        uint64      `meddler:"position"`
	GlobalExitRoot  common.Hash `meddler:"global_exit_root,hash"`
	MainnetExitRoot common.Hash `meddler:"mainnet_exit_root,hash"`
	RollupExitRoot  common.Hash `meddler:"rollup_exit_root,hash"`
}

// CalculateGlobalExitRoot returns keccak(mainnetExitRoot | rollupExitRoot)
func CalculateGlobalExitRoot(mainnetExitRoot, rollupExitRoot common.Hash) common.Hash {
	var ger common.Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(mainnetExitRoot[:])
	hasher.Write(rollupExitRoot[:])
	copy(ger[:], hasher.Sum(nil))
	return ger
}

// Aggregator combines the exit roots of both sides in the global exit root and keeps every
// combination it has ever produced
type Aggregator struct {
	db         *sql.DB
	authorizer Authorizer
	log        *log.Logger
}

// New returns an Aggregator that stores its state on the tables of database
func New(database *sql.DB, authorizer Authorizer) *Aggregator {
	return &Aggregator{
		db:         database,
		authorizer: authorizer,
		log:        log.WithFields("module", "globalexitroot"),
	}
}

// UpdateExitRoot updates the half of the snapshot that caller is allowed to update
func (a *Aggregator) UpdateExitRoot(
	tx db.Querier, caller common.Address, newRoot common.Hash,
) (Side, common.Hash, error) {
	side, err := a.authorizer.Authorize(caller)
	if err != nil {
		return 0, common.Hash{}, err
	}
	var ger common.Hash
	switch side {
	case SideMainnet:
		ger, err = a.UpdateMainnetRoot(tx, newRoot)
	case SideRollup:
		ger, err = a.UpdateRollupRoot(tx, newRoot)
	default:
		err = fmt.Errorf("unexpected side %s", side)
	}
	return side, ger, err
}

// UpdateMainnetRoot sets the mainnet exit root and returns the new global exit root
func (a *Aggregator) UpdateMainnetRoot(tx db.Querier, newRoot common.Hash) (common.Hash, error) {
	snapshot, err := a.getSnapshot(tx)
	if err != nil {
		return common.Hash{}, err
	}
	snapshot.MainnetExitRoot = newRoot
	return a.update(tx, snapshot)
}

// UpdateRollupRoot sets the rollup exit root and returns the new global exit root
func (a *Aggregator) UpdateRollupRoot(tx db.Querier, newRoot common.Hash) (common.Hash, error) {
	snapshot, err := a.getSnapshot(tx)
	if err != nil {
		return common.Hash{}, err
	}
	snapshot.RollupExitRoot = newRoot
	return a.update(tx, snapshot)
}

func (a *Aggregator) update(tx db.Querier, snapshot *Snapshot) (common.Hash, error) {
	snapshot.GlobalExitRoot = CalculateGlobalExitRoot(snapshot.MainnetExitRoot, snapshot.RollupExitRoot)
	snapshot.ID = snapshotID
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO exit_root_snapshot (id, mainnet_exit_root, rollup_exit_root, global_exit_root)
		VALUES ($1, $2, $3, $4);
	`,
		snapshot.ID, snapshot.MainnetExitRoot.Hex(), snapshot.RollupExitRoot.Hex(), snapshot.GlobalExitRoot.Hex(),
	); err != nil {
		return common.Hash{}, fmt.Errorf("error saving exit root snapshot: %w", err)
	}
	// a combination that was already produced keeps its original position
	if _, err := tx.Exec(`
		INSERT OR IGNORE INTO global_exit_root (global_exit_root, mainnet_exit_root, rollup_exit_root)
		VALUES ($1, $2, $3);
	`,
		snapshot.GlobalExitRoot.Hex(), snapshot.MainnetExitRoot.Hex(), snapshot.RollupExitRoot.Hex(),
	); err != nil {
		return common.Hash{}, fmt.Errorf("error inserting global exit root: %w", err)
	}
	a.log.Debugf(
		"new global exit root %s, mainnet exit root: %s, rollup exit root: %s",
		snapshot.GlobalExitRoot.Hex(), snapshot.MainnetExitRoot.Hex(), snapshot.RollupExitRoot.Hex(),
	)
	return snapshot.GlobalExitRoot, nil
}

// getSnapshot returns the current snapshot. Before any update both halves are zero
func (a *Aggregator) getSnapshot(tx db.Querier) (*Snapshot, error) {
	snapshot := &Snapshot{}
	err := meddler.QueryRow(tx, snapshot, `SELECT * FROM exit_root_snapshot WHERE id = $1;`, snapshotID)
	if errors.Is(err, sql.ErrNoRows) {
		return &Snapshot{
			GlobalExitRoot: CalculateGlobalExitRoot(common.Hash{}, common.Hash{}),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetSnapshot returns the current value of both halves and the global exit root
func (a *Aggregator) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	return a.getSnapshot(a.db)
}

// GetSnapshotWithTx returns the snapshot as seen by tx, including its uncommitted updates
func (a *Aggregator) GetSnapshotWithTx(tx db.Querier) (*Snapshot, error) {
	return a.getSnapshot(tx)
}

// LastMainnetExitRoot returns the current mainnet exit root
func (a *Aggregator) LastMainnetExitRoot(ctx context.Context) (common.Hash, error) {
	snapshot, err := a.getSnapshot(a.db)
	if err != nil {
		return common.Hash{}, err
	}
	return snapshot.MainnetExitRoot, nil
}

// LastRollupExitRoot returns the current rollup exit root
func (a *Aggregator) LastRollupExitRoot(ctx context.Context) (common.Hash, error) {
	snapshot, err := a.getSnapshot(a.db)
	if err != nil {
		return common.Hash{}, err
	}
	return snapshot.RollupExitRoot, nil
}

// CurrentGlobalExitRoot returns keccak of the current halves
func (a *Aggregator) CurrentGlobalExitRoot(ctx context.Context) (common.Hash, error) {
	snapshot, err := a.getSnapshot(a.db)
	if err != nil {
		return common.Hash{}, err
	}
	return snapshot.GlobalExitRoot, nil
}

// IsKnownCombination returns true if the pair has been the snapshot at any point
func (a *Aggregator) IsKnownCombination(tx db.Querier, mainnetExitRoot, rollupExitRoot common.Hash) (bool, error) {
	if tx == nil {
		tx = a.db
	}
	var count int
	err := tx.QueryRow(
		`SELECT COUNT(*) FROM global_exit_root WHERE mainnet_exit_root = $1 AND rollup_exit_root = $2;`,
		mainnetExitRoot.Hex(), rollupExitRoot.Hex(),
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetGlobalExitRoot returns the first combination that produced ger
func (a *Aggregator) GetGlobalExitRoot(ctx context.Context, ger common.Hash) (*GlobalExitRootInfo, error) {
	info := &GlobalExitRootInfo{}
	err := meddler.QueryRow(a.db, info, `
		SELECT * FROM global_exit_root
		WHERE global_exit_root = $1
		ORDER BY position ASC
		LIMIT 1;
	`, ger.Hex())
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return info, nil
}

// GetHistory returns every combination produced, in order
func (a *Aggregator) GetHistory(ctx context.Context) ([]*GlobalExitRootInfo, error) {
	history := []*GlobalExitRootInfo{}
	err := meddler.QueryAll(a.db, &history, `SELECT * FROM global_exit_root ORDER BY position ASC;`)
	return history, err
}
