package depositregistry

import (
	"context"
	"fmt"
	"math/big"
	"path"
	"testing"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/depositregistry/migrations"
	"github.com/0xPolygon/cdk-bridge/tree"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type registryAction interface {
	method() string
	desc() string
	execute(t *testing.T)
}

// record

type recordAction struct {
	r             *Registry
	description   string
	depositCount  uint32
	expectedErr   error
	expectedCount uint32
}

func (a *recordAction) method() string { return "Record" }
func (a *recordAction) desc() string   { return a.description }
func (a *recordAction) execute(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	tx, err := db.NewTx(ctx, a.r.db)
	require.NoError(t, err)
	rec := testDeposit(a.depositCount)
	count, err := a.r.Record(tx, rec)
	if a.expectedErr != nil {
		require.ErrorIs(t, err, a.expectedErr)
		require.NoError(t, tx.Rollback())
		return
	}
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.Equal(t, a.expectedCount, count)
	require.NotEqual(t, common.Hash{}, rec.LocalExitRoot)
	d := rec.Deposit()
	require.Equal(t, d.Hash(), rec.LeafHash)
}

// getDeposit

type getDepositAction struct {
	r            *Registry
	description  string
	depositCount uint32
	expectedErr  error
}

func (a *getDepositAction) method() string { return "GetDeposit" }
func (a *getDepositAction) desc() string   { return a.description }
func (a *getDepositAction) execute(t *testing.T) {
	t.Helper()
	actual, err := a.r.GetDeposit(context.Background(), a.depositCount)
	if a.expectedErr != nil {
		require.ErrorIs(t, err, a.expectedErr)
		return
	}
	require.NoError(t, err)
	expected := testDeposit(a.depositCount)
	require.Equal(t, expected.DepositCount, actual.DepositCount)
	require.Equal(t, expected.Amount, actual.Amount)
	require.Equal(t, expected.Metadata, actual.Metadata)
	require.Equal(t, expected.DestinationAddress, actual.DestinationAddress)
	require.Equal(t, expected.FromAddress, actual.FromAddress)
	d := expected.Deposit()
	require.Equal(t, d.Hash(), actual.LeafHash)
	root, err := a.r.GetRootByDepositCount(context.Background(), a.depositCount)
	require.NoError(t, err)
	require.Equal(t, root, actual.LocalExitRoot)
}

// depositCount

type depositCountAction struct {
	r           *Registry
	description string
	expected    uint32
}

func (a *depositCountAction) method() string { return "DepositCount" }
func (a *depositCountAction) desc() string   { return a.description }
func (a *depositCountAction) execute(t *testing.T) {
	t.Helper()
	actual, err := a.r.DepositCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, a.expected, actual)
	require.Equal(t, a.expected, a.r.NextDepositCount())
}

func testDeposit(depositCount uint32) *bridgetypes.DepositRecord {
	return &bridgetypes.DepositRecord{
		DepositCount:       depositCount,
		LeafType:           bridgetypes.LeafTypeAsset,
		OriginNetwork:      0,
		OriginAddress:      common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f"),
		DestinationNetwork: 1,
		DestinationAddress: common.HexToAddress("0xb0b"),
		Amount:             big.NewInt(int64(1000 + depositCount)),
		Metadata:           []byte(fmt.Sprintf("metadata%d", depositCount)),
		TokenAddress:       common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f"),
		FromAddress:        common.HexToAddress("0xa11ce"),
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "depositregistry.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	r, err := New(context.Background(), database)
	require.NoError(t, err)
	return r
}

func TestRegistry(t *testing.T) {
	r := newTestRegistry(t)
	actions := []registryAction{
		&depositCountAction{r: r, description: "empty", expected: 0},
		&getDepositAction{r: r, description: "not found", depositCount: 0, expectedErr: db.ErrNotFound},
		&recordAction{r: r, description: "first deposit", depositCount: 0, expectedCount: 0},
		&recordAction{r: r, description: "second deposit", depositCount: 1, expectedCount: 1},
		&recordAction{
			r: r, description: "gap", depositCount: 3,
			expectedErr: bridgetypes.ErrDepositCountMismatch,
		},
		&recordAction{
			r: r, description: "repeated", depositCount: 1,
			expectedErr: bridgetypes.ErrDepositCountMismatch,
		},
		&depositCountAction{r: r, description: "after failed records", expected: 2},
		&recordAction{r: r, description: "third deposit", depositCount: 2, expectedCount: 2},
		&getDepositAction{r: r, description: "first", depositCount: 0},
		&getDepositAction{r: r, description: "third", depositCount: 2},
		&getDepositAction{r: r, description: "not recorded", depositCount: 3, expectedErr: db.ErrNotFound},
		&depositCountAction{r: r, description: "after 3 deposits", expected: 3},
	}

	for _, a := range actions {
		t.Run(fmt.Sprintf("%s: %s", a.method(), a.desc()), a.execute)
	}
}

func TestRegistryRootsAndProofs(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)

	root, err := r.GetRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, tree.EmptyRoot(), root)

	roots := []common.Hash{}
	for i := uint32(0); i < 5; i++ {
		tx, err := db.NewTx(ctx, r.db)
		require.NoError(t, err)
		_, err = r.Record(tx, testDeposit(i))
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		root, err := r.GetRoot(ctx)
		require.NoError(t, err)
		if len(roots) > 0 {
			require.NotEqual(t, roots[len(roots)-1], root)
		}
		roots = append(roots, root)
	}

	deposits, err := r.GetDeposits(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, deposits, 3)
	for i, d := range deposits {
		require.Equal(t, uint32(i+1), d.DepositCount)
	}

	// proofs of old deposits verify against every later root
	for depositCount := uint32(0); depositCount < 5; depositCount++ {
		rec, err := r.GetDeposit(ctx, depositCount)
		require.NoError(t, err)
		for _, root := range roots[depositCount:] {
			proof, err := r.GetProof(ctx, depositCount, root)
			require.NoError(t, err)
			require.True(t, tree.VerifyMerkleProof(rec.LeafHash, proof, depositCount, root))
		}
	}
}

func TestRecordRollback(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)

	tx, err := db.NewTx(ctx, r.db)
	require.NoError(t, err)
	_, err = r.Record(tx, testDeposit(0))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	count, err := r.DepositCount(ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(0), count)
	_, err = r.GetDeposit(ctx, 0)
	require.ErrorIs(t, err, db.ErrNotFound)

	tx, err = db.NewTx(ctx, r.db)
	require.NoError(t, err)
	_, err = r.Record(tx, testDeposit(0))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}
