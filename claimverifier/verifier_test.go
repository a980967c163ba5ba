package claimverifier

import (
	"context"
	"math/big"
	"path"
	"testing"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/claimbitmap"
	bitmapMigrations "github.com/0xPolygon/cdk-bridge/claimbitmap/migrations"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/globalexitroot"
	gerMigrations "github.com/0xPolygon/cdk-bridge/globalexitroot/migrations"
	"github.com/0xPolygon/cdk-bridge/tree/testvectors"
	treetypes "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/require"
)

const localNetwork = uint32(1)

type testEnv struct {
	verifier   *Verifier
	aggregator *globalexitroot.Aggregator
	bitmap     *claimbitmap.Bitmap
	dbTx       func(t *testing.T) db.Txer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "verifier.sqlite")
	migrations := []*migrate.Migration{}
	migrations = append(migrations, gerMigrations.Migrations...)
	migrations = append(migrations, bitmapMigrations.Migrations...)
	require.NoError(t, db.RunMigrations(dbPath, migrations))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)

	aggregator := globalexitroot.New(database, globalexitroot.AddressAuthorizer{})
	bitmap := claimbitmap.New(database)
	return &testEnv{
		verifier:   New(localNetwork, aggregator, bitmap),
		aggregator: aggregator,
		bitmap:     bitmap,
		dbTx: func(t *testing.T) db.Txer {
			t.Helper()
			tx, err := db.NewTx(context.Background(), database)
			require.NoError(t, err)
			return tx
		},
	}
}

func toProof(hashes []common.Hash) treetypes.Proof {
	proof := treetypes.Proof{}
	copy(proof[:], hashes)
	return proof
}

// deposits returns claim requests for n deposits from originNetwork to the local network
func deposits(originNetwork uint32, n int) ([]bridgetypes.ClaimRequest, testvectors.ReferenceTree) {
	reqs := []bridgetypes.ClaimRequest{}
	localTree := testvectors.ReferenceTree{Height: treetypes.DefaultHeight}
	for i := 0; i < n; i++ {
		req := bridgetypes.ClaimRequest{
			OriginNetwork:      originNetwork,
			OriginTokenAddress: common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f"),
			DestinationNetwork: localNetwork,
			DestinationAddress: common.HexToAddress("0xb0b"),
			Amount:             big.NewInt(int64(100 + i)),
			Metadata:           []byte("metadata"),
		}
		localTree.Leaves = append(localTree.Leaves, req.Leaf())
		reqs = append(reqs, req)
	}
	return reqs, localTree
}

func (e *testEnv) setRoots(t *testing.T, mainnetExitRoot, rollupExitRoot common.Hash) {
	t.Helper()
	tx := e.dbTx(t)
	_, err := e.aggregator.UpdateMainnetRoot(tx, mainnetExitRoot)
	require.NoError(t, err)
	_, err = e.aggregator.UpdateRollupRoot(tx, rollupExitRoot)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}

func (e *testEnv) claim(t *testing.T, req *bridgetypes.ClaimRequest) (*VerifiedClaim, error) {
	t.Helper()
	tx := e.dbTx(t)
	res, err := e.verifier.Claim(tx, req)
	if err != nil {
		require.NoError(t, tx.Rollback())
		return nil, err
	}
	require.NoError(t, tx.Commit())
	return res, nil
}

func TestClaimFromMainnet(t *testing.T) {
	e := newTestEnv(t)
	reqs, mainnetTree := deposits(0, 5)
	mainnetExitRoot := mainnetTree.Root()
	rollupExitRoot := common.HexToHash("0xbeef")
	e.setRoots(t, mainnetExitRoot, rollupExitRoot)

	req := reqs[2]
	req.GlobalIndex = bridgetypes.GenerateGlobalIndex(true, 0, 2)
	req.MainnetExitRoot = mainnetExitRoot
	req.RollupExitRoot = rollupExitRoot
	req.SMTProofLocalExitRoot = toProof(mainnetTree.Proof(2))

	res, err := e.claim(t, &req)
	require.NoError(t, err)
	require.True(t, res.MainnetFlag)
	require.Equal(t, uint32(2), res.LocalExitRootIndex)
	require.Equal(t, mainnetTree.Leaves[2], res.Leaf)
	require.Equal(t, globalexitroot.CalculateGlobalExitRoot(mainnetExitRoot, rollupExitRoot), res.GlobalExitRoot)

	claimed, err := e.bitmap.IsClaimed(nil, req.GlobalIndex)
	require.NoError(t, err)
	require.True(t, claimed)

	_, err = e.claim(t, &req)
	require.ErrorIs(t, err, bridgetypes.ErrAlreadyClaimed)
	// replays fail the same way with any other argument
	garbage := bridgetypes.ClaimRequest{GlobalIndex: req.GlobalIndex, OriginNetwork: 7, DestinationNetwork: 9}
	_, err = e.claim(t, &garbage)
	require.ErrorIs(t, err, bridgetypes.ErrAlreadyClaimed)

	// newer roots don't invalidate claims against a previous combination
	e.setRoots(t, common.HexToHash("0x99"), common.HexToHash("0x98"))
	previous := reqs[3]
	previous.GlobalIndex = bridgetypes.GenerateGlobalIndex(true, 0, 3)
	previous.MainnetExitRoot = mainnetExitRoot
	previous.RollupExitRoot = rollupExitRoot
	previous.SMTProofLocalExitRoot = toProof(mainnetTree.Proof(3))
	res, err = e.claim(t, &previous)
	require.NoError(t, err)
	require.Equal(t, globalexitroot.CalculateGlobalExitRoot(mainnetExitRoot, rollupExitRoot), res.GlobalExitRoot)
}

func TestClaimThroughRollupExitTree(t *testing.T) {
	e := newTestEnv(t)
	// deposits of mainnet, certified through the rollup exit tree at index 5
	mainnetReqs, mainnetTree := deposits(0, 5)
	// deposits of rollup 3 (network 4), at index 3 of the rollup exit tree
	rollupReqs, rollupTree := deposits(4, 3)

	rollupExitTree := testvectors.ReferenceTree{Height: treetypes.DefaultHeight, Leaves: make([]common.Hash, 6)}
	rollupExitTree.Leaves[3] = rollupTree.Root()
	rollupExitTree.Leaves[5] = mainnetTree.Root()
	mainnetExitRoot := mainnetTree.Root()
	rollupExitRoot := rollupExitTree.Root()
	e.setRoots(t, mainnetExitRoot, rollupExitRoot)

	mainnetReq := mainnetReqs[2]
	mainnetReq.GlobalIndex = bridgetypes.GenerateGlobalIndex(false, 5, 2)
	mainnetReq.MainnetExitRoot = mainnetExitRoot
	mainnetReq.RollupExitRoot = rollupExitRoot
	mainnetReq.SMTProofLocalExitRoot = toProof(mainnetTree.Proof(2))
	mainnetReq.SMTProofRollupExitRoot = toProof(rollupExitTree.Proof(5))
	res, err := e.claim(t, &mainnetReq)
	require.NoError(t, err)
	require.False(t, res.MainnetFlag)
	require.Equal(t, uint32(5), res.RollupIndex)

	rollupReq := rollupReqs[1]
	rollupReq.GlobalIndex = bridgetypes.GenerateGlobalIndex(false, 3, 1)
	rollupReq.MainnetExitRoot = mainnetExitRoot
	rollupReq.RollupExitRoot = rollupExitRoot
	rollupReq.SMTProofLocalExitRoot = toProof(rollupTree.Proof(1))
	rollupReq.SMTProofRollupExitRoot = toProof(rollupExitTree.Proof(3))
	_, err = e.claim(t, &rollupReq)
	require.NoError(t, err)

	// same deposit but pointing to the wrong rollup index
	wrongRollup := rollupReqs[2]
	wrongRollup.GlobalIndex = bridgetypes.GenerateGlobalIndex(false, 4, 2)
	wrongRollup.MainnetExitRoot = mainnetExitRoot
	wrongRollup.RollupExitRoot = rollupExitRoot
	wrongRollup.SMTProofLocalExitRoot = toProof(rollupTree.Proof(2))
	wrongRollup.SMTProofRollupExitRoot = toProof(rollupExitTree.Proof(3))
	_, err = e.claim(t, &wrongRollup)
	require.ErrorIs(t, err, bridgetypes.ErrInvalidProof)
}

func TestClaimErrors(t *testing.T) {
	e := newTestEnv(t)
	reqs, mainnetTree := deposits(0, 3)
	mainnetExitRoot := mainnetTree.Root()
	rollupExitRoot := common.HexToHash("0xbeef")
	e.setRoots(t, mainnetExitRoot, rollupExitRoot)

	valid := func() bridgetypes.ClaimRequest {
		req := reqs[1]
		req.GlobalIndex = bridgetypes.GenerateGlobalIndex(true, 0, 1)
		req.MainnetExitRoot = mainnetExitRoot
		req.RollupExitRoot = rollupExitRoot
		req.SMTProofLocalExitRoot = toProof(mainnetTree.Proof(1))
		return req
	}

	tests := []struct {
		name        string
		mutate      func(req *bridgetypes.ClaimRequest)
		expectedErr error
	}{
		{
			name:        "non canonical global index",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.GlobalIndex = new(big.Int).Lsh(big.NewInt(1), 70) },
			expectedErr: bridgetypes.ErrInvalidGlobalIndex,
		},
		{
			name:        "mainnet flag with rollup origin",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.OriginNetwork = 2 },
			expectedErr: bridgetypes.ErrInvalidGlobalIndex,
		},
		{
			name:        "wrong destination network",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.DestinationNetwork = 2 },
			expectedErr: bridgetypes.ErrDestinationNetworkInvalid,
		},
		{
			name:        "unknown global exit root",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.RollupExitRoot = common.HexToHash("0xdead") },
			expectedErr: bridgetypes.ErrGlobalExitRootNotFound,
		},
		{
			name:        "different amount",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.Amount = big.NewInt(1) },
			expectedErr: bridgetypes.ErrInvalidProof,
		},
		{
			name:        "wrong index",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.GlobalIndex = bridgetypes.GenerateGlobalIndex(true, 0, 2) },
			expectedErr: bridgetypes.ErrInvalidProof,
		},
		{
			name:        "tampered proof",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.SMTProofLocalExitRoot[3] = common.HexToHash("0x01") },
			expectedErr: bridgetypes.ErrInvalidProof,
		},
		{
			name:        "negative amount",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.Amount = big.NewInt(-1) },
			expectedErr: bridgetypes.ErrAmountOrBalanceMismatch,
		},
		{
			name:        "amount wider than 256 bits",
			mutate:      func(req *bridgetypes.ClaimRequest) { req.Amount = new(big.Int).Lsh(big.NewInt(1), 256) },
			expectedErr: bridgetypes.ErrAmountOrBalanceMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			_, err := e.claim(t, &req)
			require.ErrorIs(t, err, tt.expectedErr)
			if req.GlobalIndex.Cmp(new(big.Int).Lsh(big.NewInt(1), 65)) < 0 {
				claimed, err := e.bitmap.IsClaimed(nil, req.GlobalIndex)
				require.NoError(t, err)
				require.False(t, claimed)
			}
		})
	}

	// after all the failures the valid claim still succeeds
	req := valid()
	_, err := e.claim(t, &req)
	require.NoError(t, err)
}
