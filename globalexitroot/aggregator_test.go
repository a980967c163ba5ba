package globalexitroot

import (
	"context"
	"path"
	"testing"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/globalexitroot/migrations"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

var (
	mainnetUpdater = common.HexToAddress("0x1111")
	rollupUpdater  = common.HexToAddress("0x2222")
)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "ger.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	return New(database, AddressAuthorizer{MainnetUpdater: mainnetUpdater, RollupUpdater: rollupUpdater})
}

func update(t *testing.T, a *Aggregator, caller common.Address, root common.Hash) common.Hash {
	t.Helper()
	tx, err := db.NewTx(context.Background(), a.db)
	require.NoError(t, err)
	_, ger, err := a.UpdateExitRoot(tx, caller, root)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return ger
}

func TestCalculateGlobalExitRoot(t *testing.T) {
	mainnet := common.HexToHash("0xaaaa")
	rollup := common.HexToHash("0xbbbb")
	require.Equal(t, crypto.Keccak256Hash(mainnet[:], rollup[:]), CalculateGlobalExitRoot(mainnet, rollup))
	require.NotEqual(t, CalculateGlobalExitRoot(mainnet, rollup), CalculateGlobalExitRoot(rollup, mainnet))
}

func TestAggregatorHistory(t *testing.T) {
	ctx := context.Background()
	a := newTestAggregator(t)

	snapshot, err := a.GetSnapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, common.Hash{}, snapshot.MainnetExitRoot)
	require.Equal(t, common.Hash{}, snapshot.RollupExitRoot)
	require.Equal(t, CalculateGlobalExitRoot(common.Hash{}, common.Hash{}), snapshot.GlobalExitRoot)

	m1, m2 := common.HexToHash("0xa1"), common.HexToHash("0xa2")
	r1, r2 := common.HexToHash("0xb1"), common.HexToHash("0xb2")

	ger1 := update(t, a, mainnetUpdater, m1)
	require.Equal(t, CalculateGlobalExitRoot(m1, common.Hash{}), ger1)
	ger2 := update(t, a, rollupUpdater, r1)
	require.Equal(t, CalculateGlobalExitRoot(m1, r1), ger2)
	ger3 := update(t, a, mainnetUpdater, m2)
	require.Equal(t, CalculateGlobalExitRoot(m2, r1), ger3)
	ger4 := update(t, a, rollupUpdater, r2)
	require.Equal(t, CalculateGlobalExitRoot(m2, r2), ger4)
	// going back to a previous pair doesn't add a new entry
	update(t, a, mainnetUpdater, m1)
	update(t, a, rollupUpdater, r1)

	current, err := a.CurrentGlobalExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, ger2, current)
	lastMainnet, err := a.LastMainnetExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, m1, lastMainnet)
	lastRollup, err := a.LastRollupExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, r1, lastRollup)

	for _, pair := range [][2]common.Hash{{m1, {}}, {m1, r1}, {m2, r1}, {m2, r2}, {m1, r2}} {
		known, err := a.IsKnownCombination(nil, pair[0], pair[1])
		require.NoError(t, err)
		require.True(t, known, "%s %s", pair[0].Hex(), pair[1].Hex())
	}
	for _, pair := range [][2]common.Hash{{m2, {}}, {{}, {}}, {r1, m1}} {
		known, err := a.IsKnownCombination(nil, pair[0], pair[1])
		require.NoError(t, err)
		require.False(t, known)
	}

	history, err := a.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 5)
	require.Equal(t, ger1, history[0].GlobalExitRoot)
	require.Equal(t, ger4, history[3].GlobalExitRoot)
	require.Equal(t, CalculateGlobalExitRoot(m1, r2), history[4].GlobalExitRoot)

	info, err := a.GetGlobalExitRoot(ctx, ger2)
	require.NoError(t, err)
	require.Equal(t, m1, info.MainnetExitRoot)
	require.Equal(t, r1, info.RollupExitRoot)
	_, err = a.GetGlobalExitRoot(ctx, common.HexToHash("0xdead"))
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestAggregatorUnauthorized(t *testing.T) {
	ctx := context.Background()
	a := newTestAggregator(t)
	tx, err := db.NewTx(ctx, a.db)
	require.NoError(t, err)
	_, _, err = a.UpdateExitRoot(tx, common.HexToAddress("0x3333"), common.HexToHash("0x01"))
	require.ErrorIs(t, err, bridgetypes.ErrUnauthorized)
	require.NoError(t, tx.Rollback())

	history, err := a.GetHistory(ctx)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestAggregatorRollback(t *testing.T) {
	ctx := context.Background()
	a := newTestAggregator(t)
	update(t, a, mainnetUpdater, common.HexToHash("0x01"))

	tx, err := db.NewTx(ctx, a.db)
	require.NoError(t, err)
	_, err = a.UpdateRollupRoot(tx, common.HexToHash("0x02"))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	lastRollup, err := a.LastRollupExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, common.Hash{}, lastRollup)
	known, err := a.IsKnownCombination(nil, common.HexToHash("0x01"), common.HexToHash("0x02"))
	require.NoError(t, err)
	require.False(t, known)
}

func TestAuthorizerFunc(t *testing.T) {
	a := AuthorizerFunc(func(caller common.Address) (Side, error) {
		return SideRollup, nil
	})
	side, err := a.Authorize(common.Address{})
	require.NoError(t, err)
	require.Equal(t, SideRollup, side)
	require.Equal(t, "rollup", side.String())
	require.Equal(t, "mainnet", SideMainnet.String())
}
