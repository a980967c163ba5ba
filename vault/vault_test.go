package vault

import (
	"context"
	"math/big"
	"path"
	"testing"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/vault/migrations"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	bridgeAddr = common.HexToAddress("0xb41d6e")
	alice      = common.HexToAddress("0xa11ce")
	bob        = common.HexToAddress("0xb0b")
	pol        = common.HexToAddress("0x455e53CBB86018Ac2B8092FdCd39d8444aFFC3F6")
	native     = common.Address{}
)

func newTestVault(t *testing.T) (*Vault, string) {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "vault.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	v, err := New(context.Background(), database, bridgeAddr, Config{
		Tokens: []TokenConfig{{Address: pol, Name: "Polygon Ecosystem Token", Symbol: "POL", Decimals: 18}},
		Allocations: []Allocation{
			{Token: native, Holder: alice, Amount: "1000"},
			{Token: pol, Holder: alice, Amount: "500"},
		},
	})
	require.NoError(t, err)
	return v, dbPath
}

func requireBalance(t *testing.T, v *Vault, tokenAddr, holder common.Address, expected int64) {
	t.Helper()
	b, err := v.BalanceOf(context.Background(), tokenAddr, holder)
	require.NoError(t, err)
	require.Equal(t, 0, big.NewInt(expected).Cmp(b), "expected %d actual %s", expected, b.String())
}

func TestMetadata(t *testing.T) {
	m := TokenMetadata{Name: "Dai Stablecoin", Symbol: "DAI", Decimals: 18}
	encoded, err := EncodeMetadata(m)
	require.NoError(t, err)
	// two offsets, decimals and two (length, data) pairs
	require.Len(t, encoded, 7*32)
	decoded, err := DecodeMetadata(encoded)
	require.NoError(t, err)
	require.Equal(t, m, decoded)

	_, err = DecodeMetadata([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestAllocationsAndTransfers(t *testing.T) {
	ctx := context.Background()
	v, dbPath := newTestVault(t)
	requireBalance(t, v, native, alice, 1000)
	requireBalance(t, v, pol, alice, 500)

	tx, err := db.NewTx(ctx, v.db)
	require.NoError(t, err)
	require.NoError(t, v.LockAsset(ctx, tx, alice, native, big.NewInt(300), nil))
	require.NoError(t, v.ReleaseAsset(ctx, tx, native, bob, big.NewInt(100)))
	require.NoError(t, tx.Commit())
	requireBalance(t, v, native, alice, 700)
	requireBalance(t, v, native, bridgeAddr, 200)
	requireBalance(t, v, native, bob, 100)

	tx, err = db.NewTx(ctx, v.db)
	require.NoError(t, err)
	err = v.LockAsset(ctx, tx, bob, native, big.NewInt(101), nil)
	require.ErrorIs(t, err, bridgetypes.ErrAmountOrBalanceMismatch)
	err = v.ReleaseAsset(ctx, tx, pol, bob, big.NewInt(1))
	require.ErrorIs(t, err, bridgetypes.ErrAmountOrBalanceMismatch)
	require.NoError(t, tx.Rollback())
	requireBalance(t, v, native, bob, 100)

	// restarting doesn't credit the allocations again
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	v2, err := New(ctx, database, bridgeAddr, Config{
		Allocations: []Allocation{{Token: native, Holder: alice, Amount: "1000"}},
	})
	require.NoError(t, err)
	requireBalance(t, v2, native, alice, 700)
}

func TestWrappedTokens(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)
	wrapped := common.HexToAddress("0x3a9")
	metadata, err := EncodeMetadata(TokenMetadata{Name: "Wrapped", Symbol: "WRP", Decimals: 6})
	require.NoError(t, err)

	tx, err := db.NewTx(ctx, v.db)
	require.NoError(t, err)
	// minting a token that is not deployed fails
	require.Error(t, v.MintWrapped(ctx, tx, wrapped, bob, big.NewInt(1)))
	require.NoError(t, v.DeployWrapped(ctx, tx, wrapped, metadata))
	require.NoError(t, v.MintWrapped(ctx, tx, wrapped, bob, big.NewInt(50)))
	require.NoError(t, v.BurnWrapped(ctx, tx, bob, wrapped, big.NewInt(20)))
	err = v.BurnWrapped(ctx, tx, bob, wrapped, big.NewInt(31))
	require.ErrorIs(t, err, bridgetypes.ErrAmountOrBalanceMismatch)
	require.NoError(t, tx.Commit())
	requireBalance(t, v, wrapped, bob, 30)

	actual, err := v.TokenMetadata(ctx, v.db, wrapped)
	require.NoError(t, err)
	require.Equal(t, metadata, actual)

	// a wrapped token whose metadata can't be decoded uses the fallbacks
	tx, err = db.NewTx(ctx, v.db)
	require.NoError(t, err)
	require.NoError(t, v.DeployWrapped(ctx, tx, common.HexToAddress("0x3b0"), []byte("garbage")))
	require.NoError(t, tx.Commit())
	fallback, err := v.TokenMetadata(ctx, v.db, common.HexToAddress("0x3b0"))
	require.NoError(t, err)
	decoded, err := DecodeMetadata(fallback)
	require.NoError(t, err)
	require.Equal(t, TokenMetadata{Name: "NO_NAME", Symbol: "NO_SYMBOL", Decimals: 18}, decoded)
}

func TestTokenMetadata(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	polMetadata, err := v.TokenMetadata(ctx, v.db, pol)
	require.NoError(t, err)
	decoded, err := DecodeMetadata(polMetadata)
	require.NoError(t, err)
	require.Equal(t, TokenMetadata{Name: "Polygon Ecosystem Token", Symbol: "POL", Decimals: 18}, decoded)

	unknown, err := v.TokenMetadata(ctx, v.db, common.HexToAddress("0x1234"))
	require.NoError(t, err)
	decoded, err = DecodeMetadata(unknown)
	require.NoError(t, err)
	require.Equal(t, fallbackMetadata(), decoded)
}
