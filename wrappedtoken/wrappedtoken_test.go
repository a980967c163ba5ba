package wrappedtoken

import (
	"context"
	"path"
	"testing"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/wrappedtoken/migrations"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

var (
	bridgeAddr = common.HexToAddress("0x2a3DD3EB832aF982ec71669E178424b10Dca2EDe")
	pol        = common.HexToAddress("0x455e53CBB86018Ac2B8092FdCd39d8444aFFC3F6")
)

func TestDerive(t *testing.T) {
	metadata := []byte("metadata")
	base := common.FromHex("0x6080604052")

	salt := make([]byte, 0, 24)
	salt = append(salt, 0, 0, 0, 0)
	salt = append(salt, pol.Bytes()...)
	require.Equal(t, crypto.Keccak256Hash(salt), Salt(0, pol))

	initCodeHash := crypto.Keccak256(append(common.CopyBytes(base), metadata...))
	require.Equal(t, common.BytesToHash(initCodeHash), InitCodeHash(base, metadata))

	preimage := []byte{0xff}
	preimage = append(preimage, bridgeAddr.Bytes()...)
	preimage = append(preimage, crypto.Keccak256(salt)...)
	preimage = append(preimage, initCodeHash...)
	expected := common.BytesToAddress(crypto.Keccak256(preimage)[12:])
	require.Equal(t, expected, Derive(bridgeAddr, 0, pol, metadata, base))

	// deterministic
	require.Equal(t, Derive(bridgeAddr, 0, pol, metadata, base), Derive(bridgeAddr, 0, pol, metadata, base))
	// every input is part of the address
	require.NotEqual(t, expected, Derive(bridgeAddr, 0, common.HexToAddress("0x01"), metadata, base))
	require.NotEqual(t, expected, Derive(bridgeAddr, 1, pol, metadata, base))
	require.NotEqual(t, expected, Derive(bridgeAddr, 0, pol, []byte("other"), base))
	require.NotEqual(t, expected, Derive(common.HexToAddress("0x01"), 0, pol, metadata, base))
	require.NotEqual(t, expected, Derive(bridgeAddr, 0, pol, metadata, DefaultBaseInitBytecode))
}

func TestDeriverCache(t *testing.T) {
	d, err := NewDeriver(bridgeAddr, nil, 2)
	require.NoError(t, err)
	require.Equal(t, bridgeAddr, d.BridgeAddress())

	expected := Derive(bridgeAddr, 0, pol, nil, DefaultBaseInitBytecode)
	require.Equal(t, expected, d.PrecalculatedWrapperAddress(0, pol, nil))
	require.Equal(t, 1, d.cache.Len())
	require.Equal(t, expected, d.PrecalculatedWrapperAddress(0, pol, nil))
	require.Equal(t, 1, d.cache.Len())

	d.PrecalculatedWrapperAddress(0, pol, []byte{1})
	d.PrecalculatedWrapperAddress(1, pol, nil)
	require.Equal(t, 2, d.cache.Len())

	_, err = NewDeriver(bridgeAddr, nil, 0)
	require.Error(t, err)
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	dbPath := path.Join(t.TempDir(), "wrapped.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	s, err := NewStore(database, 10)
	require.NoError(t, err)

	wrapped := &WrappedToken{
		WrappedTokenAddress: Derive(bridgeAddr, 0, pol, []byte("meta"), DefaultBaseInitBytecode),
		OriginNetwork:       0,
		OriginTokenAddress:  pol,
		Metadata:            []byte("meta"),
	}

	_, err = s.GetByOrigin(nil, 0, pol)
	require.ErrorIs(t, err, db.ErrNotFound)

	// rolled back additions are not visible nor cached
	tx, err := db.NewTx(ctx, database)
	require.NoError(t, err)
	require.NoError(t, s.Add(tx, wrapped))
	inTx, err := s.GetByOrigin(tx, 0, pol)
	require.NoError(t, err)
	require.Equal(t, wrapped.WrappedTokenAddress, inTx.WrappedTokenAddress)
	require.NoError(t, tx.Rollback())
	require.Equal(t, 0, s.byOrigin.Len())
	_, err = s.GetByAddress(nil, wrapped.WrappedTokenAddress)
	require.ErrorIs(t, err, db.ErrNotFound)

	tx, err = db.NewTx(ctx, database)
	require.NoError(t, err)
	require.NoError(t, s.Add(tx, wrapped))
	// the same origin token can't be wrapped twice
	duplicated := *wrapped
	duplicated.WrappedTokenAddress = common.HexToAddress("0x01")
	require.Error(t, s.Add(tx, &duplicated))
	require.NoError(t, tx.Commit())
	require.Equal(t, 1, s.byOrigin.Len())

	byOrigin, err := s.GetByOrigin(nil, 0, pol)
	require.NoError(t, err)
	require.Equal(t, wrapped, byOrigin)
	byAddress, err := s.GetByAddress(nil, wrapped.WrappedTokenAddress)
	require.NoError(t, err)
	require.Equal(t, wrapped.TokenInfo(), byAddress.TokenInfo())

	// a fresh store reads from the DB
	s2, err := NewStore(database, 10)
	require.NoError(t, err)
	fromDB, err := s2.GetByAddress(nil, wrapped.WrappedTokenAddress)
	require.NoError(t, err)
	require.Equal(t, wrapped.Metadata, fromDB.Metadata)
	require.Equal(t, wrapped.OriginTokenAddress, fromDB.OriginTokenAddress)

	all, err := s2.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
