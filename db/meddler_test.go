package db

import (
	"math/big"
	"path"
	"testing"

	tree "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

type meddlerRow struct {
	ID      int            `meddler:"id,pk"`
	Amount  *big.Int       `meddler:"amount,bigint"`
	Root    common.Hash    `meddler:"root,hash"`
	Account common.Address `meddler:"account,address"`
	Proof   tree.Proof     `meddler:"proof,merkleproof"`
}

func TestTextMeddlers(t *testing.T) {
	database, err := NewSQLiteDB(path.Join(t.TempDir(), "meddler.sqlite"))
	require.NoError(t, err)
	_, err = database.Exec(`
		CREATE TABLE meddler_row (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			amount  TEXT NOT NULL,
			root    TEXT NOT NULL,
			account TEXT NOT NULL,
			proof   TEXT NOT NULL
		);
	`)
	require.NoError(t, err)

	amount, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	require.True(t, ok)
	expected := &meddlerRow{
		Amount:  amount,
		Root:    common.HexToHash("0x27ae5ba08d7291c96c8cbddcc148bf48a6d68c7974b94356f53754ef6171d757"),
		Account: common.HexToAddress("0xc949254d682d8c9ad5682521675b8f43b102aec4"),
	}
	for i := range expected.Proof {
		expected.Proof[i] = common.BigToHash(big.NewInt(int64(i)))
	}
	require.NoError(t, meddler.Insert(database, "meddler_row", expected))

	actual := &meddlerRow{}
	require.NoError(t, meddler.QueryRow(database, actual, `SELECT * FROM meddler_row WHERE id = $1;`, expected.ID))
	require.Equal(t, expected, actual)

	// nil big ints are stored as 0
	require.NoError(t, meddler.Insert(database, "meddler_row", &meddlerRow{}))
	actual = &meddlerRow{}
	require.NoError(t, meddler.QueryRow(database, actual, `SELECT * FROM meddler_row WHERE id = 2;`))
	require.Equal(t, 0, actual.Amount.Sign())
}

func TestReturnErrNotFound(t *testing.T) {
	database, err := NewSQLiteDB(path.Join(t.TempDir(), "notfound.sqlite"))
	require.NoError(t, err)
	var id int
	err = database.QueryRow(`SELECT 1 WHERE 1 = 0;`).Scan(&id)
	require.ErrorIs(t, ReturnErrNotFound(err), ErrNotFound)
	require.NoError(t, ReturnErrNotFound(nil))
}
