package tree_test

import (
	"context"
	"path"
	"testing"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/tree"
	"github.com/0xPolygon/cdk-bridge/tree/migrations"
	"github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestUpdatableTreeExploratory(t *testing.T) {
	dbPath := path.Join(t.TempDir(), "updatable.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	treeDB, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	ctx := context.TODO()
	sut, err := tree.NewUpdatableTree(ctx, treeDB)
	require.NoError(t, err)

	leaf1 := types.Leaf{
		Index: 10,
		Hash:  common.HexToHash("0x123456"),
	}
	leaf2 := types.Leaf{
		Index: 1,
		Hash:  common.HexToHash("0x123478"),
	}

	tx, err := db.NewTx(ctx, treeDB)
	require.NoError(t, err)
	root1, err := sut.UpsertLeaf(tx, leaf1)
	require.NoError(t, err)
	root2, err := sut.UpsertLeaf(tx, leaf2)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NotEqual(t, root1, root2)

	leaf1get, err := sut.GetLeaf(ctx, leaf1.Index, root2)
	require.NoError(t, err)
	require.Equal(t, leaf1.Hash, leaf1get)
	// If a leaf dont exist return 'not found' error
	_, err = sut.GetLeaf(ctx, 99, root2)
	require.ErrorIs(t, err, db.ErrNotFound)

	// writing the zero hash on an empty position doesn't change the root
	tx, err = db.NewTx(ctx, treeDB)
	require.NoError(t, err)
	sameRoot, err := sut.UpsertLeaf(tx, types.Leaf{Index: 99, Hash: common.Hash{}})
	require.NoError(t, err)
	require.Equal(t, root2, sameRoot)
	require.NoError(t, tx.Commit())

	proof, err := sut.GetProof(ctx, leaf1.Index, root2)
	require.NoError(t, err)
	require.True(t, tree.VerifyMerkleProof(leaf1.Hash, proof, leaf1.Index, root2))

	// overwrite leaf1, the historical proof keeps verifying against the old root
	tx, err = db.NewTx(ctx, treeDB)
	require.NoError(t, err)
	root3, err := sut.UpsertLeaf(tx, types.Leaf{Index: leaf1.Index, Hash: common.HexToHash("0x99")})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NotEqual(t, root2, root3)
	require.True(t, tree.VerifyMerkleProof(leaf1.Hash, proof, leaf1.Index, root2))
	newLeaf, err := sut.GetLeaf(ctx, leaf1.Index, root3)
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x99"), newLeaf)

	lastRoot, err := sut.GetLastRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, root3, lastRoot.Hash)
	require.Equal(t, uint32(2), lastRoot.Index)
}

func TestUpdatableTreeRollbackAndRestart(t *testing.T) {
	dbPath := path.Join(t.TempDir(), "updatable.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	treeDB, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	ctx := context.Background()
	sut, err := tree.NewUpdatableTree(ctx, treeDB)
	require.NoError(t, err)

	tx, err := db.NewTx(ctx, treeDB)
	require.NoError(t, err)
	root1, err := sut.UpsertLeaf(tx, types.Leaf{Index: 0, Hash: common.HexToHash("0x01")})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	tx, err = db.NewTx(ctx, treeDB)
	require.NoError(t, err)
	_, err = sut.UpsertLeaf(tx, types.Leaf{Index: 0, Hash: common.HexToHash("0x02")})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	// after the rollback the tree keeps building on root1
	tx, err = db.NewTx(ctx, treeDB)
	require.NoError(t, err)
	root2, err := sut.UpsertLeaf(tx, types.Leaf{Index: 1, Hash: common.HexToHash("0x03")})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	leaf0, err := sut.GetLeaf(ctx, 0, root2)
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x01"), leaf0)

	restarted, err := tree.NewUpdatableTree(ctx, treeDB)
	require.NoError(t, err)
	tx, err = db.NewTx(ctx, treeDB)
	require.NoError(t, err)
	root3, err := restarted.UpsertLeaf(tx, types.Leaf{Index: 1, Hash: common.HexToHash("0x04")})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	stored, err := restarted.GetRootByIndex(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, root3, stored.Hash)
	first, err := restarted.GetRootByIndex(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, root1, first.Hash)
}
