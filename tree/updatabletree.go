package tree

import (
	"context"
	"database/sql"
	"errors"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
)

// UpdatableTree is a tree where any leaf can be overwritten. Each change of the root is
// stored with an increasing position
type UpdatableTree struct {
	*Tree
	lastRoot  common.Hash
	lastIndex int64
}

// NewUpdatableTree returns an UpdatableTree loaded with the last stored root
func NewUpdatableTree(ctx context.Context, database *sql.DB) (*UpdatableTree, error) {
	t := newTree(database)
	ut := &UpdatableTree{
		Tree:      t,
		lastRoot:  t.zeroHashes[types.DefaultHeight],
		lastIndex: -1,
	}
	root, err := t.getLastRootWithTx(database)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ut, nil
		}
		return nil, err
	}
	ut.lastRoot = root.Hash
	ut.lastIndex = int64(root.Index)
	return ut, nil
}

// UpsertLeaf sets the value of the leaf at leaf.Index and returns the new root.
// If the root doesn't change nothing is stored
func (t *UpdatableTree) UpsertLeaf(tx db.Txer, leaf types.Leaf) (common.Hash, error) {
	siblings, _, err := t.getSiblings(tx, leaf.Index, t.lastRoot)
	if err != nil {
		return common.Hash{}, err
	}
	currentChildHash := leaf.Hash
	newNodes := make([]types.TreeNode, 0, types.DefaultHeight)
	for h := uint8(0); h < types.DefaultHeight; h++ {
		var parent types.TreeNode
		if leaf.Index&(1<<h) > 0 {
			// Add child to the right
			parent = newTreeNode(siblings[h], currentChildHash)
		} else {
			// Add child to the left
			parent = newTreeNode(currentChildHash, siblings[h])
		}
		currentChildHash = parent.Hash
		newNodes = append(newNodes, parent)
	}
	if currentChildHash == t.lastRoot {
		return currentChildHash, nil
	}

	if err := t.storeNodes(tx, newNodes); err != nil {
		return common.Hash{}, err
	}
	if err := t.storeRoot(tx, types.Root{
		Hash:  currentChildHash,
		Index: uint32(t.lastIndex + 1),
	}); err != nil {
		return common.Hash{}, err
	}

	backupRoot := t.lastRoot
	backupIndex := t.lastIndex
	tx.AddRollbackCallback(func() {
		t.lastRoot = backupRoot
		t.lastIndex = backupIndex
	})
	t.lastRoot = currentChildHash
	t.lastIndex++
	return currentChildHash, nil
}
