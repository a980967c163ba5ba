package tree

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidIndex = errors.New("invalid leaf index")

// AppendOnlyTree is a tree where leaves are added sequentially (by index)
type AppendOnlyTree struct {
	*Tree
	lastLeftCache [types.DefaultHeight]common.Hash
	lastIndex     int64
}

// NewAppendOnlyTree creates a AppendOnlyTree and loads the frontier of the last stored root
func NewAppendOnlyTree(ctx context.Context, database *sql.DB) (*AppendOnlyTree, error) {
	t := &AppendOnlyTree{Tree: newTree(database)}
	if err := t.initCache(t.db); err != nil {
		return nil, fmt.Errorf("error loading the tree cache: %w", err)
	}
	return t, nil
}

// AddLeaf adds a leaf to the tree. The index of the leaf must be the index of the last leaf added +1.
// It returns the new root. If tx is rolled back, the in-memory state is restored
func (t *AppendOnlyTree) AddLeaf(tx db.Txer, leaf types.Leaf) (common.Hash, error) {
	if int64(leaf.Index) != t.lastIndex+1 {
		return common.Hash{}, fmt.Errorf(
			"%w. Expected: %d, actual: %d",
			ErrInvalidIndex, t.lastIndex+1, leaf.Index,
		)
	}

	backupIndex := t.lastIndex
	backupCache := t.lastLeftCache
	tx.AddRollbackCallback(func() {
		t.lastIndex = backupIndex
		t.lastLeftCache = backupCache
	})

	// Calculate new tree nodes
	currentChildHash := leaf.Hash
	newNodes := make([]types.TreeNode, 0, types.DefaultHeight)
	newCache := t.lastLeftCache
	for h := uint8(0); h < types.DefaultHeight; h++ {
		var parent types.TreeNode
		if leaf.Index&(1<<h) > 0 {
			// Add child to the right
			parent = newTreeNode(newCache[h], currentChildHash)
		} else {
			// Add child to the left
			parent = newTreeNode(currentChildHash, t.zeroHashes[h])
			newCache[h] = currentChildHash
		}
		currentChildHash = parent.Hash
		newNodes = append(newNodes, parent)
	}

	if err := t.storeRoot(tx, types.Root{
		Hash:  currentChildHash,
		Index: leaf.Index,
	}); err != nil {
		return common.Hash{}, fmt.Errorf("failed to store root: %w", err)
	}
	if err := t.storeNodes(tx, newNodes); err != nil {
		return common.Hash{}, fmt.Errorf("failed to store nodes: %w", err)
	}
	t.lastLeftCache = newCache
	t.lastIndex++
	return currentChildHash, nil
}

// NextIndex returns the index that the next added leaf must have
func (t *AppendOnlyTree) NextIndex() uint32 {
	return uint32(t.lastIndex + 1)
}

// initCache rebuilds the frontier by walking the path of the last leaf from the last root
func (t *AppendOnlyTree) initCache(tx db.Querier) error {
	siblings := [types.DefaultHeight]common.Hash{}
	lastRoot, err := t.getLastRootWithTx(tx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			t.lastIndex = -1
			t.lastLeftCache = siblings
			return nil
		}
		return err
	}
	t.lastIndex = int64(lastRoot.Index)
	currentNodeHash := lastRoot.Hash
	index := t.lastIndex
	// It starts in height-1 because 0 is the level of the leafs
	for h := int(types.DefaultHeight - 1); h >= 0; h-- {
		currentNode, err := t.getRHTNode(tx, currentNodeHash)
		if err != nil {
			return fmt.Errorf(
				"error getting node %s from the RHT at height %d with root %s: %w",
				currentNodeHash.Hex(), h, lastRoot.Hash.Hex(), err,
			)
		}
		siblings[h] = currentNode.Left
		if index&(1<<h) > 0 {
			currentNodeHash = currentNode.Right
		} else {
			currentNodeHash = currentNode.Left
		}
	}

	t.lastLeftCache = siblings
	return nil
}
