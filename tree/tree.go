package tree

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"golang.org/x/crypto/sha3"
)

const (
	rhtTable  = "rht"
	rootTable = "root"
)

var (
	EmptyProof = types.Proof{}

	zeroHashes = generateZeroHashes(types.DefaultHeight)
)

type Tree struct {
	db         *sql.DB
	zeroHashes []common.Hash
}

func hashPair(left, right common.Hash) common.Hash {
	var hash common.Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(left[:])
	hasher.Write(right[:])
	copy(hash[:], hasher.Sum(nil))
	return hash
}

func newTreeNode(left, right common.Hash) types.TreeNode {
	return types.TreeNode{
		Hash:  hashPair(left, right),
		Left:  left,
		Right: right,
	}
}

func newTree(database *sql.DB) *Tree {
	return &Tree{
		db:         database,
		zeroHashes: zeroHashes,
	}
}

// EmptyRoot returns the root of a tree with no leaves
func EmptyRoot() common.Hash {
	return zeroHashes[types.DefaultHeight]
}

// ZeroHash returns the root of an empty subtree of the given height
func ZeroHash(height uint8) common.Hash {
	return zeroHashes[height]
}

func (t *Tree) getSiblings(tx db.Querier, index uint32, root common.Hash) (
	siblings types.Proof,
	hasUsedZeroHashes bool,
	err error,
) {
	currentNodeHash := root
	// It starts in height-1 because 0 is the level of the leafs
	for h := int(types.DefaultHeight - 1); h >= 0; h-- {
		var currentNode *types.TreeNode
		currentNode, err = t.getRHTNode(tx, currentNodeHash)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				hasUsedZeroHashes = true
				siblings[h] = t.zeroHashes[h]
				err = nil
				continue
			}
			err = fmt.Errorf(
				"height: %d, currentNode: %s, error: %w",
				h, currentNodeHash.Hex(), err,
			)
			return
		}
		/*
		*        Root                (level h=3 => height=4)
		*      /     \
		*	 O5       O6             (level h=2)
		*	/ \      / \
		*  O1  O2   O3  O4           (level h=1)
		*  /\   /\   /\ /\
		* 0  1 2  3 4 5 6 7 Leafs    (level h=0)
		* Example 1:
		* Choose index = 3 => 011 binary
		* Assuming we are in level 1 => h=1; 1<<h = 010 binary
		* Now, let's do AND operation => 011&010=010 which is higher than 0 so we need the left sibling (O1)
		* Example 2:
		* Choose index = 4 => 100 binary
		* Assuming we are in level 1 => h=1; 1<<h = 010 binary
		* Now, let's do AND operation => 100&010=000 which is not higher than 0 so we need the right sibling (O4)
		 */
		if index&(1<<h) > 0 {
			siblings[h] = currentNode.Left
			currentNodeHash = currentNode.Right
		} else {
			siblings[h] = currentNode.Right
			currentNodeHash = currentNode.Left
		}
	}

	return
}

// GetProof returns the merkle proof for a given index and root.
func (t *Tree) GetProof(ctx context.Context, index uint32, root common.Hash) (types.Proof, error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Proof{}, err
	}
	defer tx.Rollback() //nolint:errcheck
	siblings, isErrNotFound, err := t.getSiblings(tx, index, root)
	if err != nil {
		return types.Proof{}, err
	}
	if isErrNotFound {
		return types.Proof{}, db.ErrNotFound
	}
	return siblings, nil
}

func (t *Tree) getRHTNode(tx db.Querier, nodeHash common.Hash) (*types.TreeNode, error) {
	node := &types.TreeNode{}
	err := meddler.QueryRow(
		tx, node,
		fmt.Sprintf(`SELECT * FROM %s WHERE hash = $1`, rhtTable),
		nodeHash.Hex(),
	)
	if err != nil {
		return node, db.ReturnErrNotFound(err)
	}
	return node, nil
}

func generateZeroHashes(height uint8) []common.Hash {
	var zeroHashes = []common.Hash{
		{},
	}
	// This generates a leaf = HashZero in position 0. In the rest of the positions that are equivalent to the ascending levels,
	// we set the hashes of the nodes. So all nodes from level i=5 will have the same value and same children nodes.
	for i := 1; i <= int(height); i++ {
		zeroHashes = append(zeroHashes, hashPair(zeroHashes[i-1], zeroHashes[i-1]))
	}
	return zeroHashes
}

// storeNodes persists the nodes of the RHT. Nodes are content addressed, so a node that
// is already stored (same children, same hash) is skipped
func (t *Tree) storeNodes(tx db.Querier, nodes []types.TreeNode) error {
	for i := range nodes {
		if err := meddler.Insert(tx, rhtTable, &nodes[i]); err != nil {
			if db.IsConstraintErr(err) {
				continue
			}
			return err
		}
	}
	return nil
}

func (t *Tree) storeRoot(tx db.Querier, root types.Root) error {
	return meddler.Insert(tx, rootTable, &root)
}

// GetLastRoot returns the last processed root
func (t *Tree) GetLastRoot(ctx context.Context) (types.Root, error) {
	return t.getLastRootWithTx(t.db)
}

func (t *Tree) getLastRootWithTx(tx db.Querier) (types.Root, error) {
	var root types.Root
	err := meddler.QueryRow(
		tx, &root,
		fmt.Sprintf(`SELECT * FROM %s ORDER BY position DESC LIMIT 1;`, rootTable),
	)
	return root, db.ReturnErrNotFound(err)
}

// GetRootByIndex returns the root stored at the given position
func (t *Tree) GetRootByIndex(ctx context.Context, index uint32) (types.Root, error) {
	var root types.Root
	err := meddler.QueryRow(
		t.db, &root,
		fmt.Sprintf(`SELECT * FROM %s WHERE position = $1;`, rootTable),
		index,
	)
	return root, db.ReturnErrNotFound(err)
}

// GetRootByHash returns the latest position at which the tree had the given root
func (t *Tree) GetRootByHash(ctx context.Context, hash common.Hash) (*types.Root, error) {
	root := &types.Root{}
	err := meddler.QueryRow(
		t.db, root,
		fmt.Sprintf(`SELECT * FROM %s WHERE hash = $1 ORDER BY position DESC LIMIT 1;`, rootTable),
		hash.Hex(),
	)
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return root, nil
}

// GetLeaf returns the leaf at the given index of the tree identified by root
func (t *Tree) GetLeaf(ctx context.Context, index uint32, root common.Hash) (common.Hash, error) {
	currentNodeHash := root
	for h := int(types.DefaultHeight - 1); h >= 0; h-- {
		currentNode, err := t.getRHTNode(t.db, currentNodeHash)
		if err != nil {
			return common.Hash{}, err
		}
		if index&(1<<h) > 0 {
			currentNodeHash = currentNode.Right
		} else {
			currentNodeHash = currentNode.Left
		}
	}

	return currentNodeHash, nil
}
