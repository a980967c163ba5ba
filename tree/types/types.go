package types

import "github.com/ethereum/go-ethereum/common"

const (
	DefaultHeight uint8 = 32
)

type Leaf struct {
	Index uint32
	Hash  common.Hash
}

// Root of the tree. For append only trees Index is the index of the last leaf added,
// for updatable trees it's a sequence number increased on each change
type Root struct {
	Hash  common.Hash `meddler:"hash,hash"`
	Index uint32      `meddler:"position"`
}

type TreeNode struct {
	Hash  common.Hash `meddler:"hash,hash"`
	Left  common.Hash `meddler:"left_child,hash"`
	Right common.Hash `meddler:"right_child,hash"`
}

type Proof [DefaultHeight]common.Hash
