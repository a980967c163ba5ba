package tree

import (
	"github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
)

// CalculateRoot walks the proof from the leaf up to the root. At each level the bit of
// index decides whether the running hash is the left or the right child
func CalculateRoot(leaf common.Hash, proof types.Proof, index uint32) common.Hash {
	current := leaf
	for h := uint8(0); h < types.DefaultHeight; h++ {
		if index&(1<<h) > 0 {
			current = hashPair(proof[h], current)
		} else {
			current = hashPair(current, proof[h])
		}
	}
	return current
}

// VerifyMerkleProof returns true if leaf is at index in the tree identified by root
func VerifyMerkleProof(leaf common.Hash, proof types.Proof, index uint32, root common.Hash) bool {
	return CalculateRoot(leaf, proof, index) == root
}
