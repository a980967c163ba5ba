package testvectors

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

// DepositVectorRaw represents the deposit vector
type DepositVectorRaw struct {
	LeafType           uint8  `json:"leafType"`
	OriginNetwork      uint32 `json:"originNetwork"`
	TokenAddress       string `json:"tokenAddress"`
	Amount             string `json:"amount"`
	DestinationNetwork uint32 `json:"destinationNetwork"`
	DestinationAddress string `json:"destinationAddress"`
	Metadata           string `json:"metadata"`
}

// Hash computes the leaf of the deposit straight from the raw fields, so it can be
// used to cross check other encoders
func (d *DepositVectorRaw) Hash() common.Hash {
	origNet := make([]byte, 4) //nolint:mnd
	binary.BigEndian.PutUint32(origNet, d.OriginNetwork)
	destNet := make([]byte, 4) //nolint:mnd
	binary.BigEndian.PutUint32(destNet, d.DestinationNetwork)

	metaHash := keccak256.Hash(common.FromHex(d.Metadata))
	var buf [32]byte
	amount, _ := big.NewInt(0).SetString(d.Amount, 0)
	origAddrBytes := common.HexToAddress(d.TokenAddress)
	destAddrBytes := common.HexToAddress(d.DestinationAddress)
	return common.BytesToHash(keccak256.Hash(
		[]byte{d.LeafType},
		origNet,
		origAddrBytes[:],
		destNet,
		destAddrBytes[:],
		amount.FillBytes(buf[:]),
		metaHash,
	))
}

// ReferenceTree builds roots and proofs bottom-up over the whole leaf set with zero-hash padding
type ReferenceTree struct {
	Height uint8
	Leaves []common.Hash
}

func (r *ReferenceTree) zeroHashes() []common.Hash {
	zeros := []common.Hash{{}}
	for i := 1; i <= int(r.Height); i++ {
		zeros = append(zeros, common.BytesToHash(keccak256.Hash(zeros[i-1][:], zeros[i-1][:])))
	}
	return zeros
}

func (r *ReferenceTree) levels() [][]common.Hash {
	zeros := r.zeroHashes()
	levels := [][]common.Hash{r.Leaves}
	current := r.Leaves
	for h := 0; h < int(r.Height); h++ {
		next := []common.Hash{}
		for i := 0; i < len(current); i += 2 {
			right := zeros[h]
			if i+1 < len(current) {
				right = current[i+1]
			}
			next = append(next, common.BytesToHash(keccak256.Hash(current[i][:], right[:])))
		}
		levels = append(levels, next)
		current = next
	}
	return levels
}

// Root returns the root of the reference tree
func (r *ReferenceTree) Root() common.Hash {
	if len(r.Leaves) == 0 {
		return r.zeroHashes()[r.Height]
	}
	levels := r.levels()
	return levels[r.Height][0]
}

// Proof returns the siblings of the leaf at index, from the leaves to the root
func (r *ReferenceTree) Proof(index uint32) []common.Hash {
	zeros := r.zeroHashes()
	levels := r.levels()
	proof := make([]common.Hash, r.Height)
	idx := int(index)
	for h := 0; h < int(r.Height); h++ {
		sibling := idx ^ 1
		if sibling < len(levels[h]) {
			proof[h] = levels[h][sibling]
		} else {
			proof[h] = zeros[h]
		}
		idx /= 2
	}
	return proof
}
