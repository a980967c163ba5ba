package types

import (
	"fmt"
	"math/big"
)

const (
	localIndexBits  = 32
	rollupIndexBits = 32
)

var (
	// mainnetFlagBit is the bit that marks deposits done from network 0
	mainnetFlagBit = new(big.Int).Lsh(big.NewInt(1), localIndexBits+rollupIndexBits)
	// maxGlobalIndex is the first value out of range (2^65)
	maxGlobalIndex = new(big.Int).Lsh(mainnetFlagBit, 1)
	uint32Mask     = big.NewInt(0xffffffff)
)

// GenerateGlobalIndex packs the source of a deposit into the index used to identify claims:
// localIndex + 2^64 for mainnet deposits, localIndex + rollupIndex*2^32 otherwise
func GenerateGlobalIndex(mainnetFlag bool, rollupIndex, localExitRootIndex uint32) *big.Int {
	globalIndex := new(big.Int).SetUint64(uint64(localExitRootIndex))
	if mainnetFlag {
		return globalIndex.SetBit(globalIndex, localIndexBits+rollupIndexBits, 1)
	}
	rollup := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(rollupIndex)), localIndexBits)
	return globalIndex.Add(globalIndex, rollup)
}

// DecodeGlobalIndex is the inverse of GenerateGlobalIndex. Indexes that GenerateGlobalIndex
// can't produce return ErrInvalidGlobalIndex, so each deposit has a single global index
func DecodeGlobalIndex(globalIndex *big.Int) (mainnetFlag bool, rollupIndex, localExitRootIndex uint32, err error) {
	if globalIndex == nil || globalIndex.Sign() < 0 || globalIndex.Cmp(maxGlobalIndex) >= 0 {
		return false, 0, 0, fmt.Errorf("%w: %v out of range", ErrInvalidGlobalIndex, globalIndex)
	}
	mainnetFlag = globalIndex.Bit(localIndexBits+rollupIndexBits) == 1
	localExitRootIndex = uint32(new(big.Int).And(globalIndex, uint32Mask).Uint64())
	rollupIndex = uint32(new(big.Int).And(new(big.Int).Rsh(globalIndex, localIndexBits), uint32Mask).Uint64())
	if mainnetFlag && rollupIndex != 0 {
		return false, 0, 0, fmt.Errorf(
			"%w: rollup index %d is set on a mainnet global index", ErrInvalidGlobalIndex, rollupIndex,
		)
	}
	return mainnetFlag, rollupIndex, localExitRootIndex, nil
}
