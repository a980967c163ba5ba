package common

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Uint64ToBytes converts a uint64 to a byte slice
func Uint64ToBytes(num uint64) []byte {
	const uint64ByteSize = 8

	bytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(bytes, num)

	return bytes
}

// BytesToUint64 converts a byte slice to a uint64
func BytesToUint64(bytes []byte) uint64 {
	return binary.BigEndian.Uint64(bytes)
}

// Uint32ToBytes converts a uint32 to a byte slice in big-endian order
func Uint32ToBytes(num uint32) []byte {
	const uint32ByteSize = 4

	key := make([]byte, uint32ByteSize)
	binary.BigEndian.PutUint32(key, num)

	return key
}

// BytesToUint32 converts a byte slice to a uint32
func BytesToUint32(bytes []byte) uint32 {
	return binary.BigEndian.Uint32(bytes)
}

// IsMainnet returns true for the network whose exit root is the mainnet exit root
func IsMainnet(networkID uint32) bool {
	return networkID == 0
}

// RollupIndex returns the leaf of the rollup exit tree that holds the local exit root of networkID
func RollupIndex(networkID uint32) (uint32, error) {
	if IsMainnet(networkID) {
		return 0, fmt.Errorf("network %d is mainnet, it has no rollup index", networkID)
	}
	return networkID - 1, nil
}

// ParseAmount parses a base 10 amount. Negative amounts are rejected
func ParseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10) //nolint:mnd
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("negative amount %q", s)
	}
	return amount, nil
}
