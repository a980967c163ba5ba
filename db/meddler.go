package db

import (
	"fmt"
	"math/big"
	"strings"

	tree "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

// init registers the tags used to read/write the bridge types from SQL DBs using meddler
func init() {
	meddler.Default = meddler.SQLite
	meddler.Register("bigint", TextMeddler[*big.Int]{encode: encodeBigInt, decode: decodeBigInt})
	meddler.Register("merkleproof", TextMeddler[tree.Proof]{encode: encodeProof, decode: decodeProof})
	meddler.Register("hash", TextMeddler[common.Hash]{encode: common.Hash.Hex, decode: decodeHash})
	meddler.Register("address", TextMeddler[common.Address]{encode: common.Address.Hex, decode: decodeAddress})
}

// TextMeddler stores values of type T as TEXT columns
type TextMeddler[T any] struct {
	encode func(T) string
	decode func(string) (T, error)
}

// PreRead is called before a Scan operation, the raw column is scanned into a string
func (m TextMeddler[T]) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

// PostRead is called after a Scan operation
func (m TextMeddler[T]) PostRead(fieldPtr, scanTarget interface{}) error {
	raw, ok := scanTarget.(*string)
	if !ok || raw == nil {
		return fmt.Errorf("unexpected scan target %T", scanTarget)
	}
	field, ok := fieldPtr.(*T)
	if !ok {
		return fmt.Errorf("unexpected field type %T, expected %T", fieldPtr, new(T))
	}
	v, err := m.decode(*raw)
	if err != nil {
		return err
	}
	*field = v
	return nil
}

// PreWrite is called before an Insert or Update operation
func (m TextMeddler[T]) PreWrite(field interface{}) (saveValue interface{}, err error) {
	v, ok := field.(T)
	if !ok {
		return nil, fmt.Errorf("unexpected field type %T, expected %T", field, *new(T))
	}
	return m.encode(v), nil
}

func encodeBigInt(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func decodeBigInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10) //nolint:mnd
	if !ok {
		return nil, fmt.Errorf("invalid big int %q", s)
	}
	return v, nil
}

func encodeProof(p tree.Proof) string {
	hashes := make([]string, len(p))
	for i, h := range p {
		hashes[i] = h.Hex()
	}
	return strings.Join(hashes, ",")
}

func decodeProof(s string) (tree.Proof, error) {
	var p tree.Proof
	hashes := strings.Split(s, ",")
	if len(hashes) != len(p) {
		return p, fmt.Errorf("unexpected len of hashes: expected %d actual %d", len(p), len(hashes))
	}
	for i, h := range hashes {
		p[i] = common.HexToHash(h)
	}
	return p, nil
}

func decodeHash(s string) (common.Hash, error) {
	return common.HexToHash(s), nil
}

func decodeAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}
