package vault

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	fallbackName     = "NO_NAME"
	fallbackSymbol   = "NO_SYMBOL"
	fallbackDecimals = uint8(18)
)

var metadataArgs abi.Arguments

func init() {
	stringTy, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	uint8Ty, err := abi.NewType("uint8", "", nil)
	if err != nil {
		panic(err)
	}
	metadataArgs = abi.Arguments{
		{Name: "name", Type: stringTy},
		{Name: "symbol", Type: stringTy},
		{Name: "decimals", Type: uint8Ty},
	}
}

// TokenMetadata is the information of an ERC20 that travels with its deposits
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// EncodeMetadata returns abi.encode(name, symbol, decimals)
func EncodeMetadata(m TokenMetadata) ([]byte, error) {
	return metadataArgs.Pack(m.Name, m.Symbol, m.Decimals)
}

// DecodeMetadata is the inverse of EncodeMetadata
func DecodeMetadata(data []byte) (TokenMetadata, error) {
	values, err := metadataArgs.Unpack(data)
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("error decoding token metadata: %w", err)
	}
	name, okName := values[0].(string)
	symbol, okSymbol := values[1].(string)
	decimals, okDecimals := values[2].(uint8)
	if !okName || !okSymbol || !okDecimals {
		return TokenMetadata{}, fmt.Errorf("unexpected token metadata types: %T %T %T", values[0], values[1], values[2])
	}
	return TokenMetadata{Name: name, Symbol: symbol, Decimals: decimals}, nil
}

func fallbackMetadata() TokenMetadata {
	return TokenMetadata{Name: fallbackName, Symbol: fallbackSymbol, Decimals: fallbackDecimals}
}
