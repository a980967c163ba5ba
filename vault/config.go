package vault

import "github.com/ethereum/go-ethereum/common"

type Config struct {
	// Tokens are the ERC20 tokens native to this network that the ledger knows about
	Tokens []TokenConfig `mapstructure:"Tokens"`
	// Allocations are the balances credited when the ledger starts. They are only applied once
	Allocations []Allocation `mapstructure:"Allocations"`
}

type TokenConfig struct {
	Address  common.Address `mapstructure:"Address"`
	Name     string         `mapstructure:"Name"`
	Symbol   string         `mapstructure:"Symbol"`
	Decimals uint8          `mapstructure:"Decimals"`
}

type Allocation struct {
	// Token is the zero address for the native currency
	Token  common.Address `mapstructure:"Token"`
	Holder common.Address `mapstructure:"Holder"`
	// Amount in base 10
	Amount string `mapstructure:"Amount"`
}
