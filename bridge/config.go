package bridge

import (
	"github.com/ethereum/go-ethereum/common"
)

// Config is the configuration of the bridge of a network
type Config struct {
	// DBPath path of the DB
	DBPath string `mapstructure:"DBPath"`
	// BridgeAddress identifies the bridge. Locked funds are held by it and it's the deployer of the wrapped tokens
	BridgeAddress common.Address `mapstructure:"BridgeAddress"`
	// MainnetExitRootUpdater is allowed to update the mainnet half of the global exit root.
	// If not set, the bridge address is used, so the bridge pushes its own local exit root
	MainnetExitRootUpdater common.Address `mapstructure:"MainnetExitRootUpdater"`
	// RollupExitRootUpdater is allowed to update the rollup half of the global exit root (the rollup manager)
	RollupExitRootUpdater common.Address `mapstructure:"RollupExitRootUpdater"`
	// WrappedTokenInitBytecode is the creation code of the wrapped tokens, used to derive their addresses.
	// An EIP-1167 clone of the zero address is used if empty
	WrappedTokenInitBytecode string `mapstructure:"WrappedTokenInitBytecode"`
	// CacheSize is the amount of wrapped tokens and derived addresses kept in memory
	CacheSize int `mapstructure:"CacheSize"`
}

// MainnetUpdater returns the identity allowed to update the mainnet exit root
func (c Config) MainnetUpdater() common.Address {
	if c.MainnetExitRootUpdater == (common.Address{}) {
		return c.BridgeAddress
	}
	return c.MainnetExitRootUpdater
}
