package exitrootsync

import (
	"github.com/0xPolygon/cdk-bridge/config/types"
)

type Config struct {
	// WaitPeriodNextRoot is the time between checks of the sources
	WaitPeriodNextRoot types.Duration `mapstructure:"WaitPeriodNextRoot"`
	// MainnetBridgeURL is the RPC of the bridge of network 0, the source of the mainnet exit root.
	// Not used when the node itself is network 0
	MainnetBridgeURL string `mapstructure:"MainnetBridgeURL"`
	// RollupExitTreeURL is the RPC of the node that runs the rollup exit tree. If empty, the local
	// rollup exit tree is used
	RollupExitTreeURL string `mapstructure:"RollupExitTreeURL"`
}
