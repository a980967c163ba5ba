package common

const (
	// BRIDGE name to identify the bridge component, the core that records deposits and processes claims
	BRIDGE = "bridge"
	// RPC name to identify the rpc component (implies bridge)
	RPC = "rpc"
	// ROLLUP_EXIT_TREE name to identify the component that aggregates the local exit roots of the rollups
	ROLLUP_EXIT_TREE = "rollup-exit-tree" //nolint:stylecheck
	// EXIT_ROOT_SYNC name to identify the component that moves exit roots between nodes (implies bridge)
	EXIT_ROOT_SYNC = "exit-root-sync" //nolint:stylecheck
)
