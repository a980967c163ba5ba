package main

import (
	"testing"

	cdkcommon "github.com/0xPolygon/cdk-bridge/common"
	"github.com/0xPolygon/cdk-bridge/config"
	"github.com/stretchr/testify/require"
)

func TestIsNeeded(t *testing.T) {
	require.True(t, isNeeded([]string{cdkcommon.BRIDGE, cdkcommon.RPC}, []string{cdkcommon.RPC}))
	require.False(t, isNeeded([]string{cdkcommon.ROLLUP_EXIT_TREE}, []string{cdkcommon.BRIDGE, cdkcommon.RPC}))
	require.False(t, isNeeded([]string{cdkcommon.BRIDGE}, nil))
}

func TestCreateExitRootSyncJobs(t *testing.T) {
	tests := []struct {
		name         string
		networkID    uint32
		treeURL      string
		expectedJobs int
	}{
		{name: "mainnet without rollup exit tree", networkID: 0, expectedJobs: 1},
		{name: "mainnet with remote rollup exit tree", networkID: 0, treeURL: "http://localhost:5577", expectedJobs: 2},
		{name: "rollup without rollup exit tree", networkID: 1, expectedJobs: 1},
		{name: "rollup with remote rollup exit tree", networkID: 1, treeURL: "http://localhost:5577", expectedJobs: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &config.Config{}
			c.Common.NetworkID = tt.networkID
			c.ExitRootSync.MainnetBridgeURL = "http://localhost:5576"
			c.ExitRootSync.RollupExitTreeURL = tt.treeURL
			jobs := createExitRootSyncJobs(c, nil, nil)
			require.Len(t, jobs, tt.expectedJobs)
		})
	}
}
