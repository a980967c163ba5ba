package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const testVars = `
NetworkID = 1
BridgeAddress = "0x00000000000000000000000000000000000b41d6"
RollupManagerAddr = "0x0000000000000000000000000000000000005011"
MainnetBridgeURL = "http://mainnet:5576"
RollupExitTreeURL = ""
`

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadFile([]FileData{{Name: "vars", Content: testVars}}, "")
	require.NoError(t, err)
	require.Equal(t, uint32(1), cfg.Common.NetworkID)
	require.Equal(t, "/tmp/cdk-bridge/bridge.sqlite", cfg.Bridge.DBPath)
	require.Equal(t, common.HexToAddress("0xb41d6"), cfg.Bridge.BridgeAddress)
	require.Equal(t, common.HexToAddress("0xb41d6"), cfg.Bridge.MainnetExitRootUpdater)
	require.Equal(t, common.HexToAddress("0x5011"), cfg.Bridge.RollupExitRootUpdater)
	require.Equal(t, 1000, cfg.Bridge.CacheSize)
	require.Equal(t, common.HexToAddress("0x5011"), cfg.RollupExitTree.AuthorityAddress)
	require.Equal(t, "/tmp/cdk-bridge/rollupexittree.sqlite", cfg.RollupExitTree.DBPath)
	require.Equal(t, 5*time.Second, cfg.ExitRootSync.WaitPeriodNextRoot.Duration)
	require.Equal(t, "http://mainnet:5576", cfg.ExitRootSync.MainnetBridgeURL)
	require.Empty(t, cfg.ExitRootSync.RollupExitTreeURL)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	custom := `
PathRWData = "/data"
[Bridge]
  CacheSize = 7
[[Vault.Tokens]]
  Address = "0x0000000000000000000000000000000000000070"
  Name = "Polygon"
  Symbol = "POL"
  Decimals = 18
[[Vault.Allocations]]
  Token = "0x0000000000000000000000000000000000000070"
  Holder = "0x00000000000000000000000000000000000a11ce"
  Amount = "1000000"
`
	cfg, err := LoadFile([]FileData{{Name: "vars", Content: testVars}, {Name: "custom", Content: custom}}, "")
	require.NoError(t, err)
	require.Equal(t, "/data/bridge.sqlite", cfg.Bridge.DBPath)
	require.Equal(t, 7, cfg.Bridge.CacheSize)
	require.Len(t, cfg.Vault.Tokens, 1)
	require.Equal(t, "POL", cfg.Vault.Tokens[0].Symbol)
	require.Equal(t, uint8(18), cfg.Vault.Tokens[0].Decimals)
	require.Len(t, cfg.Vault.Allocations, 1)
	require.Equal(t, common.HexToAddress("0xa11ce"), cfg.Vault.Allocations[0].Holder)
	require.Equal(t, "1000000", cfg.Vault.Allocations[0].Amount)
}

func TestLoadEnvVars(t *testing.T) {
	t.Setenv("CDKBRIDGE_NetworkID", "3")
	t.Setenv("CDKBRIDGE_BRIDGE_CACHESIZE", "42")
	cfg, err := LoadFile([]FileData{{Name: "vars", Content: testVars}}, "")
	require.NoError(t, err)
	require.Equal(t, uint32(3), cfg.Common.NetworkID)
	require.Equal(t, 42, cfg.Bridge.CacheSize)
}

func TestLoadMissingVars(t *testing.T) {
	_, err := LoadFile(nil, "")
	require.ErrorIs(t, err, ErrMissingVars)
}

func TestSaveConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFile([]FileData{{Name: "vars", Content: testVars}}, dir)
	require.NoError(t, err)
	saved, err := os.ReadFile(path.Join(dir, SaveConfigFileName))
	require.NoError(t, err)
	reloaded, err := LoadFileFromString(string(saved), ConfigType)
	require.NoError(t, err)
	require.Equal(t, cfg.Bridge, reloaded.Bridge)

	str, err := SaveConfigToString(*cfg)
	require.NoError(t, err)
	require.Contains(t, str, "[Bridge]")
	require.Contains(t, str, "/tmp/cdk-bridge/bridge.sqlite")
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	tomlFile := path.Join(dir, "vars.toml")
	require.NoError(t, os.WriteFile(tomlFile, []byte(testVars), 0600))
	jsonFile := path.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"Bridge": {"CacheSize": 9}}`), 0600))
	yamlFile := path.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("Bridge:\n  CacheSize: 9\n"), 0600))

	files, err := readFiles([]string{tomlFile, jsonFile})
	require.NoError(t, err)
	cfg, err := LoadFile(files, "")
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Bridge.CacheSize)

	_, err = readFiles([]string{yamlFile})
	require.ErrorIs(t, err, ErrUnsupportedConfigFileType)
}

func TestSchema(t *testing.T) {
	schema, err := Schema()
	require.NoError(t, err)
	require.Contains(t, schema, "ExitRootSync")
	require.Contains(t, schema, "Duration expressed in units")
}
