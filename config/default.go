package config

// DefaultMandatoryVars depend on the deployment, they have no default value
const DefaultMandatoryVars = `
# NetworkID of the bridge run by this node. 0 is mainnet
NetworkID = 0

# BridgeAddress is the address of the bridge on this network. It deploys the wrapped tokens
BridgeAddress = "0x0000000000000000000000000000000000000000"

# RollupManagerAddr is the identity allowed to update the rollup exit root
RollupManagerAddr = "0x0000000000000000000000000000000000000000"

# MainnetBridgeURL is the RPC of the node running the bridge of network 0
MainnetBridgeURL = "http://localhost:5576"

# RollupExitTreeURL is the RPC of the node running the rollup exit tree. Empty means that
# this node runs it
RollupExitTreeURL = ""
`

// DefaultVars are used to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/cdk-bridge"
`

// DefaultValues is the default configuration
const DefaultValues = `
# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

[Common]
  NetworkID = {{NetworkID}}

[Bridge]
  # DBPath is the path of the database shared by every table of the bridge
  DBPath = "{{PathRWData}}/bridge.sqlite"
  BridgeAddress = "{{BridgeAddress}}"
  # MainnetExitRootUpdater is the identity allowed to update the mainnet exit root. On network 0 it's
  # the bridge itself, on rollups the exit root sync uses it to relay the root of network 0
  MainnetExitRootUpdater = "{{BridgeAddress}}"
  # RollupExitRootUpdater is the identity allowed to update the rollup exit root
  RollupExitRootUpdater = "{{RollupManagerAddr}}"
  # WrappedTokenInitBytecode is the hex encoded init code of the wrapped tokens. Empty means an
  # EIP-1167 clone
  WrappedTokenInitBytecode = ""
  # CacheSize is the size of the caches of wrapped tokens and derived addresses
  CacheSize = 1000

[Vault]
  Tokens = []
  Allocations = []

[RollupExitTree]
  DBPath = "{{PathRWData}}/rollupexittree.sqlite"
  AuthorityAddress = "{{RollupManagerAddr}}"

[ExitRootSync]
  # WaitPeriodNextRoot is the time between checks of the sources
  WaitPeriodNextRoot = "5s"
  MainnetBridgeURL = "{{MainnetBridgeURL}}"
  RollupExitTreeURL = "{{RollupExitTreeURL}}"

# The RPC trusts the identities sent in the params (depositor of bridgeAsset, caller of updateExitRoot),
# bind it to an address only reachable by the operator's nodes
[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5576
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10
`
