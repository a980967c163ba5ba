package common

type Config struct {
	// NetworkID is the networkID of the bridge being run. 0 is mainnet
	NetworkID uint32 `mapstructure:"NetworkID"`
}
