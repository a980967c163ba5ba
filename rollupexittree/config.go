package rollupexittree

import "github.com/ethereum/go-ethereum/common"

type Config struct {
	// DBPath path of the DB
	DBPath string `mapstructure:"DBPath"`
	// AuthorityAddress is the identity used to push the rollup exit root to the bridges (the rollup manager)
	AuthorityAddress common.Address `mapstructure:"AuthorityAddress"`
}
