package wrappedtoken

import (
	cdkcommon "github.com/0xPolygon/cdk-bridge/common"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultBaseInitBytecode is the creation code of an EIP-1167 clone of the zero address.
// Deployments should configure the init code of their wrapped token implementation
var DefaultBaseInitBytecode = common.FromHex(
	"0x3d602d80600a3d3981f3363d3d373d3d3d363d73" +
		"0000000000000000000000000000000000000000" +
		"5af43d82803e903d91602b57fd5bf3",
)

type deriveKey struct {
	originNetwork uint32
	originToken   common.Address
	metadataHash  common.Hash
}

// Deriver computes the address of the wrapped tokens deployed by the bridge with CREATE2
type Deriver struct {
	bridgeAddress    common.Address
	baseInitBytecode []byte
	cache            *lru.Cache[deriveKey, common.Address]
}

// NewDeriver returns a Deriver that remembers the last cacheSize derived addresses
func NewDeriver(bridgeAddress common.Address, baseInitBytecode []byte, cacheSize int) (*Deriver, error) {
	cache, err := lru.New[deriveKey, common.Address](cacheSize)
	if err != nil {
		return nil, err
	}
	if len(baseInitBytecode) == 0 {
		baseInitBytecode = DefaultBaseInitBytecode
	}
	return &Deriver{
		bridgeAddress:    bridgeAddress,
		baseInitBytecode: common.CopyBytes(baseInitBytecode),
		cache:            cache,
	}, nil
}

// Salt returns keccak(uint32 originNetwork | originTokenAddress)
func Salt(originNetwork uint32, originTokenAddress common.Address) common.Hash {
	return crypto.Keccak256Hash(cdkcommon.Uint32ToBytes(originNetwork), originTokenAddress[:])
}

// InitCodeHash returns keccak(baseInitBytecode | metadata)
func InitCodeHash(baseInitBytecode, metadata []byte) common.Hash {
	return crypto.Keccak256Hash(baseInitBytecode, metadata)
}

// Derive returns CREATE2(bridge, salt, initCodeHash) for the token
func Derive(
	bridgeAddress common.Address, originNetwork uint32, originTokenAddress common.Address,
	metadata, baseInitBytecode []byte,
) common.Address {
	return crypto.CreateAddress2(
		bridgeAddress,
		Salt(originNetwork, originTokenAddress),
		InitCodeHash(baseInitBytecode, metadata).Bytes(),
	)
}

// PrecalculatedWrapperAddress returns the address that the wrapped token of the given origin token has,
// or will have once it's deployed
func (d *Deriver) PrecalculatedWrapperAddress(
	originNetwork uint32, originTokenAddress common.Address, metadata []byte,
) common.Address {
	key := deriveKey{
		originNetwork: originNetwork,
		originToken:   originTokenAddress,
		metadataHash:  crypto.Keccak256Hash(metadata),
	}
	if addr, ok := d.cache.Get(key); ok {
		return addr
	}
	addr := Derive(d.bridgeAddress, originNetwork, originTokenAddress, metadata, d.baseInitBytecode)
	d.cache.Add(key, addr)
	return addr
}

// BridgeAddress is the deployer of the wrapped tokens
func (d *Deriver) BridgeAddress() common.Address {
	return d.bridgeAddress
}
