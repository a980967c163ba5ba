package bridge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/0xPolygon/cdk-bridge/bridge/migrations"
	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/claimbitmap"
	"github.com/0xPolygon/cdk-bridge/claimverifier"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/depositregistry"
	"github.com/0xPolygon/cdk-bridge/globalexitroot"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/0xPolygon/cdk-bridge/tree"
	treetypes "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/0xPolygon/cdk-bridge/wrappedtoken"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

const (
	claimTable       = "claim"
	defaultCacheSize = 1000
)

// NativeTokenAddress represents the gas token of the networks, which has mainnet as origin network
var NativeTokenAddress = common.Address{}

// OpenDB runs the migrations of the bridge and returns the DB. The same DB must be used by the AssetVault
// so the value transfers are part of the bridge operations
func OpenDB(dbPath string) (*sql.DB, error) {
	if err := migrations.RunMigrations(dbPath); err != nil {
		return nil, err
	}
	return db.NewSQLiteDB(dbPath)
}

// Bridge is the bridge of a network. Deposits are added to the local exit tree, and claims of deposits
// done on other networks are verified against the global exit roots known by the network.
// Every operation is atomic and operations are applied one at a time
type Bridge struct {
	mu            sync.Mutex
	db            *sql.DB
	networkID     uint32
	bridgeAddress common.Address
	registry      *depositregistry.Registry
	aggregator    *globalexitroot.Aggregator
	bitmap        *claimbitmap.Bitmap
	verifier      *claimverifier.Verifier
	deriver       *wrappedtoken.Deriver
	wrappedTokens *wrappedtoken.Store
	vault         AssetVault
	emitter       EventEmitter
	log           *log.Logger
}

// New returns the bridge of networkID. database must have the migrations of the bridge applied (see OpenDB).
// If authorizer is nil, the updaters of cfg are allowed to update the exit roots. If emitter is nil the
// events are logged
func New(
	ctx context.Context,
	cfg Config,
	networkID uint32,
	database *sql.DB,
	vault AssetVault,
	authorizer globalexitroot.Authorizer,
	emitter EventEmitter,
) (*Bridge, error) {
	if vault == nil {
		return nil, errors.New("an asset vault is required")
	}
	if authorizer == nil {
		authorizer = globalexitroot.AddressAuthorizer{
			MainnetUpdater: cfg.MainnetUpdater(),
			RollupUpdater:  cfg.RollupExitRootUpdater,
		}
	}
	if emitter == nil {
		emitter = NewLogEmitter()
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	registry, err := depositregistry.New(ctx, database)
	if err != nil {
		return nil, err
	}
	deriver, err := wrappedtoken.NewDeriver(
		cfg.BridgeAddress, common.FromHex(cfg.WrappedTokenInitBytecode), cacheSize,
	)
	if err != nil {
		return nil, err
	}
	wrappedTokens, err := wrappedtoken.NewStore(database, cacheSize)
	if err != nil {
		return nil, err
	}
	aggregator := globalexitroot.New(database, authorizer)
	bitmap := claimbitmap.New(database)
	return &Bridge{
		db:            database,
		networkID:     networkID,
		bridgeAddress: cfg.BridgeAddress,
		registry:      registry,
		aggregator:    aggregator,
		bitmap:        bitmap,
		verifier:      claimverifier.New(networkID, aggregator, bitmap),
		deriver:       deriver,
		wrappedTokens: wrappedTokens,
		vault:         vault,
		emitter:       emitter,
		log:           log.WithFields("module", "bridge", "networkID", networkID),
	}, nil
}

func (b *Bridge) NetworkID() uint32 {
	return b.networkID
}

func (b *Bridge) BridgeAddress() common.Address {
	return b.bridgeAddress
}

// runInTx runs fn in a tx that is committed if fn succeeds and rolled back otherwise
func (b *Bridge) runInTx(ctx context.Context, fn func(tx db.Txer) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := db.NewTx(ctx, b.db)
	if err != nil {
		return err
	}
	shouldRollback := true
	defer func() {
		if shouldRollback {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				b.log.Errorf("error while rolling back tx %v", errRllbck)
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	shouldRollback = false
	return nil
}

// BridgeAsset takes the asset from the depositor and records the deposit on the local exit tree.
// If ForceUpdateGlobalExitRoot is set, the new local exit root is pushed to the global exit root
func (b *Bridge) BridgeAsset(
	ctx context.Context, req bridgetypes.BridgeRequest,
) (*bridgetypes.DepositReceipt, error) {
	if req.DestinationNetwork == b.networkID {
		return nil, fmt.Errorf(
			"%w: deposit to network %d done on the same network",
			bridgetypes.ErrDestinationNetworkInvalid, req.DestinationNetwork,
		)
	}
	if err := bridgetypes.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	var receipt *bridgetypes.DepositReceipt
	err := b.runInTx(ctx, func(tx db.Txer) error {
		origin, metadata, err := b.takeAsset(ctx, tx, req)
		if err != nil {
			return err
		}
		rec := &bridgetypes.DepositRecord{
			DepositCount:       b.registry.NextDepositCount(),
			LeafType:           bridgetypes.LeafTypeAsset,
			OriginNetwork:      origin.OriginNetwork,
			OriginAddress:      origin.OriginTokenAddress,
			DestinationNetwork: req.DestinationNetwork,
			DestinationAddress: req.DestinationAddress,
			Amount:             new(big.Int).Set(req.Amount),
			Metadata:           metadata,
			TokenAddress:       req.Token,
			FromAddress:        req.From,
		}
		if _, err := b.registry.Record(tx, rec); err != nil {
			return err
		}
		receipt = &bridgetypes.DepositReceipt{
			DepositCount:  rec.DepositCount,
			LeafHash:      rec.LeafHash,
			LocalExitRoot: rec.LocalExitRoot,
		}
		deposit := rec.Deposit()
		event := bridgetypes.BridgeEvent{
			LeafType:           rec.LeafType,
			OriginNetwork:      rec.OriginNetwork,
			OriginAddress:      rec.OriginAddress,
			DestinationNetwork: rec.DestinationNetwork,
			DestinationAddress: rec.DestinationAddress,
			Amount:             rec.Amount,
			MetadataHash:       deposit.MetadataHash(),
			DepositCount:       rec.DepositCount,
		}
		tx.AddCommitCallback(func() { b.emitter.EmitBridgeEvent(event) })

		if req.ForceUpdateGlobalExitRoot {
			ger, err := b.updateExitRoot(tx, b.bridgeAddress, rec.LocalExitRoot)
			if err != nil {
				return err
			}
			receipt.GlobalExitRoot = &ger
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.log.Debugf(
		"deposit %d from %s to network %d recorded, local exit root %s",
		receipt.DepositCount, req.From.Hex(), req.DestinationNetwork, receipt.LocalExitRoot.Hex(),
	)
	return receipt, nil
}

// takeAsset moves the deposited value to the bridge and returns the origin of the token and the metadata
// committed in the leaf. Wrapped tokens are burnt and keep the info of their origin token
func (b *Bridge) takeAsset(
	ctx context.Context, tx db.Txer, req bridgetypes.BridgeRequest,
) (bridgetypes.TokenInfo, []byte, error) {
	if req.Token == NativeTokenAddress {
		if err := b.vault.LockAsset(ctx, tx, req.From, NativeTokenAddress, req.Amount, req.PermitData); err != nil {
			return bridgetypes.TokenInfo{}, nil, err
		}
		return bridgetypes.TokenInfo{
			OriginNetwork:      bridgetypes.MainnetNetworkID,
			OriginTokenAddress: NativeTokenAddress,
		}, nil, nil
	}

	wrapped, err := b.wrappedTokens.GetByAddress(tx, req.Token)
	switch {
	case err == nil:
		if err := b.vault.BurnWrapped(ctx, tx, req.From, req.Token, req.Amount); err != nil {
			return bridgetypes.TokenInfo{}, nil, err
		}
		return wrapped.TokenInfo(), nil, nil
	case !errors.Is(err, db.ErrNotFound):
		return bridgetypes.TokenInfo{}, nil, err
	}

	metadata, err := b.vault.TokenMetadata(ctx, tx, req.Token)
	if err != nil {
		return bridgetypes.TokenInfo{}, nil, fmt.Errorf("error getting metadata of token %s: %w", req.Token.Hex(), err)
	}
	if err := b.vault.LockAsset(ctx, tx, req.From, req.Token, req.Amount, req.PermitData); err != nil {
		return bridgetypes.TokenInfo{}, nil, err
	}
	return bridgetypes.TokenInfo{
		OriginNetwork:      b.networkID,
		OriginTokenAddress: req.Token,
	}, metadata, nil
}

// ClaimAsset verifies the claim and sends the value to the destination address. The wrapped token
// is deployed the first time a token from another network is claimed
func (b *Bridge) ClaimAsset(
	ctx context.Context, req *bridgetypes.ClaimRequest,
) (*bridgetypes.ClaimReceipt, error) {
	var receipt *bridgetypes.ClaimReceipt
	err := b.runInTx(ctx, func(tx db.Txer) error {
		verified, err := b.verifier.Claim(tx, req)
		if err != nil {
			return err
		}
		tokenAddress, created, err := b.releaseAsset(ctx, tx, req)
		if err != nil {
			return err
		}
		claim := &bridgetypes.Claim{
			GlobalIndex:         new(big.Int).Set(req.GlobalIndex),
			MainnetFlag:         verified.MainnetFlag,
			RollupIndex:         verified.RollupIndex,
			LocalExitRootIndex:  verified.LocalExitRootIndex,
			OriginNetwork:       req.OriginNetwork,
			OriginAddress:       req.OriginTokenAddress,
			DestinationNetwork:  req.DestinationNetwork,
			DestinationAddress:  req.DestinationAddress,
			Amount:              new(big.Int).Set(req.Amount),
			Metadata:            req.Metadata,
			MainnetExitRoot:     req.MainnetExitRoot,
			RollupExitRoot:      req.RollupExitRoot,
			GlobalExitRoot:      verified.GlobalExitRoot,
			ProofLocalExitRoot:  req.SMTProofLocalExitRoot,
			ProofRollupExitRoot: req.SMTProofRollupExitRoot,
			TokenAddress:        tokenAddress,
		}
		if err := meddler.Insert(tx, claimTable, claim); err != nil {
			return fmt.Errorf("error inserting claim %s: %w", claim.GlobalIndex.String(), err)
		}
		event := bridgetypes.ClaimEvent{
			GlobalIndex:        claim.GlobalIndex,
			OriginNetwork:      claim.OriginNetwork,
			OriginAddress:      claim.OriginAddress,
			DestinationAddress: claim.DestinationAddress,
			Amount:             claim.Amount,
		}
		tx.AddCommitCallback(func() { b.emitter.EmitClaimEvent(event) })
		receipt = &bridgetypes.ClaimReceipt{
			GlobalIndex:         claim.GlobalIndex,
			TokenAddress:        tokenAddress,
			GlobalExitRoot:      verified.GlobalExitRoot,
			WrappedTokenCreated: created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.log.Debugf(
		"claim %s processed, %s of token %s sent to %s",
		receipt.GlobalIndex.String(), req.Amount.String(), receipt.TokenAddress.Hex(), req.DestinationAddress.Hex(),
	)
	return receipt, nil
}

// releaseAsset sends the claimed value and returns the token used on this network
func (b *Bridge) releaseAsset(
	ctx context.Context, tx db.Txer, req *bridgetypes.ClaimRequest,
) (common.Address, bool, error) {
	isNative := req.OriginTokenAddress == NativeTokenAddress && req.OriginNetwork == bridgetypes.MainnetNetworkID
	if isNative || req.OriginNetwork == b.networkID {
		if err := b.vault.ReleaseAsset(ctx, tx, req.OriginTokenAddress, req.DestinationAddress, req.Amount); err != nil {
			return common.Address{}, false, err
		}
		return req.OriginTokenAddress, false, nil
	}

	created := false
	wrapped, err := b.wrappedTokens.GetByOrigin(tx, req.OriginNetwork, req.OriginTokenAddress)
	if errors.Is(err, db.ErrNotFound) {
		wrapped, err = b.deployWrapped(ctx, tx, req)
		created = true
	}
	if err != nil {
		return common.Address{}, false, err
	}
	if err := b.vault.MintWrapped(ctx, tx, wrapped.WrappedTokenAddress, req.DestinationAddress, req.Amount); err != nil {
		return common.Address{}, false, err
	}
	return wrapped.WrappedTokenAddress, created, nil
}

func (b *Bridge) deployWrapped(
	ctx context.Context, tx db.Txer, req *bridgetypes.ClaimRequest,
) (*wrappedtoken.WrappedToken, error) {
	wrapped := &wrappedtoken.WrappedToken{
		WrappedTokenAddress: b.deriver.PrecalculatedWrapperAddress(
			req.OriginNetwork, req.OriginTokenAddress, req.Metadata,
		),
		OriginNetwork:      req.OriginNetwork,
		OriginTokenAddress: req.OriginTokenAddress,
		Metadata:           common.CopyBytes(req.Metadata),
	}
	if err := b.vault.DeployWrapped(ctx, tx, wrapped.WrappedTokenAddress, wrapped.Metadata); err != nil {
		return nil, err
	}
	if err := b.wrappedTokens.Add(tx, wrapped); err != nil {
		return nil, err
	}
	event := bridgetypes.NewWrappedAssetEvent{
		OriginNetwork:      wrapped.OriginNetwork,
		OriginTokenAddress: wrapped.OriginTokenAddress,
		WrappedAddress:     wrapped.WrappedTokenAddress,
		Metadata:           wrapped.Metadata,
	}
	tx.AddCommitCallback(func() { b.emitter.EmitNewWrappedAsset(event) })
	return wrapped, nil
}

// UpdateExitRoot sets newRoot as the half of the global exit root that caller is allowed to update
func (b *Bridge) UpdateExitRoot(ctx context.Context, caller common.Address, newRoot common.Hash) (common.Hash, error) {
	var ger common.Hash
	err := b.runInTx(ctx, func(tx db.Txer) error {
		var err error
		ger, err = b.updateExitRoot(tx, caller, newRoot)
		return err
	})
	return ger, err
}

// UpdateGlobalExitRoot pushes the current local exit root to the global exit root
func (b *Bridge) UpdateGlobalExitRoot(ctx context.Context) (common.Hash, error) {
	var ger common.Hash
	err := b.runInTx(ctx, func(tx db.Txer) error {
		localExitRoot, err := b.registry.GetRoot(ctx)
		if err != nil {
			return err
		}
		ger, err = b.updateExitRoot(tx, b.bridgeAddress, localExitRoot)
		return err
	})
	return ger, err
}

func (b *Bridge) updateExitRoot(tx db.Txer, caller common.Address, newRoot common.Hash) (common.Hash, error) {
	side, ger, err := b.aggregator.UpdateExitRoot(tx, caller, newRoot)
	if err != nil {
		return common.Hash{}, err
	}
	snapshot, err := b.aggregator.GetSnapshotWithTx(tx)
	if err != nil {
		return common.Hash{}, err
	}
	event := bridgetypes.UpdateGlobalExitRootEvent{
		MainnetExitRoot: snapshot.MainnetExitRoot,
		RollupExitRoot:  snapshot.RollupExitRoot,
		GlobalExitRoot:  snapshot.GlobalExitRoot,
	}
	tx.AddCommitCallback(func() { b.emitter.EmitUpdateGlobalExitRoot(event) })
	b.log.Debugf("%s exit root updated to %s by %s", side, newRoot.Hex(), caller.Hex())
	return ger, nil
}

// GetRoot returns the local exit root
func (b *Bridge) GetRoot(ctx context.Context) (common.Hash, error) {
	return b.registry.GetRoot(ctx)
}

// DepositCount returns the amount of deposits done on this network
func (b *Bridge) DepositCount(ctx context.Context) (uint32, error) {
	return b.registry.DepositCount(ctx)
}

func (b *Bridge) GetDeposit(ctx context.Context, depositCount uint32) (*bridgetypes.DepositRecord, error) {
	return b.registry.GetDeposit(ctx, depositCount)
}

func (b *Bridge) GetDeposits(
	ctx context.Context, fromDepositCount, toDepositCount uint32,
) ([]*bridgetypes.DepositRecord, error) {
	return b.registry.GetDeposits(ctx, fromDepositCount, toDepositCount)
}

// GetProof returns the proof of the deposit against the given local exit root. Any past local exit root
// that includes the deposit can be used
func (b *Bridge) GetProof(
	ctx context.Context, depositCount uint32, localExitRoot common.Hash,
) (treetypes.Proof, error) {
	return b.registry.GetProof(ctx, depositCount, localExitRoot)
}

// GetRootByDepositCount returns the local exit root right after the deposit
func (b *Bridge) GetRootByDepositCount(ctx context.Context, depositCount uint32) (common.Hash, error) {
	return b.registry.GetRootByDepositCount(ctx, depositCount)
}

func (b *Bridge) IsClaimed(ctx context.Context, globalIndex *big.Int) (bool, error) {
	if _, _, _, err := bridgetypes.DecodeGlobalIndex(globalIndex); err != nil {
		return false, err
	}
	return b.bitmap.IsClaimed(nil, globalIndex)
}

// GetClaim returns the claim processed with the given global index
func (b *Bridge) GetClaim(ctx context.Context, globalIndex *big.Int) (*bridgetypes.Claim, error) {
	if globalIndex == nil {
		return nil, bridgetypes.ErrInvalidGlobalIndex
	}
	claim := &bridgetypes.Claim{}
	err := meddler.QueryRow(b.db, claim, `SELECT * FROM claim WHERE global_index = $1;`, globalIndex.String())
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return claim, nil
}

// GetClaimsByDestination returns the claims received by the given address
func (b *Bridge) GetClaimsByDestination(
	ctx context.Context, destinationAddress common.Address,
) ([]*bridgetypes.Claim, error) {
	claims := []*bridgetypes.Claim{}
	err := meddler.QueryAll(b.db, &claims,
		`SELECT * FROM claim WHERE destination_address = $1;`, destinationAddress.Hex(),
	)
	return claims, err
}

// GetTokenWrappedAddress returns the address of the wrapped token of the given origin token, or the
// zero address if it has not been deployed yet
func (b *Bridge) GetTokenWrappedAddress(
	ctx context.Context, originNetwork uint32, originTokenAddress common.Address,
) (common.Address, error) {
	wrapped, err := b.wrappedTokens.GetByOrigin(nil, originNetwork, originTokenAddress)
	if errors.Is(err, db.ErrNotFound) {
		return common.Address{}, nil
	}
	if err != nil {
		return common.Address{}, err
	}
	return wrapped.WrappedTokenAddress, nil
}

// GetTokenInfo returns the origin of a wrapped token
func (b *Bridge) GetTokenInfo(ctx context.Context, wrappedAddress common.Address) (bridgetypes.TokenInfo, error) {
	wrapped, err := b.wrappedTokens.GetByAddress(nil, wrappedAddress)
	if err != nil {
		return bridgetypes.TokenInfo{}, err
	}
	return wrapped.TokenInfo(), nil
}

func (b *Bridge) GetWrappedTokens(ctx context.Context) ([]*wrappedtoken.WrappedToken, error) {
	return b.wrappedTokens.GetAll(ctx)
}

// PrecalculatedWrapperAddress returns the address that the wrapped token of the given origin token has or
// will have
func (b *Bridge) PrecalculatedWrapperAddress(
	originNetwork uint32, originTokenAddress common.Address, metadata []byte,
) common.Address {
	return b.deriver.PrecalculatedWrapperAddress(originNetwork, originTokenAddress, metadata)
}

// GetTokenMetadata returns the metadata that deposits of token carry
func (b *Bridge) GetTokenMetadata(ctx context.Context, token common.Address) ([]byte, error) {
	return b.vault.TokenMetadata(ctx, b.db, token)
}

func (b *Bridge) LastMainnetExitRoot(ctx context.Context) (common.Hash, error) {
	return b.aggregator.LastMainnetExitRoot(ctx)
}

func (b *Bridge) LastRollupExitRoot(ctx context.Context) (common.Hash, error) {
	return b.aggregator.LastRollupExitRoot(ctx)
}

func (b *Bridge) GetLastGlobalExitRoot(ctx context.Context) (common.Hash, error) {
	return b.aggregator.CurrentGlobalExitRoot(ctx)
}

// GetGlobalExitRoot returns the exit roots that produced ger. db.ErrNotFound is returned for unknown roots
func (b *Bridge) GetGlobalExitRoot(ctx context.Context, ger common.Hash) (*globalexitroot.GlobalExitRootInfo, error) {
	return b.aggregator.GetGlobalExitRoot(ctx, ger)
}

func (b *Bridge) IsKnownCombination(ctx context.Context, mainnetExitRoot, rollupExitRoot common.Hash) (bool, error) {
	return b.aggregator.IsKnownCombination(nil, mainnetExitRoot, rollupExitRoot)
}

// VerifyMerkleProof checks that leaf is at index of the tree with the given root
func (b *Bridge) VerifyMerkleProof(leaf common.Hash, proof treetypes.Proof, index uint32, root common.Hash) bool {
	return tree.VerifyMerkleProof(leaf, proof, index, root)
}
