package claimverifier

import (
	"fmt"
	"math/big"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/globalexitroot"
	"github.com/0xPolygon/cdk-bridge/tree"
	treetypes "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
)

// GlobalExitRootChecker tells if a pair of exit roots has ever been combined in a global exit root
type GlobalExitRootChecker interface {
	IsKnownCombination(tx db.Querier, mainnetExitRoot, rollupExitRoot common.Hash) (bool, error)
}

// ClaimTracker is the anti replay ledger
type ClaimTracker interface {
	IsClaimed(tx db.Querier, globalIndex *big.Int) (bool, error)
	SetClaimed(tx db.Querier, globalIndex *big.Int) error
}

// VerifiedClaim is the decoded information of a claim that passed all the checks
type VerifiedClaim struct {
	MainnetFlag        bool
	RollupIndex        uint32
	LocalExitRootIndex uint32
	Leaf               common.Hash
	GlobalExitRoot     common.Hash
}

// Verifier validates claims against the global exit roots known by the network and flags them as claimed
type Verifier struct {
	networkID uint32
	gers      GlobalExitRootChecker
	claims    ClaimTracker
}

func New(networkID uint32, gers GlobalExitRootChecker, claims ClaimTracker) *Verifier {
	return &Verifier{
		networkID: networkID,
		gers:      gers,
		claims:    claims,
	}
}

// Claim checks the claim and sets it as claimed on tx. Nothing is written if any check fails.
// A global index that is already claimed fails with ErrAlreadyClaimed regardless of the other arguments
func (v *Verifier) Claim(tx db.Querier, req *bridgetypes.ClaimRequest) (*VerifiedClaim, error) {
	mainnetFlag, rollupIndex, localExitRootIndex, err := bridgetypes.DecodeGlobalIndex(req.GlobalIndex)
	if err != nil {
		return nil, err
	}
	claimed, err := v.claims.IsClaimed(tx, req.GlobalIndex)
	if err != nil {
		return nil, fmt.Errorf("error checking claimed bitmap: %w", err)
	}
	if claimed {
		return nil, fmt.Errorf("%w: global index %s", bridgetypes.ErrAlreadyClaimed, req.GlobalIndex.String())
	}
	if mainnetFlag && req.OriginNetwork != bridgetypes.MainnetNetworkID {
		return nil, fmt.Errorf(
			"%w: mainnet flag set for a token with origin network %d",
			bridgetypes.ErrInvalidGlobalIndex, req.OriginNetwork,
		)
	}
	if req.DestinationNetwork != v.networkID {
		return nil, fmt.Errorf(
			"%w: claim for network %d executed on network %d",
			bridgetypes.ErrDestinationNetworkInvalid, req.DestinationNetwork, v.networkID,
		)
	}
	if err := bridgetypes.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	known, err := v.gers.IsKnownCombination(tx, req.MainnetExitRoot, req.RollupExitRoot)
	if err != nil {
		return nil, fmt.Errorf("error checking global exit root: %w", err)
	}
	if !known {
		return nil, fmt.Errorf(
			"%w: mainnet exit root %s, rollup exit root %s",
			bridgetypes.ErrGlobalExitRootNotFound, req.MainnetExitRoot.Hex(), req.RollupExitRoot.Hex(),
		)
	}

	leaf := req.Leaf()
	if !VerifyClaimProof(
		leaf, mainnetFlag, rollupIndex, localExitRootIndex,
		req.MainnetExitRoot, req.RollupExitRoot,
		req.SMTProofLocalExitRoot, req.SMTProofRollupExitRoot,
	) {
		return nil, fmt.Errorf("%w: leaf %s, global index %s", bridgetypes.ErrInvalidProof, leaf.Hex(), req.GlobalIndex)
	}

	if err := v.claims.SetClaimed(tx, req.GlobalIndex); err != nil {
		return nil, err
	}
	return &VerifiedClaim{
		MainnetFlag:        mainnetFlag,
		RollupIndex:        rollupIndex,
		LocalExitRootIndex: localExitRootIndex,
		Leaf:               leaf,
		GlobalExitRoot:     globalexitroot.CalculateGlobalExitRoot(req.MainnetExitRoot, req.RollupExitRoot),
	}, nil
}

// VerifyClaimProof checks the inclusion of leaf. Deposits done from mainnet are checked against
// mainnetExitRoot. Otherwise, the local exit root computed with localProof must be the leaf rollupIndex
// of the tree with root rollupExitRoot
func VerifyClaimProof(
	leaf common.Hash,
	mainnetFlag bool,
	rollupIndex, localExitRootIndex uint32,
	mainnetExitRoot, rollupExitRoot common.Hash,
	localProof, rollupProof treetypes.Proof,
) bool {
	if mainnetFlag {
		return tree.VerifyMerkleProof(leaf, localProof, localExitRootIndex, mainnetExitRoot)
	}
	localExitRoot := tree.CalculateRoot(leaf, localProof, localExitRootIndex)
	return tree.VerifyMerkleProof(localExitRoot, rollupProof, rollupIndex, rollupExitRoot)
}
