package bridge

import (
	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/log"
)

// LogEmitter is the default EventEmitter, it logs the events
type LogEmitter struct {
	log *log.Logger
}

func NewLogEmitter() *LogEmitter {
	return &LogEmitter{log: log.WithFields("module", "bridge-events")}
}

func (l *LogEmitter) EmitBridgeEvent(e bridgetypes.BridgeEvent) {
	l.log.Infow("BridgeEvent",
		"leafType", e.LeafType,
		"originNetwork", e.OriginNetwork,
		"originAddress", e.OriginAddress.Hex(),
		"destinationNetwork", e.DestinationNetwork,
		"destinationAddress", e.DestinationAddress.Hex(),
		"amount", e.Amount.String(),
		"metadataHash", e.MetadataHash.Hex(),
		"depositCount", e.DepositCount,
	)
}

func (l *LogEmitter) EmitClaimEvent(e bridgetypes.ClaimEvent) {
	l.log.Infow("ClaimEvent",
		"globalIndex", e.GlobalIndex.String(),
		"originNetwork", e.OriginNetwork,
		"originAddress", e.OriginAddress.Hex(),
		"destinationAddress", e.DestinationAddress.Hex(),
		"amount", e.Amount.String(),
	)
}

func (l *LogEmitter) EmitNewWrappedAsset(e bridgetypes.NewWrappedAssetEvent) {
	l.log.Infow("NewWrappedToken",
		"originNetwork", e.OriginNetwork,
		"originTokenAddress", e.OriginTokenAddress.Hex(),
		"wrappedTokenAddress", e.WrappedAddress.Hex(),
	)
}

func (l *LogEmitter) EmitUpdateGlobalExitRoot(e bridgetypes.UpdateGlobalExitRootEvent) {
	l.log.Infow("UpdateGlobalExitRoot",
		"mainnetExitRoot", e.MainnetExitRoot.Hex(),
		"rollupExitRoot", e.RollupExitRoot.Hex(),
		"globalExitRoot", e.GlobalExitRoot.Hex(),
	)
}
