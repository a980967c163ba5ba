package exitrootsync

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/ethereum/go-ethereum/common"
)

// Source provides the last value of a root
type Source interface {
	GetRoot(ctx context.Context) (common.Hash, error)
}

// SourceFunc adapts a getter to Source
type SourceFunc func(ctx context.Context) (common.Hash, error)

func (f SourceFunc) GetRoot(ctx context.Context) (common.Hash, error) {
	return f(ctx)
}

// Target is where the roots are delivered
type Target interface {
	IsRootAlreadySubmitted(ctx context.Context, root common.Hash) (bool, error)
	SubmitRoot(ctx context.Context, root common.Hash) error
}

// Oracle periodically copies a root from a Source to a Target
type Oracle struct {
	name       string
	waitPeriod time.Duration
	source     Source
	target     Target
	logger     *log.Logger
}

func New(name string, source Source, target Target, waitPeriod time.Duration) *Oracle {
	return &Oracle{
		name:       name,
		waitPeriod: waitPeriod,
		source:     source,
		target:     target,
		logger:     log.WithFields("module", "exitrootsync", "job", name),
	}
}

func (o *Oracle) Start(ctx context.Context) {
	ticker := time.NewTicker(o.waitPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := o.SyncOnce(ctx); err != nil {
				o.logger.Error(err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// SyncOnce delivers the root of the source if the target doesn't have it yet. It returns true if
// a root was submitted
func (o *Oracle) SyncOnce(ctx context.Context) (bool, error) {
	root, err := o.source.GetRoot(ctx)
	if err != nil {
		return false, fmt.Errorf("error getting root from source: %w", err)
	}
	alreadySubmitted, err := o.target.IsRootAlreadySubmitted(ctx, root)
	if err != nil {
		return false, fmt.Errorf("error checking if root %s was already submitted: %w", root.Hex(), err)
	}
	if alreadySubmitted {
		o.logger.Debugf("root %s already submitted", root.Hex())
		return false, nil
	}
	o.logger.Debugf("submitting new root: %s", root.Hex())
	if err := o.target.SubmitRoot(ctx, root); err != nil {
		return false, fmt.Errorf("error submitting root %s: %w", root.Hex(), err)
	}
	o.logger.Infof("root %s submitted", root.Hex())
	return true, nil
}
