package main

import (
	"context"
	"os"
	"os/signal"
	"slices"

	cdkbridge "github.com/0xPolygon/cdk-bridge"
	"github.com/0xPolygon/cdk-bridge/bridge"
	cdkcommon "github.com/0xPolygon/cdk-bridge/common"
	"github.com/0xPolygon/cdk-bridge/config"
	"github.com/0xPolygon/cdk-bridge/exitrootsync"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/0xPolygon/cdk-bridge/rollupexittree"
	"github.com/0xPolygon/cdk-bridge/rpc"
	"github.com/0xPolygon/cdk-bridge/rpc/client"
	"github.com/0xPolygon/cdk-bridge/vault"
	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		cdkbridge.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt)
	defer stop()

	components := cliCtx.StringSlice(config.FlagComponents)
	b, err := createBridgeIfNeeded(ctx, components, c)
	if err != nil {
		return err
	}
	rollupExitTree, err := createRollupExitTreeIfNeeded(ctx, components, c, b)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return nil
	})
	for _, component := range components {
		switch component {
		case cdkcommon.BRIDGE, cdkcommon.ROLLUP_EXIT_TREE:
			// no background work, served through the rpc and the exit root sync jobs
		case cdkcommon.RPC:
			server := createRPC(c.RPC, b, rollupExitTree)
			g.Go(server.Start)
			g.Go(func() error {
				<-ctx.Done()
				return server.Stop()
			})
		case cdkcommon.EXIT_ROOT_SYNC:
			for _, job := range createExitRootSyncJobs(c, b, rollupExitTree) {
				job := job
				g.Go(func() error {
					job.Start(ctx)
					return nil
				})
			}
		default:
			log.Warnf("unknown component %s, ignoring it", component)
		}
	}

	err = g.Wait()
	log.Info("terminating application gracefully...")
	return err
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		if slices.Contains(casesWhereNeeded, actualCase) {
			return true
		}
	}
	return false
}

func createBridgeIfNeeded(ctx context.Context, components []string, c *config.Config) (*bridge.Bridge, error) {
	if !isNeeded([]string{cdkcommon.BRIDGE, cdkcommon.RPC, cdkcommon.EXIT_ROOT_SYNC}, components) {
		return nil, nil
	}
	database, err := bridge.OpenDB(c.Bridge.DBPath)
	if err != nil {
		return nil, err
	}
	v, err := vault.New(ctx, database, c.Bridge.BridgeAddress, c.Vault)
	if err != nil {
		return nil, err
	}
	return bridge.New(ctx, c.Bridge, c.Common.NetworkID, database, v, nil, nil)
}

func createRollupExitTreeIfNeeded(
	ctx context.Context, components []string, c *config.Config, b *bridge.Bridge,
) (*rollupexittree.Manager, error) {
	if !isNeeded([]string{cdkcommon.ROLLUP_EXIT_TREE}, components) {
		return nil, nil
	}
	var sinks []rollupexittree.Sink
	if b != nil {
		sinks = append(sinks, b)
	}
	return rollupexittree.New(ctx, c.RollupExitTree, sinks...)
}

func createRPC(cfg jRPC.Config, b *bridge.Bridge, rollupExitTree *rollupexittree.Manager) *jRPC.Server {
	logger := log.WithFields("module", cdkcommon.RPC)
	// a nil *Manager must not end up inside a non nil interface
	var treer rpc.RollupExitTreer
	if rollupExitTree != nil {
		treer = rollupExitTree
	}
	services := []jRPC.Service{
		{
			Name: rpc.BRIDGE,
			Service: rpc.NewBridgeEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				b,
				treer,
			),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

// createExitRootSyncJobs returns the jobs that keep the global exit root of b up to date:
// the mainnet exit root comes from the bridge of mainnet, the rollup exit root from the rollup exit tree,
// which in turn is fed with the local exit root of b when b belongs to a rollup
func createExitRootSyncJobs(
	c *config.Config, b *bridge.Bridge, localRollupExitTree *rollupexittree.Manager,
) []*exitrootsync.Oracle {
	wait := c.ExitRootSync.WaitPeriodNextRoot.Duration
	jobs := []*exitrootsync.Oracle{}

	var mainnetSource exitrootsync.Source = exitrootsync.SourceFunc(b.GetRoot)
	if !cdkcommon.IsMainnet(c.Common.NetworkID) {
		mainnetSource = client.NewClient(c.ExitRootSync.MainnetBridgeURL)
	}
	jobs = append(jobs, exitrootsync.New(
		"mainnet-exit-root",
		mainnetSource,
		exitrootsync.NewMainnetExitRootTarget(b, c.Bridge.MainnetUpdater()),
		wait,
	))

	var rollupExitTree exitrootsync.RollupExitTreeSetter
	switch {
	case localRollupExitTree != nil:
		rollupExitTree = localRollupExitTree
	case c.ExitRootSync.RollupExitTreeURL != "":
		rollupExitTree = client.NewClient(c.ExitRootSync.RollupExitTreeURL)
	default:
		log.Warn("no rollup exit tree available, the rollup exit root won't be synced")
		return jobs
	}

	if rollupIndex, err := cdkcommon.RollupIndex(c.Common.NetworkID); err == nil {
		jobs = append(jobs, exitrootsync.New(
			"local-exit-root",
			exitrootsync.SourceFunc(b.GetRoot),
			exitrootsync.NewLocalExitRootTarget(rollupExitTree, rollupIndex),
			wait,
		))
	}
	jobs = append(jobs, exitrootsync.New(
		"rollup-exit-root",
		exitrootsync.SourceFunc(rollupExitTree.GetRollupExitRoot),
		exitrootsync.NewRollupExitRootTarget(b, c.Bridge.RollupExitRootUpdater),
		wait,
	))
	return jobs
}

func logVersion() {
	log.Infow("Starting application", cdkbridge.GetBuildInfo().KeyValues()...)
}
