package rollupexittree

import (
	"context"
	"errors"
	"path"
	"testing"

	"github.com/0xPolygon/cdk-bridge/bridge"
	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/tree"
	"github.com/0xPolygon/cdk-bridge/tree/testvectors"
	treetypes "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/0xPolygon/cdk-bridge/vault"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var rollupManager = common.HexToAddress("0x5011")

type sinkFunc func(ctx context.Context, caller common.Address, newRoot common.Hash) (common.Hash, error)

func (f sinkFunc) UpdateExitRoot(ctx context.Context, caller common.Address, newRoot common.Hash) (common.Hash, error) {
	return f(ctx, caller, newRoot)
}

func newTestManager(t *testing.T, sinks ...Sink) *Manager {
	t.Helper()
	m, err := New(context.Background(), Config{
		DBPath:           path.Join(t.TempDir(), "rollupexittree.sqlite"),
		AuthorityAddress: rollupManager,
	}, sinks...)
	require.NoError(t, err)
	return m
}

func TestSetLocalExitRoot(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	root, err := m.GetRollupExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, tree.EmptyRoot(), root)

	ler0 := common.HexToHash("0xa0")
	ler2 := common.HexToHash("0xa2")
	root1, err := m.SetLocalExitRoot(ctx, 0, ler0)
	require.NoError(t, err)
	root2, err := m.SetLocalExitRoot(ctx, 2, ler2)
	require.NoError(t, err)
	reference := testvectors.ReferenceTree{
		Height: treetypes.DefaultHeight,
		Leaves: []common.Hash{ler0, {}, ler2},
	}
	require.Equal(t, reference.Root(), root2)
	current, err := m.GetRollupExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, root2, current)

	// setting the same value doesn't change the root
	same, err := m.SetLocalExitRoot(ctx, 2, ler2)
	require.NoError(t, err)
	require.Equal(t, root2, same)

	// rollups update their leaf
	newLer0 := common.HexToHash("0xb0")
	root3, err := m.SetLocalExitRoot(ctx, 0, newLer0)
	require.NoError(t, err)
	reference.Leaves[0] = newLer0
	require.Equal(t, reference.Root(), root3)

	for _, tc := range []struct {
		rollupIndex    uint32
		rollupExitRoot common.Hash
		localExitRoot  common.Hash
	}{
		{rollupIndex: 0, rollupExitRoot: root1, localExitRoot: ler0},
		{rollupIndex: 0, rollupExitRoot: root2, localExitRoot: ler0},
		{rollupIndex: 2, rollupExitRoot: root2, localExitRoot: ler2},
		{rollupIndex: 0, rollupExitRoot: root3, localExitRoot: newLer0},
		{rollupIndex: 2, rollupExitRoot: root3, localExitRoot: ler2},
	} {
		ler, err := m.GetLocalExitRoot(ctx, tc.rollupIndex, tc.rollupExitRoot)
		require.NoError(t, err)
		require.Equal(t, tc.localExitRoot, ler)
		proof, err := m.GetProof(ctx, tc.rollupIndex, tc.rollupExitRoot)
		require.NoError(t, err)
		require.True(t, tree.VerifyMerkleProof(tc.localExitRoot, proof, tc.rollupIndex, tc.rollupExitRoot))
	}
}

func TestPushToBridge(t *testing.T) {
	ctx := context.Background()
	database, err := bridge.OpenDB(path.Join(t.TempDir(), "bridge.sqlite"))
	require.NoError(t, err)
	bridgeAddr := common.HexToAddress("0xb41d6e")
	v, err := vault.New(ctx, database, bridgeAddr, vault.Config{})
	require.NoError(t, err)
	b, err := bridge.New(ctx, bridge.Config{
		BridgeAddress:         bridgeAddr,
		RollupExitRootUpdater: rollupManager,
	}, 0, database, v, nil, nil)
	require.NoError(t, err)

	m := newTestManager(t, b)
	ler := common.HexToHash("0xa1")
	rollupExitRoot, err := m.SetLocalExitRoot(ctx, 1, ler)
	require.NoError(t, err)
	lastRollupExitRoot, err := b.LastRollupExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, rollupExitRoot, lastRollupExitRoot)

	// an authority that the bridge doesn't know can't push
	fake, err := New(ctx, Config{
		DBPath:           path.Join(t.TempDir(), "fake.sqlite"),
		AuthorityAddress: common.HexToAddress("0xbad"),
	}, b)
	require.NoError(t, err)
	_, err = fake.SetLocalExitRoot(ctx, 1, common.HexToHash("0xff"))
	require.ErrorIs(t, err, bridgetypes.ErrUnauthorized)
	lastRollupExitRoot, err = b.LastRollupExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, rollupExitRoot, lastRollupExitRoot)
}

func TestSinkFailure(t *testing.T) {
	ctx := context.Background()
	fail := true
	var received []common.Hash
	sink := sinkFunc(func(ctx context.Context, caller common.Address, newRoot common.Hash) (common.Hash, error) {
		require.Equal(t, rollupManager, caller)
		if fail {
			return common.Hash{}, errors.New("unavailable")
		}
		received = append(received, newRoot)
		return common.Hash{}, nil
	})
	m := newTestManager(t)
	m.AddSink(sink)

	root, err := m.SetLocalExitRoot(ctx, 0, common.HexToHash("0x01"))
	require.ErrorContains(t, err, "unavailable")
	// the tree keeps the new root even if the push failed
	current, err := m.GetRollupExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, root, current)

	fail = false
	pushed, err := m.PushRollupExitRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, root, pushed)
	require.Equal(t, []common.Hash{root}, received)
}
