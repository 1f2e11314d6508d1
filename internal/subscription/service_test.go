package subscription

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editorbox/EditorBox_Go/internal/entitlement"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/monetization"
	"github.com/editorbox/EditorBox_Go/internal/progression"
	"github.com/editorbox/EditorBox_Go/internal/throttle"
)

type failingVerifier struct{}

func (failingVerifier) Verify(ctx context.Context) (bool, error) {
	return false, errors.New("receipt service unavailable")
}

func newTestService(t *testing.T, verifier Verifier) (Service, progression.Service, entitlement.Service, *event.MemoryBus) {
	t.Helper()

	bus := event.NewMemoryBus()
	prog := progression.NewService(
		progression.NewFakeProgressRepository(),
		throttle.New(throttle.DefaultWindow, throttle.DefaultMaxEntries),
		monetization.NewPolicy(bus),
		bus,
	)
	ent := entitlement.NewService(entitlement.NewFakeEntitlementRepository(), prog, bus)
	return NewService(prog, ent, verifier, bus), prog, ent, bus
}

func TestHandleStatusChangedActivation(t *testing.T) {
	svc, prog, ent, bus := newTestService(t, StaticVerifier{})
	ctx := context.Background()

	var published []event.Event
	bus.Subscribe(event.SubscriptionActivated, func(ctx context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})

	require.NoError(t, svc.HandleStatusChanged(ctx, true))

	snap, err := prog.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.IsSubscriber)

	owned, err := ent.IsOwned(ctx, entitlement.ThemePremiumMidnight)
	require.NoError(t, err)
	assert.True(t, owned)

	assert.Len(t, published, 1)
}

func TestHandleStatusChangedExpiry(t *testing.T) {
	svc, prog, ent, _ := newTestService(t, StaticVerifier{})
	ctx := context.Background()

	require.NoError(t, svc.HandleStatusChanged(ctx, true))
	require.NoError(t, ent.Equip(ctx, entitlement.ThemePremiumMidnight))

	require.NoError(t, svc.HandleStatusChanged(ctx, false))

	snap, err := prog.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, snap.IsSubscriber)

	current, err := ent.CurrentTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entitlement.ThemeDefault, current.ID)
}

func TestRefreshAppliesVerifierResult(t *testing.T) {
	svc, prog, _, _ := newTestService(t, StaticVerifier{Active: true})
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx))

	snap, err := prog.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.IsSubscriber)
}

func TestRefreshVerifierFailure(t *testing.T) {
	svc, prog, _, _ := newTestService(t, failingVerifier{})
	ctx := context.Background()

	require.NoError(t, svc.HandleStatusChanged(ctx, true))
	assert.Error(t, svc.Refresh(ctx))

	// A failed verification must not flip the flag.
	snap, err := prog.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.IsSubscriber)
}
