// Package subscription propagates subscription status changes into the
// progression and entitlement stores. Verification of the actual purchase
// receipt lives behind the Verifier interface.
package subscription

import (
	"context"
	"fmt"

	"github.com/editorbox/EditorBox_Go/internal/entitlement"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/logger"
	"github.com/editorbox/EditorBox_Go/internal/progression"
)

// Verifier reports the current subscription state from an external source.
type Verifier interface {
	Verify(ctx context.Context) (bool, error)
}

// StaticVerifier always reports a fixed state. Used in development and tests.
type StaticVerifier struct {
	Active bool
}

func (v StaticVerifier) Verify(ctx context.Context) (bool, error) {
	return v.Active, nil
}

// Service defines the interface for subscription operations
type Service interface {
	// HandleStatusChanged applies a subscription state change: flag first,
	// then entitlement reconcile. The two steps are not atomic but converge.
	HandleStatusChanged(ctx context.Context, active bool) error

	// Refresh re-verifies the subscription and applies the result.
	Refresh(ctx context.Context) error
}

type service struct {
	progression progression.Service
	entitlement entitlement.Service
	verifier    Verifier
	bus         event.Bus
}

// NewService creates a new subscription service
func NewService(progressionService progression.Service, entitlementService entitlement.Service, verifier Verifier, bus event.Bus) Service {
	return &service{
		progression: progressionService,
		entitlement: entitlementService,
		verifier:    verifier,
		bus:         bus,
	}
}

func (s *service) HandleStatusChanged(ctx context.Context, active bool) error {
	log := logger.FromContext(ctx)

	if err := s.progression.SetSubscriberStatus(ctx, active); err != nil {
		return fmt.Errorf("failed to update subscriber status: %w", err)
	}
	if err := s.entitlement.Reconcile(ctx); err != nil {
		return fmt.Errorf("failed to reconcile entitlements: %w", err)
	}

	log.Info("Subscription status applied", "active", active)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewSubscriptionStatusEvent(active)); err != nil {
			log.Warn("Failed to publish subscription event", "error", err)
		}
	}
	return nil
}

func (s *service) Refresh(ctx context.Context) error {
	active, err := s.verifier.Verify(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify subscription: %w", err)
	}
	return s.HandleStatusChanged(ctx, active)
}
