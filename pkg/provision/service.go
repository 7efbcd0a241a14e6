// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package provision implements the admission flow for resource creation and
// teardown. A request reserves quota and records the resource in provisioning
// state; the caller drives the external orchestrator and reports back with
// confirm or rollback.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/monitoring"
	"github.com/stratusline/ledger-service/internal/tracing"
	"github.com/stratusline/ledger-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RequestProvision admits a resource-creation request. The requester must be
// the owner, an ancestor of the owner, or an admin. Quota is charged to the
// owner, never the requester. On success the resource is recorded in
// provisioning state and awaits ConfirmProvision or RollbackProvision.
func (s *Service) RequestProvision(ctx context.Context, requesterID, ownerID string, kind types.ResourceKind, shape types.Shape) (*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "provision.Service.RequestProvision")
	defer span.End()

	// A zero shape would reserve nothing and register a cost-free resource.
	if shape.IsZero() {
		return nil, types.ErrEmptyShape
	}

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.Status == types.AccountSuspended {
		return nil, types.ErrForbidden
	}

	owner, err := s.storage.GetAccount(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner.Status == types.AccountSuspended {
		return nil, types.ErrForbidden
	}
	if err := s.authorize(ctx, requester, ownerID); err != nil {
		return nil, err
	}

	if err := s.storage.ReserveQuota(ctx, ownerID, shape); err != nil {
		if qe, ok := types.IsQuotaExceeded(err); ok {
			s.logger.Infof("provision denied for %s: %s quota exceeded", ownerID, qe.Dimension)
		}
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		// The reservation must not outlive a failed insert.
		s.release(ctx, ownerID, shape)
		return nil, fmt.Errorf("failed to generate resource ID: %w", err)
	}

	resource := &types.OwnedResource{
		ID:        id.String(),
		Kind:      kind,
		OwnerID:   ownerID,
		CreatorID: requesterID,
		Shape:     shape,
		State:     types.ResourceProvisioning,
	}

	created, err := s.storage.InsertResource(ctx, resource)
	if err != nil {
		s.release(ctx, ownerID, shape)
		return nil, fmt.Errorf("failed to record reservation: %w", err)
	}

	s.logger.Infof("resource %s reserved for %s by %s", created.ID, ownerID, requesterID)
	return created, nil
}

// ConfirmProvision transitions a reservation to running once the external
// orchestrator reports success, recording the orchestrator's identifier.
func (s *Service) ConfirmProvision(ctx context.Context, requesterID, resourceID, externalID string) (*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "provision.Service.ConfirmProvision")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	resource, err := s.storage.GetResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, requester, resource.OwnerID); err != nil {
		return nil, err
	}

	confirmed, err := s.storage.ConfirmResource(ctx, resourceID, externalID)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("resource %s confirmed running as %s", resourceID, externalID)
	return confirmed, nil
}

// RollbackProvision abandons a reservation: the resource row is removed and
// the owner's quota released. Rolling back a reservation that no longer
// exists, or that was already confirmed or rolled back, is a no-op so callers
// can retry safely after orchestrator timeouts.
func (s *Service) RollbackProvision(ctx context.Context, requesterID, resourceID string) error {
	ctx, span := s.tracer.Start(ctx, "provision.Service.RollbackProvision")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return err
	}

	resource, err := s.storage.GetResource(ctx, resourceID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.authorize(ctx, requester, resource.OwnerID); err != nil {
		return err
	}

	deleted, err := s.storage.DeleteReservation(ctx, resourceID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			// Lost the race with a concurrent rollback or confirm.
			return nil
		}
		return err
	}

	if err := s.storage.ReleaseQuota(ctx, deleted.OwnerID, deleted.Shape); err != nil {
		return fmt.Errorf("failed to release reservation: %w", err)
	}

	s.logger.Infof("reservation %s rolled back by %s", resourceID, requesterID)
	return nil
}

// TeardownResource mirrors creation: the resource is marked deleted and its
// shape released from the owner's usage counters. Tearing down an already
// deleted resource is a no-op.
func (s *Service) TeardownResource(ctx context.Context, requesterID, resourceID string) error {
	ctx, span := s.tracer.Start(ctx, "provision.Service.TeardownResource")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return err
	}

	resource, err := s.storage.GetResource(ctx, resourceID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, requester, resource.OwnerID); err != nil {
		return err
	}

	deleted, err := s.storage.MarkResourceDeleted(ctx, resourceID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.storage.ReleaseQuota(ctx, deleted.OwnerID, deleted.Shape); err != nil {
		return fmt.Errorf("failed to release quota on teardown: %w", err)
	}

	s.logger.Infof("resource %s torn down by %s", resourceID, requesterID)
	return nil
}

// release compensates a reservation whose follow-up write failed. A failed
// release leaves the usage counters inflated until a recompute repairs them.
func (s *Service) release(ctx context.Context, ownerID string, shape types.Shape) {
	if err := s.storage.ReleaseQuota(ctx, ownerID, shape); err != nil {
		s.logger.Errorf("failed to release compensating reservation for %s: %v", ownerID, err)
	}
}

func (s *Service) authorize(ctx context.Context, requester *types.Account, ownerID string) error {
	if requester.ID == ownerID || requester.Role == types.RoleAdmin {
		return nil
	}

	ancestors, err := s.storage.Ancestors(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, a := range ancestors {
		if a.ID == requester.ID {
			return nil
		}
	}

	s.logger.Security().AccessDenied(requester.ID, ownerID, "not an ancestor of owner")
	return types.ErrForbidden
}
