// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package quota exposes the read and administration surface of the quota
// ledger. Reservation and release are internal to the provisioning flow and
// are deliberately not reachable from here.
package quota

import (
	"context"

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

// GetQuota returns ceilings and usage counters for an account. Accounts read
// their own quota; admins and ancestors read any account beneath them.
func (s *Service) GetQuota(ctx context.Context, requesterID, accountID string) (*types.Quota, error) {
	ctx, span := s.tracer.Start(ctx, "quota.Service.GetQuota")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, requester, accountID); err != nil {
		return nil, err
	}

	return s.storage.GetQuota(ctx, accountID)
}

// SetCeilings replaces the max_* ceilings of an account. Administrator only.
// A ceiling below the current usage in any dimension is rejected with
// ErrBelowCurrentUsage; usage counters are never touched here.
func (s *Service) SetCeilings(ctx context.Context, requesterID, accountID string, max types.Shape) (*types.Quota, error) {
	ctx, span := s.tracer.Start(ctx, "quota.Service.SetCeilings")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.Role != types.RoleAdmin {
		s.logger.Security().AccessDenied(requesterID, accountID, "ceiling change requires admin")
		return nil, types.ErrForbidden
	}

	quota, err := s.storage.SetQuotaCeilings(ctx, accountID, max)
	if err != nil {
		return nil, err
	}

	s.logger.Security().CeilingChanged(requesterID, accountID)
	return quota, nil
}

// Recompute rebuilds an account's usage counters from the resources it owns.
// Administrator only; used to repair drift after a crashed rollback.
func (s *Service) Recompute(ctx context.Context, requesterID, accountID string) (*types.Quota, error) {
	ctx, span := s.tracer.Start(ctx, "quota.Service.Recompute")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.Role != types.RoleAdmin {
		s.logger.Security().AccessDenied(requesterID, accountID, "recompute requires admin")
		return nil, types.ErrForbidden
	}

	quota, err := s.storage.RecomputeQuota(ctx, accountID)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("usage counters recomputed for account %s by %s", accountID, requesterID)
	return quota, nil
}

func (s *Service) authorize(ctx context.Context, requester *types.Account, accountID string) error {
	if requester.ID == accountID || requester.Role == types.RoleAdmin {
		return nil
	}

	ancestors, err := s.storage.Ancestors(ctx, accountID)
	if err != nil {
		return err
	}
	for _, a := range ancestors {
		if a.ID == requester.ID {
			return nil
		}
	}

	s.logger.Security().AccessDenied(requester.ID, accountID, "not an ancestor")
	return types.ErrForbidden
}
