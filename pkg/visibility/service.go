// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package visibility projects the resource registry onto what a requesting
// account is allowed to see. It is read-only; dashboards never touch the
// registry directly.
package visibility

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

// VisibleResources scopes the registry by role: admins and subproviders see
// everything, partners see their own subtree, users see only themselves.
func (s *Service) VisibleResources(ctx context.Context, requesterID string) ([]*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "visibility.Service.VisibleResources")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	switch requester.Role {
	case types.RoleAdmin, types.RoleSubprovider:
		return s.storage.ListResources(ctx)
	case types.RolePartner:
		subtree, err := s.storage.Subtree(ctx, requester.ID)
		if err != nil {
			return nil, err
		}
		return s.storage.ListResourcesByOwners(ctx, append(subtree, requester.ID))
	default:
		return s.storage.ListResourcesByOwners(ctx, []string{requester.ID})
	}
}
