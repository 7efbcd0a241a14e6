// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

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

// CreateChildAccount provisions a new account one tier below the requester.
// Admins create top-level subproviders (no edge); subproviders create
// partners and partners create end users, each linked by a typed edge. Any
// other pairing is an invalid role transition.
func (s *Service) CreateChildAccount(ctx context.Context, requesterID string, role types.Role, displayName string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.CreateChildAccount")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.Status == types.AccountSuspended {
		return nil, types.ErrForbidden
	}
	if !role.Valid() || role == types.RoleAdmin {
		return nil, types.ErrInvalidRoleTransition
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account ID: %w", err)
	}

	account := &types.Account{
		ID:          id.String(),
		Role:        role,
		DisplayName: displayName,
		Status:      types.AccountActive,
	}
	quota := &types.Quota{
		AccountID: account.ID,
		Max:       types.DefaultCeilings(role),
	}

	var edge *types.Edge
	if requester.Role == types.RoleAdmin && role == types.RoleSubprovider {
		// Subproviders live at the root of the forest, without a parent edge.
	} else {
		kind, ok := types.AllowedRelation(requester.Role, role)
		if !ok {
			s.logger.Security().AccessDenied(requesterID, string(role), "invalid role transition")
			return nil, types.ErrInvalidRoleTransition
		}
		edge = &types.Edge{
			ParentID: requesterID,
			ChildID:  account.ID,
			Kind:     kind,
		}
	}

	created, err := s.storage.CreateAccount(ctx, account, quota, edge)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Infof("account %s (%s) created by %s", created.ID, created.Role, requesterID)
	return created, nil
}

func (s *Service) GetAccount(ctx context.Context, requesterID, accountID string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.GetAccount")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	account, err := s.storage.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, requester, accountID); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *Service) ListChildren(ctx context.Context, requesterID, accountID string) ([]*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.ListChildren")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, requester, accountID); err != nil {
		return nil, err
	}

	return s.storage.ListChildren(ctx, accountID)
}

func (s *Service) SetAccountStatus(ctx context.Context, requesterID, accountID string, status types.AccountStatus) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SetAccountStatus")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return err
	}
	if requesterID == accountID {
		// Accounts cannot suspend or resume themselves.
		return types.ErrForbidden
	}
	if err := s.authorize(ctx, requester, accountID); err != nil {
		return err
	}

	return s.storage.SetAccountStatus(ctx, accountID, status)
}

// DeleteAccount removes an account whose subtree no longer owns resources.
// Children are reassigned to the deleted account's parent when the role
// pairing stays valid; otherwise the delete is rejected.
func (s *Service) DeleteAccount(ctx context.Context, requesterID, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.DeleteAccount")
	defer span.End()

	requester, err := s.storage.GetAccount(ctx, requesterID)
	if err != nil {
		return err
	}
	if requesterID == accountID {
		return types.ErrForbidden
	}
	if err := s.authorize(ctx, requester, accountID); err != nil {
		return err
	}

	if _, err := s.storage.GetAccount(ctx, accountID); err != nil {
		return err
	}

	subtree, err := s.storage.Subtree(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to resolve subtree: %w", err)
	}

	owned, err := s.storage.CountActiveResources(ctx, append(subtree, accountID))
	if err != nil {
		return fmt.Errorf("failed to check owned resources: %w", err)
	}
	if owned > 0 {
		return types.ErrSubtreeNotEmpty
	}

	children, err := s.storage.ListChildren(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to list children: %w", err)
	}
	if len(children) > 0 {
		if err := s.reassignChildren(ctx, accountID, children); err != nil {
			return err
		}
	}

	if err := s.storage.DeleteAccount(ctx, accountID); err != nil {
		return err
	}

	s.logger.Infof("account %s deleted by %s", accountID, requesterID)
	return nil
}

func (s *Service) reassignChildren(ctx context.Context, accountID string, children []*types.Account) error {
	parentEdge, err := s.storage.GetParentEdge(ctx, accountID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			// Top-level account: children would be orphaned at an invalid tier.
			return types.ErrInvalidRoleTransition
		}
		return fmt.Errorf("failed to get parent edge: %w", err)
	}

	parent, err := s.storage.GetAccount(ctx, parentEdge.ParentID)
	if err != nil {
		return err
	}

	// All children of one account share a role, so one pairing check covers them.
	kind, ok := types.AllowedRelation(parent.Role, children[0].Role)
	if !ok {
		return types.ErrInvalidRoleTransition
	}

	return s.storage.ReparentChildren(ctx, accountID, parent.ID, kind)
}

// authorize grants access when the requester is the account itself, an
// admin, or an ancestor of the account in the hierarchy.
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
