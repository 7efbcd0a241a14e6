// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"

	"github.com/stratusline/ledger-service/internal/types"
)

type ServiceInterface interface {
	CreateChildAccount(ctx context.Context, requesterID string, role types.Role, displayName string) (*types.Account, error)
	GetAccount(ctx context.Context, requesterID, accountID string) (*types.Account, error)
	ListChildren(ctx context.Context, requesterID, accountID string) ([]*types.Account, error)
	SetAccountStatus(ctx context.Context, requesterID, accountID string, status types.AccountStatus) error
	DeleteAccount(ctx context.Context, requesterID, accountID string) error
}

type StorageInterface interface {
	CreateAccount(ctx context.Context, account *types.Account, quota *types.Quota, edge *types.Edge) (*types.Account, error)
	GetAccount(ctx context.Context, id string) (*types.Account, error)
	ListChildren(ctx context.Context, id string) ([]*types.Account, error)
	SetAccountStatus(ctx context.Context, id string, status types.AccountStatus) error
	DeleteAccount(ctx context.Context, id string) error
	GetParentEdge(ctx context.Context, childID string) (*types.Edge, error)
	Ancestors(ctx context.Context, id string) ([]*types.Account, error)
	Subtree(ctx context.Context, id string) ([]string, error)
	ReparentChildren(ctx context.Context, oldParentID, newParentID string, kind types.RelationKind) error
	CountActiveResources(ctx context.Context, ownerIDs []string) (int64, error)
}
