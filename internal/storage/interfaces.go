// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/stratusline/ledger-service/internal/types"
)

// StorageInterface is the authoritative ledger store. Implementations must
// make ReserveQuota/ReleaseQuota for a given account atomic relative to each
// other; everything else is embarrassingly parallel across accounts.
type StorageInterface interface {
	// Account directory
	CreateAccount(ctx context.Context, account *types.Account, quota *types.Quota, edge *types.Edge) (*types.Account, error)
	GetAccount(ctx context.Context, id string) (*types.Account, error)
	ListChildren(ctx context.Context, id string) ([]*types.Account, error)
	SetAccountStatus(ctx context.Context, id string, status types.AccountStatus) error
	DeleteAccount(ctx context.Context, id string) error

	// Hierarchy graph
	GetParentEdge(ctx context.Context, childID string) (*types.Edge, error)
	Ancestors(ctx context.Context, id string) ([]*types.Account, error)
	Subtree(ctx context.Context, id string) ([]string, error)
	ReparentChildren(ctx context.Context, oldParentID, newParentID string, kind types.RelationKind) error

	// Quota ledger
	GetQuota(ctx context.Context, accountID string) (*types.Quota, error)
	SetQuotaCeilings(ctx context.Context, accountID string, max types.Shape) (*types.Quota, error)
	ReserveQuota(ctx context.Context, accountID string, shape types.Shape) error
	ReleaseQuota(ctx context.Context, accountID string, shape types.Shape) error
	RecomputeQuota(ctx context.Context, accountID string) (*types.Quota, error)

	// Resource ownership registry
	InsertResource(ctx context.Context, r *types.OwnedResource) (*types.OwnedResource, error)
	GetResource(ctx context.Context, id string) (*types.OwnedResource, error)
	ConfirmResource(ctx context.Context, id, externalID string) (*types.OwnedResource, error)
	DeleteReservation(ctx context.Context, id string) (*types.OwnedResource, error)
	MarkResourceDeleted(ctx context.Context, id string) (*types.OwnedResource, error)
	ListResources(ctx context.Context) ([]*types.OwnedResource, error)
	ListResourcesByOwners(ctx context.Context, ownerIDs []string) ([]*types.OwnedResource, error)
	CountActiveResources(ctx context.Context, ownerIDs []string) (int64, error)
}
