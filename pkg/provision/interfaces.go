// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provision

import (
	"context"

	"github.com/stratusline/ledger-service/internal/types"
)

type ServiceInterface interface {
	RequestProvision(ctx context.Context, requesterID, ownerID string, kind types.ResourceKind, shape types.Shape) (*types.OwnedResource, error)
	ConfirmProvision(ctx context.Context, requesterID, resourceID, externalID string) (*types.OwnedResource, error)
	RollbackProvision(ctx context.Context, requesterID, resourceID string) error
	TeardownResource(ctx context.Context, requesterID, resourceID string) error
}

type StorageInterface interface {
	GetAccount(ctx context.Context, id string) (*types.Account, error)
	Ancestors(ctx context.Context, id string) ([]*types.Account, error)
	ReserveQuota(ctx context.Context, accountID string, shape types.Shape) error
	ReleaseQuota(ctx context.Context, accountID string, shape types.Shape) error
	InsertResource(ctx context.Context, r *types.OwnedResource) (*types.OwnedResource, error)
	GetResource(ctx context.Context, id string) (*types.OwnedResource, error)
	ConfirmResource(ctx context.Context, id, externalID string) (*types.OwnedResource, error)
	DeleteReservation(ctx context.Context, id string) (*types.OwnedResource, error)
	MarkResourceDeleted(ctx context.Context, id string) (*types.OwnedResource, error)
}
