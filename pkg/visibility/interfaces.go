// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package visibility

import (
	"context"

	"github.com/stratusline/ledger-service/internal/types"
)

type ServiceInterface interface {
	VisibleResources(ctx context.Context, requesterID string) ([]*types.OwnedResource, error)
}

type StorageInterface interface {
	GetAccount(ctx context.Context, id string) (*types.Account, error)
	Subtree(ctx context.Context, id string) ([]string, error)
	ListResources(ctx context.Context) ([]*types.OwnedResource, error)
	ListResourcesByOwners(ctx context.Context, ownerIDs []string) ([]*types.OwnedResource, error)
}
