// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"

	"github.com/stratusline/ledger-service/internal/types"
)

type ServiceInterface interface {
	GetQuota(ctx context.Context, requesterID, accountID string) (*types.Quota, error)
	SetCeilings(ctx context.Context, requesterID, accountID string, max types.Shape) (*types.Quota, error)
	Recompute(ctx context.Context, requesterID, accountID string) (*types.Quota, error)
}

type StorageInterface interface {
	GetAccount(ctx context.Context, id string) (*types.Account, error)
	Ancestors(ctx context.Context, id string) ([]*types.Account, error)
	GetQuota(ctx context.Context, accountID string) (*types.Quota, error)
	SetQuotaCeilings(ctx context.Context, accountID string, max types.Shape) (*types.Quota, error)
	RecomputeQuota(ctx context.Context, accountID string) (*types.Quota, error)
}
