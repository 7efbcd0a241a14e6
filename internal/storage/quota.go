// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/stratusline/ledger-service/internal/types"
)

const quotaColumns = "account_id, max_vps, max_cpu, max_ram_gb, max_storage_gb, " +
	"used_vps, used_cpu, used_ram_gb, used_storage_gb, created_at, updated_at"

func scanQuota(row sq.RowScanner) (*types.Quota, error) {
	var q types.Quota
	err := row.Scan(
		&q.AccountID,
		&q.Max.VPS, &q.Max.CPU, &q.Max.RAMGB, &q.Max.StorageGB,
		&q.Used.VPS, &q.Used.CPU, &q.Used.RAMGB, &q.Used.StorageGB,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *Storage) createQuota(ctx context.Context, q *types.Quota) error {
	_, err := s.db.Statement(ctx).
		Insert("quotas").
		Columns("account_id", "max_vps", "max_cpu", "max_ram_gb", "max_storage_gb").
		Values(q.AccountID, q.Max.VPS, q.Max.CPU, q.Max.RAMGB, q.Max.StorageGB).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return fmt.Errorf("quota for %s: %w", q.AccountID, types.ErrAlreadyExists)
		}
		if IsForeignKeyViolation(err) {
			return types.ErrReferenceNotFound
		}
		return fmt.Errorf("failed to insert quota: %w", err)
	}

	return nil
}

func (s *Storage) GetQuota(ctx context.Context, accountID string) (*types.Quota, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetQuota")
	defer span.End()

	q, err := scanQuota(s.db.Statement(ctx).
		Select(quotaColumns).
		From("quotas").
		Where(sq.Eq{"account_id": accountID}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to get quota: %w", err)
	}

	return q, nil
}

// ReserveQuota charges shape against the account's usage counters. The check
// and the increment are a single conditional UPDATE, so concurrent reserves
// cannot jointly overflow a ceiling.
func (s *Storage) ReserveQuota(ctx context.Context, accountID string, shape types.Shape) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReserveQuota")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("quotas").
		Set("used_vps", sq.Expr("used_vps + ?", shape.VPS)).
		Set("used_cpu", sq.Expr("used_cpu + ?", shape.CPU)).
		Set("used_ram_gb", sq.Expr("used_ram_gb + ?", shape.RAMGB)).
		Set("used_storage_gb", sq.Expr("used_storage_gb + ?", shape.StorageGB)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Expr("used_vps + ? <= max_vps", shape.VPS)).
		Where(sq.Expr("used_cpu + ? <= max_cpu", shape.CPU)).
		Where(sq.Expr("used_ram_gb + ? <= max_ram_gb", shape.RAMGB)).
		Where(sq.Expr("used_storage_gb + ? <= max_storage_gb", shape.StorageGB)).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to reserve quota: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// The conditional write matched nothing: either the account has no quota
	// row or a ceiling would overflow. Re-read to name the dimension.
	quota, err := s.GetQuota(ctx, accountID)
	if err != nil {
		return err
	}

	if dim, exceeded := quota.Exceeds(shape); exceeded {
		return &types.QuotaExceededError{Dimension: dim}
	}

	// Headroom appeared between the failed write and the re-read; report the
	// first dimension of the request so the caller's retry stays cheap.
	return &types.QuotaExceededError{Dimension: types.DimVPS}
}

// ReleaseQuota returns shape to the account's headroom. A release that would
// drive a counter negative indicates a bookkeeping bug in the caller; it is
// logged as a defect and clamped at zero rather than propagated.
func (s *Storage) ReleaseQuota(ctx context.Context, accountID string, shape types.Shape) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReleaseQuota")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("quotas").
		Set("used_vps", sq.Expr("used_vps - ?", shape.VPS)).
		Set("used_cpu", sq.Expr("used_cpu - ?", shape.CPU)).
		Set("used_ram_gb", sq.Expr("used_ram_gb - ?", shape.RAMGB)).
		Set("used_storage_gb", sq.Expr("used_storage_gb - ?", shape.StorageGB)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Expr("used_vps >= ?", shape.VPS)).
		Where(sq.Expr("used_cpu >= ?", shape.CPU)).
		Where(sq.Expr("used_ram_gb >= ?", shape.RAMGB)).
		Where(sq.Expr("used_storage_gb >= ?", shape.StorageGB)).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to release quota: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	s.logger.Errorf("release for account %s would drive usage negative, clamping at zero (shape %+v)", accountID, shape)

	res, err = s.db.Statement(ctx).
		Update("quotas").
		Set("used_vps", sq.Expr("GREATEST(used_vps - ?, 0)", shape.VPS)).
		Set("used_cpu", sq.Expr("GREATEST(used_cpu - ?, 0)", shape.CPU)).
		Set("used_ram_gb", sq.Expr("GREATEST(used_ram_gb - ?, 0)", shape.RAMGB)).
		Set("used_storage_gb", sq.Expr("GREATEST(used_storage_gb - ?, 0)", shape.StorageGB)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"account_id": accountID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to release quota: %w", err)
	}

	affected, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return types.ErrReferenceNotFound
	}

	return nil
}

// SetQuotaCeilings updates max_* subject to the used <= max invariant.
func (s *Storage) SetQuotaCeilings(ctx context.Context, accountID string, max types.Shape) (*types.Quota, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetQuotaCeilings")
	defer span.End()

	q, err := scanQuota(s.db.Statement(ctx).
		Update("quotas").
		Set("max_vps", max.VPS).
		Set("max_cpu", max.CPU).
		Set("max_ram_gb", max.RAMGB).
		Set("max_storage_gb", max.StorageGB).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Expr("used_vps <= ?", max.VPS)).
		Where(sq.Expr("used_cpu <= ?", max.CPU)).
		Where(sq.Expr("used_ram_gb <= ?", max.RAMGB)).
		Where(sq.Expr("used_storage_gb <= ?", max.StorageGB)).
		Suffix("RETURNING " + quotaColumns).
		QueryRowContext(ctx))

	if err == nil {
		return q, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to set quota ceilings: %w", err)
	}

	// Distinguish a missing quota row from a ceiling under current usage.
	if _, err := s.GetQuota(ctx, accountID); err != nil {
		return nil, err
	}

	return nil, types.ErrBelowCurrentUsage
}

// RecomputeQuota repairs usage drift by resetting used_* to the sum of
// shapes over the account's non-deleted resources. Runs inside a
// serializable transaction so the sum and the write observe one snapshot;
// conflicting admissions retry via the client's bounded retry loop.
func (s *Storage) RecomputeQuota(ctx context.Context, accountID string) (*types.Quota, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RecomputeQuota")
	defer span.End()

	var q *types.Quota
	err := s.db.WithSerializableTx(ctx, func(txCtx context.Context) error {
		sums := `(SELECT COALESCE(SUM(%s), 0) FROM resources WHERE owner_id = ? AND state <> 'deleted')`

		recomputed, err := scanQuota(s.db.Statement(txCtx).
			Update("quotas").
			Set("used_vps", sq.Expr(fmt.Sprintf(sums, "vps"), accountID)).
			Set("used_cpu", sq.Expr(fmt.Sprintf(sums, "cpu"), accountID)).
			Set("used_ram_gb", sq.Expr(fmt.Sprintf(sums, "ram_gb"), accountID)).
			Set("used_storage_gb", sq.Expr(fmt.Sprintf(sums, "storage_gb"), accountID)).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"account_id": accountID}).
			Suffix("RETURNING " + quotaColumns).
			QueryRowContext(txCtx))

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return types.ErrReferenceNotFound
			}
			return fmt.Errorf("failed to recompute quota: %w", err)
		}

		q = recomputed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return q, nil
}
