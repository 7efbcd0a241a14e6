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

const resourceColumns = "id, external_id, kind, owner_id, creator_id, " +
	"vps, cpu, ram_gb, storage_gb, state, created_at, updated_at"

func scanResource(row sq.RowScanner) (*types.OwnedResource, error) {
	var r types.OwnedResource
	err := row.Scan(
		&r.ID, &r.ExternalID, &r.Kind, &r.OwnerID, &r.CreatorID,
		&r.Shape.VPS, &r.Shape.CPU, &r.Shape.RAMGB, &r.Shape.StorageGB,
		&r.State, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Storage) InsertResource(ctx context.Context, r *types.OwnedResource) (*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertResource")
	defer span.End()

	created, err := scanResource(s.db.Statement(ctx).
		Insert("resources").
		Columns("id", "external_id", "kind", "owner_id", "creator_id",
			"vps", "cpu", "ram_gb", "storage_gb", "state").
		Values(r.ID, r.ExternalID, r.Kind, r.OwnerID, r.CreatorID,
			r.Shape.VPS, r.Shape.CPU, r.Shape.RAMGB, r.Shape.StorageGB, r.State).
		Suffix("RETURNING " + resourceColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("resource %s: %w", r.ID, types.ErrAlreadyExists)
		}
		if IsForeignKeyViolation(err) {
			return nil, types.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to insert resource: %w", err)
	}

	return created, nil
}

func (s *Storage) GetResource(ctx context.Context, id string) (*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetResource")
	defer span.End()

	r, err := scanResource(s.db.Statement(ctx).
		Select(resourceColumns).
		From("resources").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return r, nil
}

// ConfirmResource transitions provisioning -> running and records the
// orchestrator's identifier. The state condition makes concurrent confirms
// race-free: only one write can observe the provisioning state.
func (s *Storage) ConfirmResource(ctx context.Context, id, externalID string) (*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ConfirmResource")
	defer span.End()

	r, err := scanResource(s.db.Statement(ctx).
		Update("resources").
		Set("state", types.ResourceRunning).
		Set("external_id", externalID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "state": types.ResourceProvisioning}).
		Suffix("RETURNING " + resourceColumns).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to confirm resource: %w", err)
	}

	return r, nil
}

// DeleteReservation removes a resource row that is still in provisioning
// state, returning the deleted row so the caller can release its quota.
// Returns ErrNotFound when no provisioning row matches, which keeps rollback
// idempotent under concurrent calls.
func (s *Storage) DeleteReservation(ctx context.Context, id string) (*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteReservation")
	defer span.End()

	r, err := scanResource(s.db.Statement(ctx).
		Delete("resources").
		Where(sq.Eq{"id": id, "state": types.ResourceProvisioning}).
		Suffix("RETURNING " + resourceColumns).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete reservation: %w", err)
	}

	return r, nil
}

// MarkResourceDeleted transitions any non-deleted state to deleted, returning
// the row so the caller can release its quota exactly once.
func (s *Storage) MarkResourceDeleted(ctx context.Context, id string) (*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkResourceDeleted")
	defer span.End()

	r, err := scanResource(s.db.Statement(ctx).
		Update("resources").
		Set("state", types.ResourceDeleted).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"state": types.ResourceDeleted}).
		Suffix("RETURNING " + resourceColumns).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark resource deleted: %w", err)
	}

	return r, nil
}

func (s *Storage) ListResources(ctx context.Context) ([]*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListResources")
	defer span.End()

	return s.listResources(ctx, nil)
}

func (s *Storage) ListResourcesByOwners(ctx context.Context, ownerIDs []string) ([]*types.OwnedResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListResourcesByOwners")
	defer span.End()

	if len(ownerIDs) == 0 {
		return nil, nil
	}
	return s.listResources(ctx, ownerIDs)
}

func (s *Storage) listResources(ctx context.Context, ownerIDs []string) ([]*types.OwnedResource, error) {
	query := s.db.Statement(ctx).
		Select(resourceColumns).
		From("resources").
		Where(sq.NotEq{"state": types.ResourceDeleted}).
		OrderBy("created_at")

	if ownerIDs != nil {
		query = query.Where(sq.Eq{"owner_id": ownerIDs})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	var resources []*types.OwnedResource
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return resources, nil
}

// CountActiveResources counts non-deleted resources owned by any of the
// given accounts; used for the cascade check before account deletion.
func (s *Storage) CountActiveResources(ctx context.Context, ownerIDs []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveResources")
	defer span.End()

	if len(ownerIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("resources").
		Where(sq.Eq{"owner_id": ownerIDs}).
		Where(sq.NotEq{"state": types.ResourceDeleted}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}

	return count, nil
}
