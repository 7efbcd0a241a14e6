// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stratusline/ledger-service/internal/db"
	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/monitoring"
	"github.com/stratusline/ledger-service/internal/tracing"
	"github.com/stratusline/ledger-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// CreateAccount inserts the account, its seeded quota and, for non top-level
// roles, the typed parent edge. Callers run it inside a request transaction
// so the three writes land or fail together.
func (s *Storage) CreateAccount(ctx context.Context, account *types.Account, quota *types.Quota, edge *types.Edge) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccount")
	defer span.End()

	var created types.Account
	err := s.db.Statement(ctx).
		Insert("accounts").
		Columns("id", "role", "display_name", "status").
		Values(account.ID, account.Role, account.DisplayName, account.Status).
		Suffix("RETURNING id, role, display_name, status, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Role, &created.DisplayName, &created.Status, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("account %s: %w", account.ID, types.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	if err := s.createQuota(ctx, quota); err != nil {
		return nil, err
	}

	if edge != nil {
		if err := s.insertEdge(ctx, edge); err != nil {
			return nil, err
		}
	}

	return &created, nil
}

func (s *Storage) GetAccount(ctx context.Context, id string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccount")
	defer span.End()

	var a types.Account
	err := s.db.Statement(ctx).
		Select("id", "role", "display_name", "status", "created_at").
		From("accounts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.Role, &a.DisplayName, &a.Status, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

func (s *Storage) ListChildren(ctx context.Context, id string) ([]*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListChildren")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("a.id", "a.role", "a.display_name", "a.status", "a.created_at").
		From("accounts a").
		Join("hierarchy_edges e ON a.id = e.child_id").
		Where(sq.Eq{"e.parent_id": id}).
		OrderBy("a.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	defer rows.Close()

	var accounts []*types.Account
	for rows.Next() {
		var a types.Account
		if err := rows.Scan(&a.ID, &a.Role, &a.DisplayName, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return accounts, nil
}

func (s *Storage) SetAccountStatus(ctx context.Context, id string, status types.AccountStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetAccountStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set account status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return types.ErrReferenceNotFound
	}

	return nil
}

// DeleteAccount removes the account row together with its quota and parent
// edge. Cascade rules (empty subtree, child reassignment) are enforced by the
// accounts service before this is called.
func (s *Storage) DeleteAccount(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAccount")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Delete("hierarchy_edges").
		Where(sq.Eq{"child_id": id}).
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete parent edge: %w", err)
	}

	if _, err := s.db.Statement(ctx).
		Delete("quotas").
		Where(sq.Eq{"account_id": id}).
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete quota: %w", err)
	}

	res, err := s.db.Statement(ctx).
		Delete("accounts").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return types.ErrReferenceNotFound
	}

	return nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}
