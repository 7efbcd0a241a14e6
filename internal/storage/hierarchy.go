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

// insertEdge relies on the unique constraint on child_id to keep the graph a
// forest: a second parent edge for the same child maps to ChildAlreadyLinked.
func (s *Storage) insertEdge(ctx context.Context, edge *types.Edge) error {
	id, err := newID()
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("hierarchy_edges").
		Columns("id", "parent_id", "child_id", "kind").
		Values(id, edge.ParentID, edge.ChildID, edge.Kind).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return fmt.Errorf("child %s: %w", edge.ChildID, types.ErrChildAlreadyLinked)
		}
		if IsForeignKeyViolation(err) {
			return types.ErrReferenceNotFound
		}
		return fmt.Errorf("failed to insert hierarchy edge: %w", err)
	}

	return nil
}

func (s *Storage) GetParentEdge(ctx context.Context, childID string) (*types.Edge, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetParentEdge")
	defer span.End()

	var e types.Edge
	err := s.db.Statement(ctx).
		Select("id", "parent_id", "child_id", "kind", "created_at").
		From("hierarchy_edges").
		Where(sq.Eq{"child_id": childID}).
		QueryRowContext(ctx).
		Scan(&e.ID, &e.ParentID, &e.ChildID, &e.Kind, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parent edge: %w", err)
	}

	return &e, nil
}

// Ancestors returns the chain from the account's parent up to its root,
// nearest ancestor first.
func (s *Storage) Ancestors(ctx context.Context, id string) ([]*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Ancestors")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("a.id", "a.role", "a.display_name", "a.status", "a.created_at").
		From("chain").
		Join("accounts a ON a.id = chain.parent_id").
		OrderBy("chain.depth").
		Prefix(`WITH RECURSIVE chain AS (
			SELECT e.parent_id, 1 AS depth FROM hierarchy_edges e WHERE e.child_id = ?
			UNION ALL
			SELECT e.parent_id, c.depth + 1 FROM hierarchy_edges e JOIN chain c ON e.child_id = c.parent_id
		)`, id).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query ancestors: %w", err)
	}
	defer rows.Close()

	var ancestors []*types.Account
	for rows.Next() {
		var a types.Account
		if err := rows.Scan(&a.ID, &a.Role, &a.DisplayName, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ancestor: %w", err)
		}
		ancestors = append(ancestors, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ancestors, nil
}

// Subtree returns the ids of all descendants of the account, excluding the
// account itself.
func (s *Storage) Subtree(ctx context.Context, id string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Subtree")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("subtree").
		Prefix(`WITH RECURSIVE subtree AS (
			SELECT e.child_id AS id FROM hierarchy_edges e WHERE e.parent_id = ?
			UNION ALL
			SELECT e.child_id FROM hierarchy_edges e JOIN subtree s ON e.parent_id = s.id
		)`, id).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query subtree: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var descendant string
		if err := rows.Scan(&descendant); err != nil {
			return nil, fmt.Errorf("failed to scan descendant: %w", err)
		}
		ids = append(ids, descendant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// ReparentChildren moves every child edge of oldParentID to newParentID. The
// accounts service validates the role pairing before calling.
func (s *Storage) ReparentChildren(ctx context.Context, oldParentID, newParentID string, kind types.RelationKind) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReparentChildren")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("hierarchy_edges").
		Set("parent_id", newParentID).
		Set("kind", kind).
		Where(sq.Eq{"parent_id": oldParentID}).
		ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return types.ErrReferenceNotFound
		}
		return fmt.Errorf("failed to reparent children: %w", err)
	}

	return nil
}
