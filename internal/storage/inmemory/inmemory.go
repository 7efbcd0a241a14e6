// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package inmemory provides a self-contained ledger store for unit tests and
// local development. Quota reserve/release take a per-account lock so the
// read-check-write step has the same atomicity as the conditional UPDATE in
// the postgres implementation.
package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/storage"
	"github.com/stratusline/ledger-service/internal/types"
)

var _ storage.StorageInterface = (*Store)(nil)

type quotaEntry struct {
	mu    sync.Mutex
	quota types.Quota
}

type Store struct {
	// mu guards the maps themselves; per-account atomicity for quota
	// counters is provided by each quotaEntry's own lock.
	mu        sync.RWMutex
	accounts  map[string]types.Account
	parents   map[string]types.Edge // keyed by child id
	quotas    map[string]*quotaEntry
	resources map[string]types.OwnedResource

	logger logging.LoggerInterface
}

func NewStore(logger logging.LoggerInterface) *Store {
	return &Store{
		accounts:  make(map[string]types.Account),
		parents:   make(map[string]types.Edge),
		quotas:    make(map[string]*quotaEntry),
		resources: make(map[string]types.OwnedResource),
		logger:    logger,
	}
}

func (s *Store) CreateAccount(ctx context.Context, account *types.Account, quota *types.Quota, edge *types.Edge) (*types.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; ok {
		return nil, fmt.Errorf("account %s: %w", account.ID, types.ErrAlreadyExists)
	}
	if edge != nil {
		if _, ok := s.accounts[edge.ParentID]; !ok {
			return nil, types.ErrReferenceNotFound
		}
		if _, ok := s.parents[edge.ChildID]; ok {
			return nil, fmt.Errorf("child %s: %w", edge.ChildID, types.ErrChildAlreadyLinked)
		}
	}

	now := time.Now().UTC()

	a := *account
	a.CreatedAt = now
	s.accounts[a.ID] = a

	q := *quota
	q.CreatedAt = now
	q.UpdatedAt = now
	s.quotas[q.AccountID] = &quotaEntry{quota: q}

	if edge != nil {
		e := *edge
		e.ID = uuid.NewString()
		e.CreatedAt = now
		s.parents[e.ChildID] = e
	}

	return &a, nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (*types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, types.ErrReferenceNotFound
	}
	return &a, nil
}

func (s *Store) ListChildren(ctx context.Context, id string) ([]*types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var children []*types.Account
	for _, e := range s.parents {
		if e.ParentID != id {
			continue
		}
		if a, ok := s.accounts[e.ChildID]; ok {
			child := a
			children = append(children, &child)
		}
	}
	return children, nil
}

func (s *Store) SetAccountStatus(ctx context.Context, id string, status types.AccountStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return types.ErrReferenceNotFound
	}
	a.Status = status
	s.accounts[id] = a
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return types.ErrReferenceNotFound
	}
	delete(s.accounts, id)
	delete(s.quotas, id)
	delete(s.parents, id)
	return nil
}

func (s *Store) GetParentEdge(ctx context.Context, childID string) (*types.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.parents[childID]
	if !ok {
		return nil, types.ErrNotFound
	}
	return &e, nil
}

func (s *Store) Ancestors(ctx context.Context, id string) ([]*types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var chain []*types.Account
	current := id
	for {
		e, ok := s.parents[current]
		if !ok {
			return chain, nil
		}
		parent, ok := s.accounts[e.ParentID]
		if !ok {
			return nil, types.ErrReferenceNotFound
		}
		p := parent
		chain = append(chain, &p)
		current = e.ParentID
	}
}

func (s *Store) Subtree(ctx context.Context, id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	children := make(map[string][]string)
	for child, e := range s.parents {
		children[e.ParentID] = append(children[e.ParentID], child)
	}

	var ids []string
	frontier := []string{id}
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		for _, child := range children[next] {
			ids = append(ids, child)
			frontier = append(frontier, child)
		}
	}
	return ids, nil
}

func (s *Store) ReparentChildren(ctx context.Context, oldParentID, newParentID string, kind types.RelationKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[newParentID]; !ok {
		return types.ErrReferenceNotFound
	}
	for child, e := range s.parents {
		if e.ParentID != oldParentID {
			continue
		}
		e.ParentID = newParentID
		e.Kind = kind
		s.parents[child] = e
	}
	return nil
}

func (s *Store) quotaEntry(accountID string) (*quotaEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.quotas[accountID]
	if !ok {
		return nil, types.ErrReferenceNotFound
	}
	return entry, nil
}

func (s *Store) GetQuota(ctx context.Context, accountID string) (*types.Quota, error) {
	entry, err := s.quotaEntry(accountID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	q := entry.quota
	return &q, nil
}

func (s *Store) ReserveQuota(ctx context.Context, accountID string, shape types.Shape) error {
	entry, err := s.quotaEntry(accountID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if dim, exceeded := entry.quota.Exceeds(shape); exceeded {
		return &types.QuotaExceededError{Dimension: dim}
	}

	entry.quota.Used = entry.quota.Used.Add(shape)
	entry.quota.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) ReleaseQuota(ctx context.Context, accountID string, shape types.Shape) error {
	entry, err := s.quotaEntry(accountID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	used := &entry.quota.Used
	for _, d := range types.DimensionOrder {
		if used.Get(d) < shape.Get(d) {
			s.logger.Errorf("release for account %s would drive %s usage negative, clamping at zero", accountID, d)
		}
	}

	used.VPS = max(used.VPS-shape.VPS, 0)
	used.CPU = max(used.CPU-shape.CPU, 0)
	used.RAMGB = max(used.RAMGB-shape.RAMGB, 0)
	used.StorageGB = max(used.StorageGB-shape.StorageGB, 0)
	entry.quota.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) SetQuotaCeilings(ctx context.Context, accountID string, maxShape types.Shape) (*types.Quota, error) {
	entry, err := s.quotaEntry(accountID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	for _, d := range types.DimensionOrder {
		if entry.quota.Used.Get(d) > maxShape.Get(d) {
			return nil, types.ErrBelowCurrentUsage
		}
	}

	entry.quota.Max = maxShape
	entry.quota.UpdatedAt = time.Now().UTC()
	q := entry.quota
	return &q, nil
}

func (s *Store) RecomputeQuota(ctx context.Context, accountID string) (*types.Quota, error) {
	entry, err := s.quotaEntry(accountID)
	if err != nil {
		return nil, err
	}

	var sum types.Shape
	s.mu.RLock()
	for _, r := range s.resources {
		if r.OwnerID == accountID && r.State != types.ResourceDeleted {
			sum = sum.Add(r.Shape)
		}
	}
	s.mu.RUnlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.quota.Used = sum
	entry.quota.UpdatedAt = time.Now().UTC()
	q := entry.quota
	return &q, nil
}

func (s *Store) InsertResource(ctx context.Context, r *types.OwnedResource) (*types.OwnedResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[r.ID]; ok {
		return nil, fmt.Errorf("resource %s: %w", r.ID, types.ErrAlreadyExists)
	}
	if _, ok := s.accounts[r.OwnerID]; !ok {
		return nil, types.ErrReferenceNotFound
	}

	now := time.Now().UTC()
	res := *r
	res.CreatedAt = now
	res.UpdatedAt = now
	s.resources[res.ID] = res
	return &res, nil
}

func (s *Store) GetResource(ctx context.Context, id string) (*types.OwnedResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.resources[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return &r, nil
}

func (s *Store) ConfirmResource(ctx context.Context, id, externalID string) (*types.OwnedResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.resources[id]
	if !ok || r.State != types.ResourceProvisioning {
		return nil, types.ErrNotFound
	}
	r.State = types.ResourceRunning
	r.ExternalID = externalID
	r.UpdatedAt = time.Now().UTC()
	s.resources[id] = r
	return &r, nil
}

func (s *Store) DeleteReservation(ctx context.Context, id string) (*types.OwnedResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.resources[id]
	if !ok || r.State != types.ResourceProvisioning {
		return nil, types.ErrNotFound
	}
	delete(s.resources, id)
	return &r, nil
}

func (s *Store) MarkResourceDeleted(ctx context.Context, id string) (*types.OwnedResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.resources[id]
	if !ok || r.State == types.ResourceDeleted {
		return nil, types.ErrNotFound
	}
	r.State = types.ResourceDeleted
	r.UpdatedAt = time.Now().UTC()
	s.resources[id] = r
	return &r, nil
}

func (s *Store) ListResources(ctx context.Context) ([]*types.OwnedResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var resources []*types.OwnedResource
	for _, r := range s.resources {
		if r.State == types.ResourceDeleted {
			continue
		}
		res := r
		resources = append(resources, &res)
	}
	return resources, nil
}

func (s *Store) ListResourcesByOwners(ctx context.Context, ownerIDs []string) ([]*types.OwnedResource, error) {
	owners := make(map[string]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		owners[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var resources []*types.OwnedResource
	for _, r := range s.resources {
		if r.State == types.ResourceDeleted {
			continue
		}
		if _, ok := owners[r.OwnerID]; !ok {
			continue
		}
		res := r
		resources = append(resources, &res)
	}
	return resources, nil
}

func (s *Store) CountActiveResources(ctx context.Context, ownerIDs []string) (int64, error) {
	resources, err := s.ListResourcesByOwners(ctx, ownerIDs)
	if err != nil {
		return 0, err
	}
	return int64(len(resources)), nil
}
