// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package inmemory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(logging.NewNoopLogger())
}

func mustCreateAccount(t *testing.T, s *Store, id string, role types.Role, parentID string) {
	t.Helper()

	account := &types.Account{ID: id, Role: role, DisplayName: id, Status: types.AccountActive}
	quota := &types.Quota{AccountID: id, Max: types.DefaultCeilings(role)}

	var edge *types.Edge
	if parentID != "" {
		kind := types.RelationPartnerClient
		if role == types.RolePartner {
			kind = types.RelationSubproviderPartner
		}
		edge = &types.Edge{ParentID: parentID, ChildID: id, Kind: kind}
	}

	if _, err := s.CreateAccount(context.Background(), account, quota, edge); err != nil {
		t.Fatalf("failed to create account %s: %v", id, err)
	}
}

func TestConcurrentReserveNeverOverflowsCeiling(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "partner-1", types.RolePartner, "")

	// Ceiling of exactly 100 VPS, no usage.
	if _, err := s.SetQuotaCeilings(ctx, "partner-1", types.Shape{VPS: 100, CPU: 2_000, RAMGB: 4_000, StorageGB: 50_000}); err != nil {
		t.Fatalf("failed to set ceilings: %v", err)
	}

	const callers = 101
	var wg sync.WaitGroup
	results := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.ReserveQuota(ctx, "partner-1", types.Shape{VPS: 1, CPU: 1, RAMGB: 2, StorageGB: 10})
		}()
	}
	wg.Wait()
	close(results)

	successes, denials := 0, 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		qe, ok := types.IsQuotaExceeded(err)
		if !ok {
			t.Fatalf("unexpected error kind: %v", err)
		}
		if qe.Dimension != types.DimVPS {
			t.Errorf("expected vps to be the denied dimension, got %s", qe.Dimension)
		}
		denials++
	}

	if successes != 100 || denials != 1 {
		t.Errorf("expected 100 successes and 1 denial, got %d/%d", successes, denials)
	}

	q, err := s.GetQuota(ctx, "partner-1")
	if err != nil {
		t.Fatalf("failed to get quota: %v", err)
	}
	if q.Used.VPS != 100 {
		t.Errorf("expected used_vps 100, got %d", q.Used.VPS)
	}
	if q.Used.VPS > q.Max.VPS {
		t.Errorf("used_vps %d exceeds ceiling %d", q.Used.VPS, q.Max.VPS)
	}
}

func TestReserveReportsFirstOverflowingDimension(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "user-1", types.RoleUser, "")
	if _, err := s.SetQuotaCeilings(ctx, "user-1", types.Shape{VPS: 10, CPU: 4, RAMGB: 4, StorageGB: 100}); err != nil {
		t.Fatalf("failed to set ceilings: %v", err)
	}

	// cpu and ram both overflow; cpu precedes ram in the reporting order.
	err := s.ReserveQuota(ctx, "user-1", types.Shape{VPS: 1, CPU: 8, RAMGB: 8, StorageGB: 10})
	qe, ok := types.IsQuotaExceeded(err)
	if !ok {
		t.Fatalf("expected QuotaExceededError, got %v", err)
	}
	if qe.Dimension != types.DimCPU {
		t.Errorf("expected cpu, got %s", qe.Dimension)
	}
}

func TestReleaseClampsAtZero(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "user-1", types.RoleUser, "")

	if err := s.ReserveQuota(ctx, "user-1", types.Shape{VPS: 1, CPU: 2, RAMGB: 4, StorageGB: 10}); err != nil {
		t.Fatalf("failed to reserve: %v", err)
	}

	// Release more than was ever reserved.
	if err := s.ReleaseQuota(ctx, "user-1", types.Shape{VPS: 5, CPU: 5, RAMGB: 5, StorageGB: 5}); err != nil {
		t.Fatalf("failed to release: %v", err)
	}

	q, err := s.GetQuota(ctx, "user-1")
	if err != nil {
		t.Fatalf("failed to get quota: %v", err)
	}
	if q.Used.VPS != 0 || q.Used.CPU != 0 || q.Used.RAMGB != 0 {
		t.Errorf("expected clamped usage at zero, got %+v", q.Used)
	}
	if q.Used.StorageGB != 5 {
		t.Errorf("expected storage usage 5, got %d", q.Used.StorageGB)
	}
}

func TestSetCeilingsBelowCurrentUsage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "user-1", types.RoleUser, "")
	if err := s.ReserveQuota(ctx, "user-1", types.Shape{VPS: 7, CPU: 7, RAMGB: 7, StorageGB: 7}); err != nil {
		t.Fatalf("failed to reserve: %v", err)
	}

	_, err := s.SetQuotaCeilings(ctx, "user-1", types.Shape{VPS: 5, CPU: 80, RAMGB: 160, StorageGB: 2_000})
	if !errors.Is(err, types.ErrBelowCurrentUsage) {
		t.Errorf("expected ErrBelowCurrentUsage, got %v", err)
	}
}

func TestSubtreeAndAncestors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "sub-1", types.RoleSubprovider, "")
	mustCreateAccount(t, s, "partner-1", types.RolePartner, "sub-1")
	mustCreateAccount(t, s, "partner-2", types.RolePartner, "sub-1")
	mustCreateAccount(t, s, "user-1", types.RoleUser, "partner-1")

	subtree, err := s.Subtree(ctx, "sub-1")
	if err != nil {
		t.Fatalf("failed to get subtree: %v", err)
	}
	if len(subtree) != 3 {
		t.Errorf("expected 3 descendants, got %v", subtree)
	}

	subtree, err = s.Subtree(ctx, "partner-1")
	if err != nil {
		t.Fatalf("failed to get subtree: %v", err)
	}
	if len(subtree) != 1 || subtree[0] != "user-1" {
		t.Errorf("expected subtree [user-1], got %v", subtree)
	}
	for _, id := range subtree {
		if id == "partner-2" {
			t.Error("subtree leaked an account outside the child chain")
		}
	}

	ancestors, err := s.Ancestors(ctx, "user-1")
	if err != nil {
		t.Fatalf("failed to get ancestors: %v", err)
	}
	if len(ancestors) != 2 || ancestors[0].ID != "partner-1" || ancestors[1].ID != "sub-1" {
		got := make([]string, 0, len(ancestors))
		for _, a := range ancestors {
			got = append(got, a.ID)
		}
		t.Errorf("expected chain [partner-1 sub-1], got %v", got)
	}
}

func TestDuplicateAccountRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "partner-1", types.RolePartner, "")

	_, err := s.CreateAccount(ctx,
		&types.Account{ID: "partner-1", Role: types.RolePartner, Status: types.AccountActive},
		&types.Quota{AccountID: "partner-1"},
		nil,
	)
	if !errors.Is(err, types.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestDeleteReservationRemovesRowOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "user-1", types.RoleUser, "")

	shape := types.Shape{VPS: 1, CPU: 2, RAMGB: 4, StorageGB: 10}
	if err := s.ReserveQuota(ctx, "user-1", shape); err != nil {
		t.Fatalf("failed to reserve: %v", err)
	}
	if _, err := s.InsertResource(ctx, &types.OwnedResource{
		ID: "res-1", Kind: types.ResourceKindVPS,
		OwnerID: "user-1", CreatorID: "user-1",
		Shape: shape, State: types.ResourceProvisioning,
	}); err != nil {
		t.Fatalf("failed to insert resource: %v", err)
	}

	deleted, err := s.DeleteReservation(ctx, "res-1")
	if err != nil {
		t.Fatalf("failed to delete reservation: %v", err)
	}
	if deleted.Shape != shape {
		t.Errorf("expected the reserved shape back, got %+v", deleted.Shape)
	}
	if err := s.ReleaseQuota(ctx, "user-1", deleted.Shape); err != nil {
		t.Fatalf("failed to release: %v", err)
	}

	q, err := s.GetQuota(ctx, "user-1")
	if err != nil {
		t.Fatalf("failed to get quota: %v", err)
	}
	if !q.Used.IsZero() {
		t.Errorf("expected usage back at zero, got %+v", q.Used)
	}

	if _, err := s.GetResource(ctx, "res-1"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected reservation row gone, got %v", err)
	}
	// The second delete reports not-found so callers release at most once.
	if _, err := s.DeleteReservation(ctx, "res-1"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestResourceStateTransitions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "user-1", types.RoleUser, "")

	shape := types.Shape{VPS: 1, CPU: 2, RAMGB: 4, StorageGB: 10}
	if _, err := s.InsertResource(ctx, &types.OwnedResource{
		ID: "res-1", Kind: types.ResourceKindVPS,
		OwnerID: "user-1", CreatorID: "user-1",
		Shape: shape, State: types.ResourceProvisioning,
	}); err != nil {
		t.Fatalf("failed to insert resource: %v", err)
	}

	confirmed, err := s.ConfirmResource(ctx, "res-1", "hv-42")
	if err != nil {
		t.Fatalf("failed to confirm: %v", err)
	}
	if confirmed.State != types.ResourceRunning || confirmed.ExternalID != "hv-42" {
		t.Errorf("expected running resource with external ID, got %+v", confirmed)
	}

	// A confirmed resource is no longer a reservation.
	if _, err := s.DeleteReservation(ctx, "res-1"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting a running resource, got %v", err)
	}

	listed, err := s.ListResourcesByOwners(ctx, []string{"user-1"})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "res-1" {
		t.Errorf("expected [res-1], got %v", listed)
	}

	gone, err := s.MarkResourceDeleted(ctx, "res-1")
	if err != nil {
		t.Fatalf("failed to mark deleted: %v", err)
	}
	if gone.State != types.ResourceDeleted || gone.Shape != shape {
		t.Errorf("expected deleted resource carrying its shape, got %+v", gone)
	}
	if _, err := s.MarkResourceDeleted(ctx, "res-1"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeated teardown, got %v", err)
	}

	// Deleted resources drop out of listings and counts but keep their row.
	listed, err = s.ListResourcesByOwners(ctx, []string{"user-1"})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected no visible resources, got %v", listed)
	}
	count, err := s.CountActiveResources(ctx, []string{"user-1"})
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected zero active resources, got %d", count)
	}
	remains, err := s.GetResource(ctx, "res-1")
	if err != nil {
		t.Fatalf("failed to get resource: %v", err)
	}
	if remains.State != types.ResourceDeleted {
		t.Errorf("expected deleted state, got %s", remains.State)
	}
}

func TestRecomputeRepairsDrift(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateAccount(t, s, "user-1", types.RoleUser, "")

	shape := types.Shape{VPS: 1, CPU: 2, RAMGB: 4, StorageGB: 20}
	if _, err := s.InsertResource(ctx, &types.OwnedResource{
		ID: "res-1", Kind: types.ResourceKindVPS,
		OwnerID: "user-1", CreatorID: "user-1",
		Shape: shape, State: types.ResourceRunning,
	}); err != nil {
		t.Fatalf("failed to insert resource: %v", err)
	}

	// Usage counters drifted: the resource exists but nothing was charged.
	q, err := s.RecomputeQuota(ctx, "user-1")
	if err != nil {
		t.Fatalf("failed to recompute: %v", err)
	}
	if q.Used != shape {
		t.Errorf("expected recomputed usage %+v, got %+v", shape, q.Used)
	}
}
