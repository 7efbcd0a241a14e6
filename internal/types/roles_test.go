// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
)

func TestAllowedRelation(t *testing.T) {
	testCases := []struct {
		name         string
		parent       Role
		child        Role
		expectedKind RelationKind
		allowed      bool
	}{
		{"subprovider to partner", RoleSubprovider, RolePartner, RelationSubproviderPartner, true},
		{"partner to user", RolePartner, RoleUser, RelationPartnerClient, true},
		{"reversed partner client", RoleUser, RolePartner, "", false},
		{"reversed subprovider partner", RolePartner, RoleSubprovider, "", false},
		{"subprovider to user skips a tier", RoleSubprovider, RoleUser, "", false},
		{"admin has no typed edge", RoleAdmin, RoleSubprovider, "", false},
		{"self link", RolePartner, RolePartner, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, ok := AllowedRelation(tc.parent, tc.child)
			if ok != tc.allowed {
				t.Fatalf("AllowedRelation(%s, %s) allowed = %v, want %v", tc.parent, tc.child, ok, tc.allowed)
			}
			if kind != tc.expectedKind {
				t.Errorf("AllowedRelation(%s, %s) kind = %q, want %q", tc.parent, tc.child, kind, tc.expectedKind)
			}
		})
	}
}

func TestDefaultCeilingsStrictlyDecreasing(t *testing.T) {
	order := []Role{RoleAdmin, RoleSubprovider, RolePartner, RoleUser}

	for i := 1; i < len(order); i++ {
		higher := DefaultCeilings(order[i-1])
		lower := DefaultCeilings(order[i])
		for _, d := range DimensionOrder {
			if lower.Get(d) >= higher.Get(d) {
				t.Errorf("default %s ceiling for %s (%d) not below %s (%d)",
					d, order[i], lower.Get(d), order[i-1], higher.Get(d))
			}
		}
	}
}

func TestQuotaExceedsReportsFirstDimensionInOrder(t *testing.T) {
	q := &Quota{
		Max:  Shape{VPS: 10, CPU: 10, RAMGB: 10, StorageGB: 10},
		Used: Shape{VPS: 10, CPU: 10, RAMGB: 0, StorageGB: 10},
	}

	// vps, cpu and storage all overflow; vps must be reported.
	dim, exceeded := q.Exceeds(Shape{VPS: 1, CPU: 1, RAMGB: 1, StorageGB: 1})
	if !exceeded {
		t.Fatal("expected quota to be exceeded")
	}
	if dim != DimVPS {
		t.Errorf("expected first overflowing dimension vps, got %s", dim)
	}

	// ram alone has headroom.
	if _, exceeded := q.Exceeds(Shape{RAMGB: 10}); exceeded {
		t.Error("expected ram-only shape to fit")
	}
}
