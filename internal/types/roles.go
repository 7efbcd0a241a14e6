// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// roleTransitions is the single source of truth for which (parent, child)
// role pairs may be linked by a hierarchy edge.
var roleTransitions = map[Role]map[Role]RelationKind{
	RoleSubprovider: {RolePartner: RelationSubproviderPartner},
	RolePartner:     {RoleUser: RelationPartnerClient},
}

// AllowedRelation returns the relation kind linking a parent role to a child
// role, or false if the hierarchy does not permit the pair.
func AllowedRelation(parent, child Role) (RelationKind, bool) {
	kind, ok := roleTransitions[parent][child]
	return kind, ok
}

// TopLevel reports whether accounts of this role live at the root of the
// forest, without a parent edge.
func (r Role) TopLevel() bool {
	return r == RoleAdmin || r == RoleSubprovider
}

// roleDefaults seeds new quotas. Ceilings are strictly decreasing down the
// hierarchy; the admin ceiling is high enough to be unbounded in practice.
var roleDefaults = map[Role]Shape{
	RoleAdmin:       {VPS: 1_000_000, CPU: 4_000_000, RAMGB: 8_000_000, StorageGB: 100_000_000},
	RoleSubprovider: {VPS: 5_000, CPU: 20_000, RAMGB: 40_000, StorageGB: 500_000},
	RolePartner:     {VPS: 500, CPU: 2_000, RAMGB: 4_000, StorageGB: 50_000},
	RoleUser:        {VPS: 20, CPU: 80, RAMGB: 160, StorageGB: 2_000},
}

// DefaultCeilings returns the fixed quota ceiling table entry for a role.
func DefaultCeilings(role Role) Shape {
	return roleDefaults[role]
}
