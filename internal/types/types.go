// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is an account's position in the provisioning hierarchy.
// It is immutable after account creation.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleSubprovider Role = "subprovider"
	RolePartner     Role = "partner"
	RoleUser        Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSubprovider, RolePartner, RoleUser:
		return true
	}
	return false
}

type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
)

type Account struct {
	ID          string        `db:"id" json:"id"`
	Role        Role          `db:"role" json:"role"`
	DisplayName string        `db:"display_name" json:"display_name"`
	Status      AccountStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

// RelationKind types a parent->child hierarchy edge.
type RelationKind string

const (
	RelationSubproviderPartner RelationKind = "subprovider-partner"
	RelationPartnerClient      RelationKind = "partner-client"
)

type Edge struct {
	ID        string       `db:"id" json:"id"`
	ParentID  string       `db:"parent_id" json:"parent_id"`
	ChildID   string       `db:"child_id" json:"child_id"`
	Kind      RelationKind `db:"kind" json:"kind"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}

// Dimension is a quota resource dimension. DimensionOrder fixes the order in
// which Reserve reports the first dimension that would overflow.
type Dimension string

const (
	DimVPS     Dimension = "vps"
	DimCPU     Dimension = "cpu"
	DimRAM     Dimension = "ram"
	DimStorage Dimension = "storage"
)

var DimensionOrder = []Dimension{DimVPS, DimCPU, DimRAM, DimStorage}

// Shape is the size of a resource, or a delta applied to usage counters.
type Shape struct {
	VPS       int64 `db:"vps" json:"vps" validate:"min=0"`
	CPU       int64 `db:"cpu" json:"cpu" validate:"min=0"`
	RAMGB     int64 `db:"ram_gb" json:"ram_gb" validate:"min=0"`
	StorageGB int64 `db:"storage_gb" json:"storage_gb" validate:"min=0"`
}

func (s Shape) Get(d Dimension) int64 {
	switch d {
	case DimVPS:
		return s.VPS
	case DimCPU:
		return s.CPU
	case DimRAM:
		return s.RAMGB
	case DimStorage:
		return s.StorageGB
	}
	return 0
}

func (s Shape) Add(o Shape) Shape {
	return Shape{
		VPS:       s.VPS + o.VPS,
		CPU:       s.CPU + o.CPU,
		RAMGB:     s.RAMGB + o.RAMGB,
		StorageGB: s.StorageGB + o.StorageGB,
	}
}

func (s Shape) IsZero() bool {
	return s == Shape{}
}

type Quota struct {
	AccountID string    `db:"account_id" json:"account_id"`
	Max       Shape     `json:"max"`
	Used      Shape     `json:"used"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Exceeds returns the first dimension, in DimensionOrder, for which adding
// shape to the current usage would overflow the ceiling.
func (q *Quota) Exceeds(shape Shape) (Dimension, bool) {
	for _, d := range DimensionOrder {
		if q.Used.Get(d)+shape.Get(d) > q.Max.Get(d) {
			return d, true
		}
	}
	return "", false
}

type ResourceState string

const (
	ResourceProvisioning ResourceState = "provisioning"
	ResourceRunning      ResourceState = "running"
	ResourceStopped      ResourceState = "stopped"
	ResourceError        ResourceState = "error"
	ResourceDeleted      ResourceState = "deleted"
)

type ResourceKind string

const (
	ResourceKindVPS ResourceKind = "vps"
)

// OwnedResource ties a provisioned compute resource to the account that owns
// it and the account that created it. The two differ when a parent provisions
// on behalf of a child; quota is always charged to the owner.
type OwnedResource struct {
	ID         string        `db:"id" json:"id"`
	ExternalID string        `db:"external_id" json:"external_id,omitempty"`
	Kind       ResourceKind  `db:"kind" json:"kind"`
	OwnerID    string        `db:"owner_id" json:"owner_id"`
	CreatorID  string        `db:"creator_id" json:"creator_id"`
	Shape      Shape         `json:"shape"`
	State      ResourceState `db:"state" json:"state"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at" json:"updated_at"`
}
