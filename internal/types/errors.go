// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

// Terminal, caller-visible errors. None of these are retried internally.
var (
	ErrInvalidRoleTransition = errors.New("invalid role transition")
	ErrChildAlreadyLinked    = errors.New("child already has a parent")
	ErrReferenceNotFound     = errors.New("referenced account not found")
	ErrSubtreeNotEmpty       = errors.New("subtree still owns resources")
	ErrBelowCurrentUsage     = errors.New("ceiling below current usage")
	ErrEmptyShape            = errors.New("resource shape is empty")
	ErrForbidden             = errors.New("forbidden")
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotFound              = errors.New("not found")
)

// QuotaExceededError names the first dimension, in DimensionOrder, that
// would overflow. The presentation layer renders the dimension to the user.
type QuotaExceededError struct {
	Dimension Dimension
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: %s", e.Dimension)
}

// IsQuotaExceeded unwraps a QuotaExceededError if err carries one.
func IsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
