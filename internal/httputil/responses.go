// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package httputil maps ledger errors onto the JSON error envelope shared by
// every API package.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stratusline/ledger-service/internal/types"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Dimension string `json:"dimension,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError renders a ledger error with its HTTP status. Unrecognized errors
// become opaque 500s so storage details never leak to callers.
func WriteError(w http.ResponseWriter, err error) {
	if qe, ok := types.IsQuotaExceeded(err); ok {
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:     "quota exceeded",
			Dimension: string(qe.Dimension),
		})
		return
	}

	var status int
	switch {
	case errors.Is(err, types.ErrEmptyShape):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrReferenceNotFound), errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrAlreadyExists), errors.Is(err, types.ErrChildAlreadyLinked),
		errors.Is(err, types.ErrSubtreeNotEmpty):
		status = http.StatusConflict
	case errors.Is(err, types.ErrForbidden), errors.Is(err, types.ErrInvalidRoleTransition):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrBelowCurrentUsage):
		status = http.StatusUnprocessableEntity
	default:
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	WriteJSON(w, status, ErrorResponse{Error: err.Error()})
}
