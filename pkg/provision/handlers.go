// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provision

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stratusline/ledger-service/internal/httputil"
	"github.com/stratusline/ledger-service/internal/identity"
	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/provisions", a.requestProvision)
	mux.Post("/api/v0/provisions/{id}/confirm", a.confirmProvision)
	mux.Post("/api/v0/provisions/{id}/rollback", a.rollbackProvision)
	mux.Delete("/api/v0/resources/{id}", a.teardownResource)
}

type ProvisionRequest struct {
	OwnerID   string `json:"owner_id" validate:"required"`
	Kind      string `json:"kind" validate:"required,oneof=vps"`
	VPS       int64  `json:"vps" validate:"min=1"`
	CPU       int64  `json:"cpu" validate:"min=0"`
	RAMGB     int64  `json:"ram_gb" validate:"min=0"`
	StorageGB int64  `json:"storage_gb" validate:"min=0"`
}

type ConfirmRequest struct {
	ExternalID string `json:"external_id" validate:"required,max=256"`
}

func (a *API) requestProvision(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req ProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	shape := types.Shape{
		VPS:       req.VPS,
		CPU:       req.CPU,
		RAMGB:     req.RAMGB,
		StorageGB: req.StorageGB,
	}

	resource, err := a.service.RequestProvision(r.Context(), requesterID, req.OwnerID, types.ResourceKind(req.Kind), shape)
	if err != nil {
		a.logger.Debugf("provision request failed: %v", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, resource)
}

func (a *API) confirmProvision(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource, err := a.service.ConfirmProvision(r.Context(), requesterID, chi.URLParam(r, "id"), req.ExternalID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, resource)
}

func (a *API) rollbackProvision(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := a.service.RollbackProvision(r.Context(), requesterID, chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) teardownResource(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := a.service.TeardownResource(r.Context(), requesterID, chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
