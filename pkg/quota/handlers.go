// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

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
	mux.Get("/api/v0/accounts/{id}/quota", a.getQuota)
	mux.Put("/api/v0/accounts/{id}/quota", a.setCeilings)
	mux.Post("/api/v0/accounts/{id}/quota/recompute", a.recompute)
}

type SetCeilingsRequest struct {
	MaxVPS       int64 `json:"max_vps" validate:"min=0"`
	MaxCPU       int64 `json:"max_cpu" validate:"min=0"`
	MaxRAMGB     int64 `json:"max_ram_gb" validate:"min=0"`
	MaxStorageGB int64 `json:"max_storage_gb" validate:"min=0"`
}

func (a *API) getQuota(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	quota, err := a.service.GetQuota(r.Context(), requesterID, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, quota)
}

func (a *API) setCeilings(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req SetCeilingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	max := types.Shape{
		VPS:       req.MaxVPS,
		CPU:       req.MaxCPU,
		RAMGB:     req.MaxRAMGB,
		StorageGB: req.MaxStorageGB,
	}

	quota, err := a.service.SetCeilings(r.Context(), requesterID, chi.URLParam(r, "id"), max)
	if err != nil {
		a.logger.Debugf("set ceilings failed: %v", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, quota)
}

func (a *API) recompute(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	quota, err := a.service.Recompute(r.Context(), requesterID, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, quota)
}
