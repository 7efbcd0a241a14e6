// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

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
	mux.Post("/api/v0/accounts", a.createAccount)
	mux.Get("/api/v0/accounts/{id}", a.getAccount)
	mux.Get("/api/v0/accounts/{id}/children", a.listChildren)
	mux.Put("/api/v0/accounts/{id}/status", a.setStatus)
	mux.Delete("/api/v0/accounts/{id}", a.deleteAccount)
}

type CreateAccountRequest struct {
	Role        string `json:"role" validate:"required,oneof=subprovider partner user"`
	DisplayName string `json:"display_name" validate:"required,max=128"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

func (a *API) createAccount(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := a.service.CreateChildAccount(r.Context(), requesterID, types.Role(req.Role), req.DisplayName)
	if err != nil {
		a.logger.Debugf("create account failed: %v", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, account)
}

func (a *API) getAccount(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	account, err := a.service.GetAccount(r.Context(), requesterID, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, account)
}

func (a *API) listChildren(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	children, err := a.service.ListChildren(r.Context(), requesterID, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if children == nil {
		children = []*types.Account{}
	}

	httputil.WriteJSON(w, http.StatusOK, children)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.service.SetAccountStatus(r.Context(), requesterID, chi.URLParam(r, "id"), types.AccountStatus(req.Status)); err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) deleteAccount(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := a.service.DeleteAccount(r.Context(), requesterID, chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
