// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package visibility

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/stratusline/ledger-service/internal/httputil"
	"github.com/stratusline/ledger-service/internal/identity"
	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/resources", a.listResources)
}

func (a *API) listResources(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := identity.RequesterID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	resources, err := a.service.VisibleResources(r.Context(), requesterID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if resources == nil {
		resources = []*types.OwnedResource{}
	}

	httputil.WriteJSON(w, http.StatusOK, resources)
}
