// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provision

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/stratusline/ledger-service/internal/httputil"
	"github.com/stratusline/ledger-service/internal/identity"
	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/types"
)

func TestAPI_RequestProvision(t *testing.T) {
	shape := types.Shape{VPS: 1, CPU: 4, RAMGB: 8, StorageGB: 100}
	reserved := &types.OwnedResource{
		ID: "res-1", Kind: types.ResourceKindVPS, OwnerID: "user-1", CreatorID: "partner-1",
		Shape: shape, State: types.ResourceProvisioning,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validateResp   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success",
			requestBody: ProvisionRequest{OwnerID: "user-1", Kind: "vps", VPS: 1, CPU: 4, RAMGB: 8, StorageGB: 100},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().RequestProvision(gomock.Any(), "partner-1", "user-1", types.ResourceKindVPS, shape).
					Return(reserved, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var result types.OwnedResource
				if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.State != types.ResourceProvisioning {
					t.Errorf("expected provisioning state, got %s", result.State)
				}
			},
		},
		{
			name:        "quota exceeded names the dimension",
			requestBody: ProvisionRequest{OwnerID: "user-1", Kind: "vps", VPS: 1, CPU: 4, RAMGB: 8, StorageGB: 100},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().RequestProvision(gomock.Any(), "partner-1", "user-1", types.ResourceKindVPS, shape).
					Return(nil, &types.QuotaExceededError{Dimension: types.DimRAM})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateResp: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var errResp httputil.ErrorResponse
				if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if errResp.Dimension != string(types.DimRAM) {
					t.Errorf("expected dimension %s, got %s", types.DimRAM, errResp.Dimension)
				}
			},
		},
		{
			name:        "forbidden requester",
			requestBody: ProvisionRequest{OwnerID: "user-1", Kind: "vps", VPS: 1, CPU: 4, RAMGB: 8, StorageGB: 100},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().RequestProvision(gomock.Any(), "partner-1", "user-1", types.ResourceKindVPS, shape).
					Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing owner fails validation",
			requestBody:    ProvisionRequest{Kind: "vps", VPS: 1},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown kind fails validation",
			requestBody:    ProvisionRequest{OwnerID: "user-1", Kind: "gpu", VPS: 1},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero-instance shape fails validation",
			requestBody:    ProvisionRequest{OwnerID: "user-1", Kind: "vps", CPU: 4, RAMGB: 8},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/provisions", bytes.NewReader(body))
			req = req.WithContext(identity.WithRequesterID(req.Context(), "partner-1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.validateResp != nil {
				tt.validateResp(t, rr)
			}
		})
	}
}

func TestAPI_ConfirmProvision(t *testing.T) {
	running := &types.OwnedResource{
		ID: "res-1", ExternalID: "vm-8842", OwnerID: "user-1", CreatorID: "user-1",
		State: types.ResourceRunning,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: ConfirmRequest{ExternalID: "vm-8842"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ConfirmProvision(gomock.Any(), "user-1", "res-1", "vm-8842").Return(running, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing external id fails validation",
			requestBody:    ConfirmRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown reservation",
			requestBody: ConfirmRequest{ExternalID: "vm-8842"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ConfirmProvision(gomock.Any(), "user-1", "res-1", "vm-8842").
					Return(nil, types.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			body, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("failed to marshal request: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/provisions/res-1/confirm", bytes.NewReader(body))
			req = req.WithContext(identity.WithRequesterID(req.Context(), "user-1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_RollbackProvision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().RollbackProvision(gomock.Any(), "user-1", "res-1").Return(nil)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/provisions/res-1/rollback", nil)
	req = req.WithContext(identity.WithRequesterID(req.Context(), "user-1"))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}

func TestAPI_TeardownResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().TeardownResource(gomock.Any(), "user-1", "res-1").Return(nil)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/resources/res-1", nil)
	req = req.WithContext(identity.WithRequesterID(req.Context(), "user-1"))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}
