// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

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

func TestAPI_GetQuota(t *testing.T) {
	quota := &types.Quota{
		AccountID: "user-1",
		Max:       types.DefaultCeilings(types.RoleUser),
		Used:      types.Shape{VPS: 2, CPU: 8, RAMGB: 16, StorageGB: 200},
	}

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{name: "forbidden", serviceErr: types.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "not found", serviceErr: types.ErrReferenceNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if tt.serviceErr != nil {
				mockService.EXPECT().GetQuota(gomock.Any(), "user-1", "user-1").Return(nil, tt.serviceErr)
			} else {
				mockService.EXPECT().GetQuota(gomock.Any(), "user-1", "user-1").Return(quota, nil)
			}

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/accounts/user-1/quota", nil)
			req = req.WithContext(identity.WithRequesterID(req.Context(), "user-1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.serviceErr == nil {
				var result types.Quota
				if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Used != quota.Used {
					t.Errorf("expected usage %+v, got %+v", quota.Used, result.Used)
				}
			}
		})
	}
}

func TestAPI_SetCeilings(t *testing.T) {
	newMax := types.Shape{VPS: 50, CPU: 200, RAMGB: 400, StorageGB: 5000}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: SetCeilingsRequest{MaxVPS: 50, MaxCPU: 200, MaxRAMGB: 400, MaxStorageGB: 5000},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().SetCeilings(gomock.Any(), "admin-1", "user-1", newMax).
					Return(&types.Quota{AccountID: "user-1", Max: newMax}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative ceiling fails validation",
			requestBody:    SetCeilingsRequest{MaxVPS: -1, MaxCPU: 200, MaxRAMGB: 400, MaxStorageGB: 5000},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "below current usage",
			requestBody: SetCeilingsRequest{MaxVPS: 50, MaxCPU: 200, MaxRAMGB: 400, MaxStorageGB: 5000},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().SetCeilings(gomock.Any(), "admin-1", "user-1", newMax).
					Return(nil, types.ErrBelowCurrentUsage)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:        "forbidden for non-admin",
			requestBody: SetCeilingsRequest{MaxVPS: 50, MaxCPU: 200, MaxRAMGB: 400, MaxStorageGB: 5000},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().SetCeilings(gomock.Any(), "admin-1", "user-1", newMax).
					Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
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

			req := httptest.NewRequest(http.MethodPut, "/api/v0/accounts/user-1/quota", bytes.NewReader(body))
			req = req.WithContext(identity.WithRequesterID(req.Context(), "admin-1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.expectedStatus == http.StatusUnprocessableEntity {
				var errResp httputil.ErrorResponse
				if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if errResp.Error != types.ErrBelowCurrentUsage.Error() {
					t.Errorf("expected error %q, got %q", types.ErrBelowCurrentUsage.Error(), errResp.Error)
				}
			}
		})
	}
}

func TestAPI_Recompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repaired := &types.Quota{AccountID: "user-1", Used: types.Shape{VPS: 1, CPU: 4, RAMGB: 8, StorageGB: 100}}

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Recompute(gomock.Any(), "admin-1", "user-1").Return(repaired, nil)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/accounts/user-1/quota/recompute", nil)
	req = req.WithContext(identity.WithRequesterID(req.Context(), "admin-1"))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}
