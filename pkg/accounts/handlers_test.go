// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

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

func TestAPI_CreateAccount(t *testing.T) {
	requesterID := "sub-1"
	created := &types.Account{ID: "partner-1", Role: types.RolePartner, DisplayName: "Acme Hosting", Status: types.AccountActive}

	tests := []struct {
		name           string
		requesterID    string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validateResp   func(*testing.T, *http.Response)
	}{
		{
			name:        "success",
			requesterID: requesterID,
			requestBody: CreateAccountRequest{Role: "partner", DisplayName: "Acme Hosting"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateChildAccount(gomock.Any(), requesterID, types.RolePartner, "Acme Hosting").
					Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result types.Account
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.ID != created.ID {
					t.Errorf("expected account %s, got %s", created.ID, result.ID)
				}
			},
		},
		{
			name:           "missing requester identity",
			requestBody:    CreateAccountRequest{Role: "partner", DisplayName: "Acme Hosting"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid request body",
			requesterID:    requesterID,
			requestBody:    "not-json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown role fails validation",
			requesterID:    requesterID,
			requestBody:    CreateAccountRequest{Role: "reseller", DisplayName: "Acme Hosting"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "invalid role transition maps to forbidden",
			requesterID: requesterID,
			requestBody: CreateAccountRequest{Role: "user", DisplayName: "End User"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateChildAccount(gomock.Any(), requesterID, types.RoleUser, "End User").
					Return(nil, types.ErrInvalidRoleTransition)
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

			req := httptest.NewRequest(http.MethodPost, "/api/v0/accounts", bytes.NewReader(body))
			if tt.requesterID != "" {
				req = req.WithContext(identity.WithRequesterID(req.Context(), tt.requesterID))
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			resp := rr.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, resp.StatusCode)
			}
			if tt.validateResp != nil {
				tt.validateResp(t, resp)
			}
		})
	}
}

func TestAPI_GetAccount(t *testing.T) {
	requesterID := "sub-1"
	account := &types.Account{ID: "partner-1", Role: types.RolePartner, DisplayName: "Acme Hosting", Status: types.AccountActive}

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{name: "not found", serviceErr: types.ErrReferenceNotFound, expectedStatus: http.StatusNotFound},
		{name: "forbidden", serviceErr: types.ErrForbidden, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if tt.serviceErr != nil {
				mockService.EXPECT().GetAccount(gomock.Any(), requesterID, account.ID).Return(nil, tt.serviceErr)
			} else {
				mockService.EXPECT().GetAccount(gomock.Any(), requesterID, account.ID).Return(account, nil)
			}

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/accounts/"+account.ID, nil)
			req = req.WithContext(identity.WithRequesterID(req.Context(), requesterID))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestAPI_ListChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListChildren(gomock.Any(), "sub-1", "sub-1").Return(nil, nil)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/accounts/sub-1/children", nil)
	req = req.WithContext(identity.WithRequesterID(req.Context(), "sub-1"))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	// A childless account yields an empty list, not null.
	var children []*types.Account
	if err := json.NewDecoder(rr.Body).Decode(&children); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if children == nil {
		t.Error("expected empty array, got null")
	}
}

func TestAPI_DeleteAccount(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{name: "success", expectedStatus: http.StatusNoContent},
		{name: "subtree not empty", serviceErr: types.ErrSubtreeNotEmpty, expectedStatus: http.StatusConflict, expectedError: types.ErrSubtreeNotEmpty.Error()},
		{name: "not found", serviceErr: types.ErrReferenceNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockService.EXPECT().DeleteAccount(gomock.Any(), "admin-1", "sub-1").Return(tt.serviceErr)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/accounts/sub-1", nil)
			req = req.WithContext(identity.WithRequesterID(req.Context(), "admin-1"))

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.expectedError != "" {
				var errResp httputil.ErrorResponse
				if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if errResp.Error != tt.expectedError {
					t.Errorf("expected error %q, got %q", tt.expectedError, errResp.Error)
				}
			}
		})
	}
}

func TestAPI_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().SetAccountStatus(gomock.Any(), "sub-1", "partner-1", types.AccountSuspended).Return(nil)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	body, _ := json.Marshal(SetStatusRequest{Status: "suspended"})
	req := httptest.NewRequest(http.MethodPut, "/api/v0/accounts/partner-1/status", bytes.NewReader(body))
	req = req.WithContext(identity.WithRequesterID(req.Context(), "sub-1"))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}
