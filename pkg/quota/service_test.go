// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/monitoring"
	"github.com/stratusline/ledger-service/internal/tracing"
	"github.com/stratusline/ledger-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package quota -destination ./mock_quota.go -source=./interfaces.go

func newTestService(storage StorageInterface) *Service {
	return NewService(
		storage,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("ledger"),
		logging.NewNoopLogger(),
	)
}

func TestService_GetQuota(t *testing.T) {
	admin := &types.Account{ID: "admin-1", Role: types.RoleAdmin, Status: types.AccountActive}
	partner := &types.Account{ID: "partner-1", Role: types.RolePartner, Status: types.AccountActive}
	user := &types.Account{ID: "user-1", Role: types.RoleUser, Status: types.AccountActive}
	quota := &types.Quota{
		AccountID: user.ID,
		Max:       types.DefaultCeilings(types.RoleUser),
		Used:      types.Shape{VPS: 2, CPU: 8, RAMGB: 16, StorageGB: 200},
	}

	testCases := []struct {
		name        string
		requester   *types.Account
		ancestors   []*types.Account
		expectedErr error
	}{
		{name: "self access", requester: user},
		{name: "admin access", requester: admin},
		{name: "ancestor access", requester: partner, ancestors: []*types.Account{partner}},
		{
			name:        "error - unrelated account",
			requester:   &types.Account{ID: "partner-2", Role: types.RolePartner},
			ancestors:   []*types.Account{partner},
			expectedErr: types.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetAccount(gomock.Any(), tc.requester.ID).Return(tc.requester, nil)
			if tc.ancestors != nil {
				mockStorage.EXPECT().Ancestors(gomock.Any(), user.ID).Return(tc.ancestors, nil)
			}
			if tc.expectedErr == nil {
				mockStorage.EXPECT().GetQuota(gomock.Any(), user.ID).Return(quota, nil)
			}

			s := newTestService(mockStorage)

			got, err := s.GetQuota(context.Background(), tc.requester.ID, user.ID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Used != quota.Used {
				t.Errorf("expected usage %+v, got %+v", quota.Used, got.Used)
			}
		})
	}
}

func TestService_SetCeilings(t *testing.T) {
	admin := &types.Account{ID: "admin-1", Role: types.RoleAdmin, Status: types.AccountActive}
	partner := &types.Account{ID: "partner-1", Role: types.RolePartner, Status: types.AccountActive}
	newMax := types.Shape{VPS: 50, CPU: 200, RAMGB: 400, StorageGB: 5000}

	testCases := []struct {
		name        string
		requester   *types.Account
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:      "admin raises ceilings",
			requester: admin,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetQuotaCeilings(gomock.Any(), "user-1", newMax).
					Return(&types.Quota{AccountID: "user-1", Max: newMax}, nil)
			},
		},
		{
			name:        "error - non-admin requester",
			requester:   partner,
			expectedErr: types.ErrForbidden,
		},
		{
			name:      "error - ceiling below current usage",
			requester: admin,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetQuotaCeilings(gomock.Any(), "user-1", newMax).
					Return(nil, types.ErrBelowCurrentUsage)
			},
			expectedErr: types.ErrBelowCurrentUsage,
		},
		{
			name:      "error - unknown account",
			requester: admin,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetQuotaCeilings(gomock.Any(), "user-1", newMax).
					Return(nil, types.ErrReferenceNotFound)
			},
			expectedErr: types.ErrReferenceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetAccount(gomock.Any(), tc.requester.ID).Return(tc.requester, nil)
			if tc.setupMocks != nil {
				tc.setupMocks(mockStorage)
			}

			s := newTestService(mockStorage)

			quota, err := s.SetCeilings(context.Background(), tc.requester.ID, "user-1", newMax)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if quota.Max != newMax {
				t.Errorf("expected ceilings %+v, got %+v", newMax, quota.Max)
			}
		})
	}
}

func TestService_Recompute(t *testing.T) {
	admin := &types.Account{ID: "admin-1", Role: types.RoleAdmin, Status: types.AccountActive}
	subprovider := &types.Account{ID: "sub-1", Role: types.RoleSubprovider, Status: types.AccountActive}

	t.Run("admin repairs drifted counters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repaired := &types.Quota{AccountID: "user-1", Used: types.Shape{VPS: 1, CPU: 4, RAMGB: 8, StorageGB: 100}}

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetAccount(gomock.Any(), admin.ID).Return(admin, nil)
		mockStorage.EXPECT().RecomputeQuota(gomock.Any(), "user-1").Return(repaired, nil)

		s := newTestService(mockStorage)

		quota, err := s.Recompute(context.Background(), admin.ID, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quota.Used != repaired.Used {
			t.Errorf("expected usage %+v, got %+v", repaired.Used, quota.Used)
		}
	})

	t.Run("error - non-admin requester", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetAccount(gomock.Any(), subprovider.ID).Return(subprovider, nil)

		s := newTestService(mockStorage)

		if _, err := s.Recompute(context.Background(), subprovider.ID, "user-1"); !errors.Is(err, types.ErrForbidden) {
			t.Errorf("expected %v, got %v", types.ErrForbidden, err)
		}
	})
}
