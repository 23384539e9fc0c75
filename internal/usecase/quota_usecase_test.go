package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/usecase/interfaces"
	mock_interfaces "upvc_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotaUseCase_GetSellerQuota(t *testing.T) {
	t.Run("blank seller id", func(t *testing.T) {
		uc := NewQuotaUseCase(nil)
		_, err := uc.GetSellerQuota(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSellerID) {
			t.Fatalf("expected ErrInvalidSellerID, got %v", err)
		}
	})

	t.Run("seller not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewQuotaUseCase(sellers)

		sellers.EXPECT().GetByID(gomock.Any(), "seller-1").Return(entities.Seller{}, nil)

		_, err := uc.GetSellerQuota(context.Background(), "seller-1")
		if !errors.Is(err, ErrSellerNotFound) {
			t.Fatalf("expected ErrSellerNotFound, got %v", err)
		}
	})

	t.Run("returns current quota without reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewQuotaUseCase(sellers)

		nextReset := time.Now().UTC().AddDate(0, 0, 10)
		sellers.EXPECT().GetByID(gomock.Any(), "seller-1").Return(entities.Seller{
			ID: "seller-1",
			FreeQuota: entities.FreeQuota{
				CurrentMonthQuota: 320,
				UsedQuota:         180,
				NextResetDate:     nextReset,
			},
		}, nil)

		quota, err := uc.GetSellerQuota(context.Background(), "seller-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quota.RemainingQuota != 320 || quota.UsedQuota != 180 {
			t.Fatalf("unexpected quota: %+v", quota)
		}
		if !quota.NextReset.Equal(nextReset) {
			t.Fatalf("unexpected next reset: %v", quota.NextReset)
		}
	})

	t.Run("lapsed cycle resets and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewQuotaUseCase(sellers)

		sellers.EXPECT().GetByID(gomock.Any(), "seller-1").Return(entities.Seller{
			ID: "seller-1",
			FreeQuota: entities.FreeQuota{
				CurrentMonthQuota: 15,
				UsedQuota:         485,
				NextResetDate:     time.Now().UTC().AddDate(0, 0, -1),
			},
		}, nil)
		sellers.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Seller) (entities.Seller, error) {
				if s.FreeQuota.CurrentMonthQuota != entities.MonthlyFreeQuotaSqft {
					t.Fatalf("expected reset quota persisted, got %v", s.FreeQuota.CurrentMonthQuota)
				}
				return s, nil
			})

		quota, err := uc.GetSellerQuota(context.Background(), "seller-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quota.RemainingQuota != entities.MonthlyFreeQuotaSqft || quota.UsedQuota != 0 {
			t.Fatalf("unexpected quota after reset: %+v", quota)
		}
	})

	t.Run("retries reset persist on conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewQuotaUseCase(sellers)

		lapsed := entities.Seller{
			ID: "seller-1",
			FreeQuota: entities.FreeQuota{
				NextResetDate: time.Now().UTC().AddDate(0, 0, -1),
			},
		}
		fresh := entities.Seller{
			ID: "seller-1",
			FreeQuota: entities.FreeQuota{
				CurrentMonthQuota: entities.MonthlyFreeQuotaSqft,
				NextResetDate:     time.Now().UTC().AddDate(0, 1, 0),
			},
			Version: 2,
		}

		gomock.InOrder(
			sellers.EXPECT().GetByID(gomock.Any(), "seller-1").Return(lapsed, nil),
			sellers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Seller{}, interfaces.ErrVersionConflict),
			sellers.EXPECT().GetByID(gomock.Any(), "seller-1").Return(fresh, nil),
		)

		quota, err := uc.GetSellerQuota(context.Background(), "seller-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quota.RemainingQuota != entities.MonthlyFreeQuotaSqft {
			t.Fatalf("unexpected quota: %+v", quota)
		}
	})
}

func TestQuotaUseCase_QuotaUsedForLead(t *testing.T) {
	t.Run("blank lead id", func(t *testing.T) {
		uc := NewQuotaUseCase(nil)
		_, err := uc.QuotaUsedForLead(context.Background(), "seller-1", " ")
		if !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("reports ledger membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewQuotaUseCase(sellers)

		seller := entities.Seller{
			ID:         "seller-1",
			QuotaUsage: []entities.QuotaUsageEntry{{LeadID: "lead-1", SqftUsed: 40}},
		}
		sellers.EXPECT().GetByID(gomock.Any(), "seller-1").Return(seller, nil).Times(2)

		used, err := uc.QuotaUsedForLead(context.Background(), "seller-1", "lead-1")
		if err != nil || !used {
			t.Fatalf("expected used=true, got %v / %v", used, err)
		}
		used, err = uc.QuotaUsedForLead(context.Background(), "seller-1", "lead-2")
		if err != nil || used {
			t.Fatalf("expected used=false, got %v / %v", used, err)
		}
	})
}

func TestQuotaUseCase_ResetDueSellers(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("resets every due seller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewQuotaUseCase(sellers)

		due := []entities.Seller{
			{ID: "s-1", FreeQuota: entities.FreeQuota{NextResetDate: now.AddDate(0, 0, -2)}},
			{ID: "s-2", FreeQuota: entities.FreeQuota{NextResetDate: now.AddDate(0, 0, -1)}},
		}
		sellers.EXPECT().ListQuotaResetDue(gomock.Any(), now).Return(due, nil)
		sellers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Seller{}, nil).Times(2)

		count, err := uc.ResetDueSellers(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Fatalf("expected 2 resets, got %d", count)
		}
	})

	t.Run("skips conflicted sellers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewQuotaUseCase(sellers)

		due := []entities.Seller{
			{ID: "s-1", FreeQuota: entities.FreeQuota{NextResetDate: now.AddDate(0, 0, -2)}},
			{ID: "s-2", FreeQuota: entities.FreeQuota{NextResetDate: now.AddDate(0, 0, -1)}},
		}
		sellers.EXPECT().ListQuotaResetDue(gomock.Any(), now).Return(due, nil)
		gomock.InOrder(
			sellers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Seller{}, interfaces.ErrVersionConflict),
			sellers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Seller{}, nil),
		)

		count, err := uc.ResetDueSellers(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected 1 reset, got %d", count)
		}
	})

	t.Run("list error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sellers := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewQuotaUseCase(sellers)

		sellers.EXPECT().ListQuotaResetDue(gomock.Any(), now).Return(nil, errors.New("db"))

		_, err := uc.ResetDueSellers(context.Background(), now)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
