package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"upvc_marketplace/internal/adapter/http/handlers/mocks"
	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func postPurchase(t *testing.T, h *PurchaseHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/v1/leads/purchase", h.PurchaseLead)

	req := httptest.NewRequest(http.MethodPost, "/v1/leads/purchase", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPurchaseHandler_PurchaseLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPurchaseHandler(mocks.NewMockIPurchaseUseCase(ctrl))

		w := postPurchase(t, h, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPurchaseHandler(mocks.NewMockIPurchaseUseCase(ctrl))

		w := postPurchase(t, h, `{"lead_id":"l-1","seller_id":"s-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("settlement returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		uc.EXPECT().Purchase(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.PurchaseCommand) (usecase.Settlement, error) {
				if cmd.LeadID != "l-1" || cmd.SellerID != "s-1" || cmd.SlotsToBuy != 1 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.UseFreeQuota || cmd.FreeSqftToUse != 30 {
					t.Fatalf("unexpected quota fields: %+v", cmd)
				}
				return usecase.Settlement{
					Lead:            entities.Lead{ID: "l-1", Status: entities.LeadStatusInProgress},
					ActualPricePaid: decimal.NewFromInt(735),
					FreeSqftUsed:    30,
					PaidSqft:        70,
					PricePerSqft:    decimal.NewFromFloat(10.50),
				}, nil
			})

		w := postPurchase(t, h, `{"lead_id":"l-1","seller_id":"s-1","slots_to_buy":1,"use_free_quota":true,"free_sqft_to_use":30}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["actual_price_paid"].(float64) != 735 || resp["free_sqft_used"].(float64) != 30 {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"lead not found", usecase.ErrLeadNotFound, http.StatusNotFound},
			{"seller not found", usecase.ErrSellerNotFound, http.StatusNotFound},
			{"seller not eligible", usecase.ErrSellerNotEligible, http.StatusForbidden},
			{"insufficient slots", usecase.ErrInsufficientSlots, http.StatusBadRequest},
			{"duplicate purchase", usecase.ErrDuplicatePurchase, http.StatusBadRequest},
			{"brand limit", usecase.ErrBrandLimitReached, http.StatusBadRequest},
			{"insufficient quota", usecase.ErrInsufficientQuota, http.StatusBadRequest},
			{"quota already used", entities.ErrQuotaAlreadyUsed, http.StatusConflict},
			{"purchase conflict", usecase.ErrPurchaseConflict, http.StatusConflict},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIPurchaseUseCase(ctrl)
				h := NewPurchaseHandler(uc)

				uc.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(usecase.Settlement{}, tc.err)

				w := postPurchase(t, h, `{"lead_id":"l-1","seller_id":"s-1","slots_to_buy":1}`)
				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
			})
		}
	})
}
