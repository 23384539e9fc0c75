package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"upvc_marketplace/internal/adapter/http/handlers/mocks"
	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/domain/pricing"
	"upvc_marketplace/internal/usecase"
	"upvc_marketplace/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"buyer_id":"b-1","category_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("buyer not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().CreateLead(gomock.Any(), gomock.Any()).Return(entities.Lead{}, usecase.ErrBuyerNotFound)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		body := `{"buyer_id":"b-1","category_id":"c-1","quotes":[{"product_id":"p-1","height":10,"width":5,"quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created lead returned with 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().CreateLead(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateLeadCommand) (entities.Lead, error) {
				if cmd.BuyerID != "b-1" || len(cmd.Quotes) != 1 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.Quotes[0].IsGenerated {
					t.Fatal("quotes must default to generated")
				}
				return entities.Lead{
					ID:               "lead-1",
					BuyerID:          cmd.BuyerID,
					TotalSqft:        50,
					MaxSlots:         6,
					AvailableSlots:   6,
					DynamicSlotPrice: decimal.NewFromInt(525),
					Status:           entities.LeadStatusNew,
				}, nil
			})

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		body := `{"buyer_id":"b-1","category_id":"c-1","quotes":[{"product_id":"p-1","height":10,"width":5,"quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "lead-1" || resp["status"] != "new" {
			t.Fatalf("unexpected response: %v", resp)
		}
		if resp["dynamic_slot_price"].(float64) != 525 {
			t.Fatalf("unexpected slot price: %v", resp["dynamic_slot_price"])
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		r := gin.New()
		r.GET("/v1/leads/:id", h.GetLead)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Status: entities.LeadStatusNew}, nil)

		r := gin.New()
		r.GET("/v1/leads/:id", h.GetLead)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLeadHandler_ListLeads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().List(gomock.Any(), interfaces.LeadFilter{
			Status:  entities.LeadStatusInProgress,
			BuyerID: "b-1",
			Page:    2,
			Limit:   10,
		}).Return([]entities.Lead{{ID: "lead-1"}}, 11, nil)

		r := gin.New()
		r.GET("/v1/leads", h.ListLeads)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads?status=active&buyer_id=b-1&page=2&limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["total"].(float64) != 11 || resp["count"].(float64) != 1 {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("unknown status filter is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().List(gomock.Any(), interfaces.LeadFilter{Page: 1, Limit: 100}).Return(nil, 0, nil)

		r := gin.New()
		r.GET("/v1/leads", h.ListLeads)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads?status=garbage", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLeadHandler_UpdateLeadStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", "new").Return(entities.Lead{}, entities.ErrInvalidTransition)

		r := gin.New()
		r.PUT("/v1/leads/status", h.UpdateLeadStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/leads/status", bytes.NewBufferString(`{"lead_id":"lead-1","status":"new"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("version conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", "closed").Return(entities.Lead{}, interfaces.ErrVersionConflict)

		r := gin.New()
		r.PUT("/v1/leads/status", h.UpdateLeadStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/leads/status", bytes.NewBufferString(`{"lead_id":"lead-1","status":"closed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("updated lead returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", "sold").
			Return(entities.Lead{ID: "lead-1", Status: entities.LeadStatusClosed}, nil)

		r := gin.New()
		r.PUT("/v1/leads/status", h.UpdateLeadStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/leads/status", bytes.NewBufferString(`{"lead_id":"lead-1","status":"sold"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "closed" {
			t.Fatalf("expected closed, got %v", resp["status"])
		}
	})
}

func TestLeadHandler_CalculatePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("prices quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).Return(pricing.Result{
			TotalSqft:        50,
			TotalQuantity:    1,
			MaxSlots:         6,
			DynamicSlotPrice: decimal.NewFromInt(525),
		}, nil)

		r := gin.New()
		r.POST("/v1/leads/calculate-price", h.CalculatePrice)

		body := `{"quotes":[{"product_id":"p-1","height":10,"width":5,"quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/calculate-price", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["max_slots"].(float64) != 6 || resp["dynamic_slot_price"].(float64) != 525 {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).Return(pricing.Result{}, errors.New("boom"))

		r := gin.New()
		r.POST("/v1/leads/calculate-price", h.CalculatePrice)

		body := `{"quotes":[{"product_id":"p-1","height":10,"width":5,"quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads/calculate-price", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
