package handlers

import (
	"errors"
	"net/http"

	request "upvc_marketplace/internal/adapter/http/dto/request"
	response "upvc_marketplace/internal/adapter/http/dto/response"
	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/usecase"
	"upvc_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errInvalidPurchasePayload = pkg.NewDomainErrorSimple("INVALID_PURCHASE_INPUT", "Invalid purchase payload", http.StatusBadRequest)

// PurchaseHandler handles slot purchase settlements.

type PurchaseHandler struct {
	usecase usecase.IPurchaseUseCase
}

func NewPurchaseHandler(uc usecase.IPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{usecase: uc}
}

func (h *PurchaseHandler) PurchaseLead(c *gin.Context) {
	var payload request.PurchaseLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchasePayload.HTTPStatus, errInvalidPurchasePayload.ToHTTPError())
		return
	}

	settlement, err := h.usecase.Purchase(c.Request.Context(), usecase.PurchaseCommand{
		LeadID:          payload.LeadID,
		SellerID:        payload.SellerID,
		SlotsToBuy:      payload.SlotsToBuy,
		UseFreeQuota:    payload.UseFreeQuota,
		FreeSqftToUse:   payload.FreeSqftToUse,
		NegotiatedPrice: decimal.NewFromFloat(payload.Price),
	})
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettlement(settlement))
}

func mapPurchaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPurchase):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSellerNotFound):
		return pkg.NewDomainErrorSimple("SELLER_NOT_FOUND", "Seller not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSellerNotEligible):
		return pkg.NewDomainErrorSimple("SELLER_NOT_ELIGIBLE", "Seller is not approved or not active", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInsufficientSlots):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_SLOTS", "No available slots left for this lead", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicatePurchase):
		return pkg.NewDomainErrorSimple("DUPLICATE_PURCHASE", "You can only purchase this lead once", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBrandLimitReached):
		return pkg.NewDomainErrorSimple("BRAND_LIMIT_REACHED", "Your brand in this city is already registered by 2 other fabricators", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientQuota):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_QUOTA", "Not enough free quota remaining", http.StatusBadRequest)
	case errors.Is(err, entities.ErrQuotaAlreadyUsed):
		return pkg.NewDomainErrorSimple("QUOTA_ALREADY_USED", "Free quota was already used for this lead", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseConflict):
		return pkg.NewDomainErrorSimple("TRANSIENT_CONFLICT", "Purchase conflicted with a concurrent update, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
