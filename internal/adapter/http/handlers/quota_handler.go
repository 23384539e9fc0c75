package handlers

import (
	"errors"
	"net/http"

	response "upvc_marketplace/internal/adapter/http/dto/response"
	"upvc_marketplace/internal/usecase"
	"upvc_marketplace/internal/usecase/interfaces"
	"upvc_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

// QuotaHandler exposes the free-quota ledger reads.

type QuotaHandler struct {
	usecase usecase.IQuotaUseCase
}

func NewQuotaHandler(uc usecase.IQuotaUseCase) *QuotaHandler {
	return &QuotaHandler{usecase: uc}
}

// GetSellerQuota applies any due monthly reset, then reports the remaining
// allowance and the next reset date.
func (h *QuotaHandler) GetSellerQuota(c *gin.Context) {
	quota, err := h.usecase.GetSellerQuota(c.Request.Context(), c.Param("seller_id"))
	if err != nil {
		appErr := mapQuotaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSellerQuota(quota))
}

// CheckLeadQuota reports whether free quota was already applied by the
// seller to the lead.
func (h *QuotaHandler) CheckLeadQuota(c *gin.Context) {
	used, err := h.usecase.QuotaUsedForLead(c.Request.Context(), c.Param("seller_id"), c.Param("lead_id"))
	if err != nil {
		appErr := mapQuotaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuotaCheckResponse{AlreadyUsed: used})
}

func mapQuotaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSellerID), errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSellerNotFound):
		return pkg.NewDomainErrorSimple("SELLER_NOT_FOUND", "Seller not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("TRANSIENT_CONFLICT", "Seller was updated concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
