package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "upvc_marketplace/internal/adapter/http/dto/request"
	response "upvc_marketplace/internal/adapter/http/dto/response"
	"upvc_marketplace/internal/domain/entities"
	"upvc_marketplace/internal/usecase"
	"upvc_marketplace/internal/usecase/interfaces"
	"upvc_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler handles HTTP requests for the lead lifecycle: creation,
// reads, the explicit status transition and the pricing utility.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead prices the submitted quotes and opens the lead in "new"
// status, returning it with all computed fields.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.CreateLead(c.Request.Context(), usecase.CreateLeadCommand{
		BuyerID:     payload.BuyerID,
		CategoryID:  payload.CategoryID,
		Quotes:      payload.ToQuoteItems(),
		ContactInfo: payload.ToContactInfo(),
		ProjectInfo: payload.ToProjectInfo(),
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// ListLeads filters by status (synonyms accepted), buyer, seller and
// category. An unrecognized status filter is ignored rather than failing
// the listing.
func (h *LeadHandler) ListLeads(c *gin.Context) {
	filter := interfaces.LeadFilter{
		BuyerID:    c.Query("buyer_id"),
		SellerID:   c.Query("seller_id"),
		CategoryID: c.Query("category_id"),
	}
	if raw := c.Query("status"); raw != "" {
		if status, err := entities.ParseStatus(raw); err == nil {
			filter.Status = status
		}
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	leads, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 100
	}
	c.JSON(http.StatusOK, response.FromLeadList(leads, total, page, limit))
}

func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), payload.LeadID, payload.Status)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) CalculatePrice(c *gin.Context) {
	var payload request.CalculatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CalculatePrice(c.Request.Context(), payload.ToQuoteItems())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingResult(result))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidBuyerID),
		errors.Is(err, usecase.ErrInvalidCategoryID),
		errors.Is(err, usecase.ErrInvalidQuotes):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid lead status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Lead status cannot move that way", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBuyerNotFound):
		return pkg.NewDomainErrorSimple("BUYER_NOT_FOUND", "Buyer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("TRANSIENT_CONFLICT", "Lead was updated concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
