package routes

import (
	"upvc_marketplace/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads   = "/leads"
	PathSellers = "/sellers"
)

func addLeadRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler, purchaseHandler *handlers.PurchaseHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.POST("/calculate-price", leadHandler.CalculatePrice)
		leads.POST("/purchase", purchaseHandler.PurchaseLead)
		leads.PUT("/status", leadHandler.UpdateLeadStatus)
		leads.GET("/:id", leadHandler.GetLead)
	}
}

func addSellerRoutes(rg *gin.RouterGroup, quotaHandler *handlers.QuotaHandler) {
	sellers := rg.Group(PathSellers)
	{
		sellers.GET("/:seller_id/quota", quotaHandler.GetSellerQuota)
		sellers.GET("/:seller_id/quota-check/:lead_id", quotaHandler.CheckLeadQuota)
	}
}
