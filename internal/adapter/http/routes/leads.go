package routes

import (
	"mbg_outreach/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads      = "/leads"
	PathAutomation = "/automation"
	PathWebhook    = "/webhook"
)

func addLeadRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.GET("", leadHandler.ListLeads)
		// Static segments first so they are not captured by :id.
		leads.GET("/stats", leadHandler.GetStats)
		leads.GET("/duplicates", leadHandler.GetDuplicates)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PUT("/:id", leadHandler.UpdateLead)
	}
}

func addAutomationRoutes(rg *gin.RouterGroup, automationHandler *handlers.AutomationHandler) {
	automation := rg.Group(PathAutomation)
	{
		automation.POST("/run", automationHandler.RunWorkflow)
		automation.GET("/status", automationHandler.GetStatus)
		automation.POST("/generate-message/:id", automationHandler.GenerateMessage)
		automation.POST("/send/:id", automationHandler.SendMessage)
		automation.POST("/scan-contact/:id", automationHandler.ScanContact)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	rg.GET(PathWebhook, webhookHandler.Verify)
	rg.POST(PathWebhook, webhookHandler.Receive)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", handlers.Health)
	rg.GET("/ping", handlers.Ping)
}
