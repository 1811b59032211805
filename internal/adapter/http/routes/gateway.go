package routes

import (
	"gatewaysim/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPreferences = "/preferences"
	PathCheckout    = "/checkout"
	PathPayments    = "/payments"
	PathPix         = "/pix"
	PathPlans       = "/preapproval_plan"
	PathPreapproval = "/preapproval"
	PathRecurring   = "/recurring"
	PathRules       = "/rules"
	PathWebhooks    = "/webhooks"
	PathWebhookLogs = "/webhook-logs"
	PathSimulate    = "/simulate"
)

func addGatewayRoutes(
	rg *gin.RouterGroup,
	paymentHandler *handlers.PaymentHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	ruleHandler *handlers.RuleHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	rg.POST(PathPreferences, paymentHandler.CreatePreference)

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/:id/process", paymentHandler.ProcessCheckout)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("/:id/capture", paymentHandler.CapturePayment)
		payments.POST("/:id/cancel", paymentHandler.CancelPayment)
		payments.POST("/:id/refund", paymentHandler.RefundPayment)
	}

	pix := rg.Group(PathPix)
	{
		pix.POST("/:id/confirm", paymentHandler.ConfirmPix)
	}

	plans := rg.Group(PathPlans)
	{
		plans.POST("", subscriptionHandler.CreatePlan)
		plans.GET("", subscriptionHandler.ListPlans)
		plans.GET("/:id", subscriptionHandler.GetPlan)
	}

	preapproval := rg.Group(PathPreapproval)
	{
		preapproval.POST("", subscriptionHandler.CreateSubscription)
		preapproval.GET("", subscriptionHandler.SearchSubscriptions)
		preapproval.GET("/:id", subscriptionHandler.GetSubscription)
		preapproval.PUT("/:id", subscriptionHandler.UpdateSubscription)
		preapproval.POST("/:id/pay", subscriptionHandler.GeneratePayment)
		preapproval.POST("/:id/pause", subscriptionHandler.PauseSubscription)
		preapproval.POST("/:id/reactivate", subscriptionHandler.ReactivateSubscription)
	}

	recurring := rg.Group(PathRecurring)
	{
		recurring.GET("/search", subscriptionHandler.SearchSubscriptions)
		recurring.POST("/charge", subscriptionHandler.ChargeRecurring)
	}

	rules := rg.Group(PathRules)
	{
		rules.POST("", ruleHandler.CreateRule)
		rules.GET("", ruleHandler.ListRules)
		rules.DELETE("/:id", ruleHandler.DeleteRule)
	}
	rg.POST(PathSimulate, ruleHandler.SimulatePayment)

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("", webhookHandler.RegisterWebhook)
		webhooks.GET("", webhookHandler.ListWebhooks)
		webhooks.DELETE("/:id", webhookHandler.DeleteWebhook)
	}
	rg.GET(PathWebhookLogs, webhookHandler.ListWebhookLogs)
}
