package routes

import (
	"fieldops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTickets   = "/tickets"
	PathDashboard = "/dashboard"
	PathPayments  = "/payments"
)

func addTicketRoutes(rg *gin.RouterGroup, ticketHandler *handlers.FieldTicketHandler, riskHandler *handlers.RiskHandler, paymentHandler *handlers.TicketPaymentHandler) {
	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", ticketHandler.CreateTicket)
		// batch-sign is registered before the :ticket_number routes on
		// purpose; gin resolves static segments first either way, but the
		// grouping keeps the collection-level operations together.
		tickets.POST("/batch-sign", ticketHandler.BatchSignTickets)

		tickets.GET("/:ticket_number", ticketHandler.GetTicket)
		tickets.PUT("/:ticket_number", ticketHandler.UpdateEntries)
		tickets.POST("/:ticket_number/submit", ticketHandler.SubmitTicket)
		tickets.POST("/:ticket_number/sign", ticketHandler.SignTicket)
		tickets.POST("/:ticket_number/approve", ticketHandler.ApproveTicket)
		tickets.POST("/:ticket_number/dispute", ticketHandler.DisputeTicket)
		tickets.POST("/:ticket_number/resolve-dispute", ticketHandler.ResolveTicketDispute)
		tickets.POST("/:ticket_number/bill", ticketHandler.BillTicket)
		tickets.POST("/:ticket_number/void", ticketHandler.VoidTicket)
		tickets.DELETE("/:ticket_number", ticketHandler.DeleteTicket)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/at-risk", riskHandler.GetAtRiskSummary)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:ticket_number", paymentHandler.CreatePaymentByTicketNumber)
		payments.GET("/:ticket_number", paymentHandler.GetPaymentByTicketNumber)
	}
}
