package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

// TicketPaymentHandler handles HTTP requests for billing payments on field
// tickets.

type TicketPaymentHandler struct {
	usecase usecase.ITicketPaymentUseCase
}

func NewTicketPaymentHandler(uc usecase.ITicketPaymentUseCase) *TicketPaymentHandler {
	return &TicketPaymentHandler{usecase: uc}
}

// CreatePaymentByTicketNumber charges a billed ticket and records the
// approved payment.
func (h *TicketPaymentHandler) CreatePaymentByTicketNumber(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	ticketNumber := c.Param("ticket_number")
	log.Printf("[payment][handler] create start tenant=%s ticket=%s", tenantID, ticketNumber)

	payload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload ticket=%s err=%v", ticketNumber, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), tenantID, ticketNumber, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed ticket=%s err=%v", ticketNumber, err)
		appErr := mapTicketPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success ticket=%s payment_id=%s status=%s", ticketNumber, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromTicketPayment(created))
}

// GetPaymentByTicketNumber returns the latest payment for a ticket.
func (h *TicketPaymentHandler) GetPaymentByTicketNumber(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	ticketNumber := c.Param("ticket_number")

	payments, err := h.usecase.ListByTicketNumber(c.Request.Context(), tenantID, ticketNumber)
	if err != nil {
		appErr := mapTicketPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromTicketPayment(latest))
}

// readProviderPayload accepts either a bare provider payload or the
// {"provider_payload": {...}} envelope.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.TicketPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.ProviderPayload) > 0 {
		trimmed := strings.TrimSpace(string(envelope.ProviderPayload))
		if trimmed == "" || trimmed == "null" {
			return nil, errors.New("provider_payload cannot be empty")
		}
		return envelope.ProviderPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapTicketPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrInvalidTicketNumber), errors.Is(err, usecase.ErrInvalidTenant):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTicketNotBilled):
		return pkg.NewDomainErrorSimple("TICKET_NOT_BILLED", "Ticket is not billed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_FAILED", "Payment provider rejected the charge", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
