package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/lifecycle"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

const tenantHeader = "X-Tenant-ID"

var (
	errInvalidTicketPayload = pkg.NewDomainErrorSimple("INVALID_TICKET_INPUT", "Invalid ticket payload", http.StatusBadRequest)
	errMissingTenant        = pkg.NewDomainErrorSimple("MISSING_TENANT", "Missing X-Tenant-ID header", http.StatusBadRequest)
)

// FieldTicketHandler handles HTTP requests for the change-order lifecycle.
//
// Authentication happens upstream; this service trusts the tenant header the
// gateway injects and scopes every operation to it.

type FieldTicketHandler struct {
	usecase usecase.IFieldTicketUseCase
	batch   usecase.IBatchSignUseCase
}

func NewFieldTicketHandler(uc usecase.IFieldTicketUseCase, batch usecase.IBatchSignUseCase) *FieldTicketHandler {
	return &FieldTicketHandler{usecase: uc, batch: batch}
}

func tenantFrom(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(tenantHeader))
}

// CreateTicket creates a draft ticket with a freshly allocated number.
func (h *FieldTicketHandler) CreateTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.CreateFieldTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(tenantID))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ticket][handler] created tenant=%s ticket=%s", tenantID, created.TicketNumber)

	c.JSON(http.StatusCreated, response.FromFieldTicket(created))
}

// GetTicket returns a single ticket by number.
func (h *FieldTicketHandler) GetTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	ticket, err := h.usecase.Get(c.Request.Context(), tenantID, c.Param("ticket_number"))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

// UpdateEntries replaces the billable entry lists of an editable ticket.
func (h *FieldTicketHandler) UpdateEntries(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.UpdateEntriesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateEntries(c.Request.Context(), tenantID, c.Param("ticket_number"), usecase.UpdateEntriesInput{
		LaborEntries:     payload.ToLaborEntries(),
		EquipmentEntries: payload.ToEquipmentEntries(),
		MaterialEntries:  payload.ToMaterialEntries(),
		MarkupRate:       payload.MarkupRate,
		Description:      payload.Description,
	})
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(updated))
}

// SubmitTicket moves a draft into pending_signature.
func (h *FieldTicketHandler) SubmitTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.SubmitForSignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.SubmitForSignature(c.Request.Context(), tenantID, c.Param("ticket_number"), payload.Actor)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

// SignTicket attaches the inspector signature to a pending ticket.
func (h *FieldTicketHandler) SignTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.SignTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.ApplySignature(c.Request.Context(), tenantID, c.Param("ticket_number"), payload.Signature.ToEntity())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

// BatchSignTickets signs every listed ticket atomically.
func (h *FieldTicketHandler) BatchSignTickets(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.BatchSignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	signed, err := h.batch.SignBatch(c.Request.Context(), tenantID, payload.TicketNumbers, payload.Signature.ToEntity())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ticket][handler] batch signed tenant=%s count=%d", tenantID, len(signed))

	c.JSON(http.StatusOK, response.FromFieldTickets(signed))
}

// ApproveTicket approves a signed ticket for billing.
func (h *FieldTicketHandler) ApproveTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.ApproveTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.Approve(c.Request.Context(), tenantID, c.Param("ticket_number"), payload.Actor, payload.Notes)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

// DisputeTicket opens a dispute on a non-terminal ticket.
func (h *FieldTicketHandler) DisputeTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.DisputeTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.Dispute(c.Request.Context(), tenantID, c.Param("ticket_number"), payload.Actor, payload.Reason, payload.Category, payload.ToEvidence())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

// ResolveTicketDispute closes a dispute and returns the ticket to signed.
func (h *FieldTicketHandler) ResolveTicketDispute(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.ResolveDispute(c.Request.Context(), tenantID, c.Param("ticket_number"), payload.Actor, payload.Resolution, payload.ToEvidence(), payload.ToReplacementSignature())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

// BillTicket marks an approved ticket as billed under an invoice reference.
func (h *FieldTicketHandler) BillTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.BillTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.Bill(c.Request.Context(), tenantID, c.Param("ticket_number"), payload.InvoiceRef)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

// VoidTicket voids a non-terminal ticket.
func (h *FieldTicketHandler) VoidTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.VoidTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.Void(c.Request.Context(), tenantID, c.Param("ticket_number"), payload.Actor, payload.Reason)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

// DeleteTicket soft-deletes a ticket. Elevated callers may delete past the
// draft stage.
func (h *FieldTicketHandler) DeleteTicket(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	var payload request.DeleteTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.SoftDelete(c.Request.Context(), tenantID, c.Param("ticket_number"), payload.Actor, payload.Reason, payload.Elevated)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFieldTicket(ticket))
}

func mapTicketError(err error) *pkg.AppError {
	var validationErr *entities.ValidationError
	if errors.As(err, &validationErr) {
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid ticket data", http.StatusBadRequest).
			WithDetails(map[string]interface{}{
				"field":  validationErr.Field,
				"reason": validationErr.Reason,
			})
	}

	var preErr *lifecycle.PreconditionError
	if errors.As(err, &preErr) {
		return pkg.NewDomainErrorSimple("INVALID_TICKET_STATE", "Ticket state does not allow this operation", http.StatusBadRequest).
			WithDetails(map[string]interface{}{
				"action":         preErr.Action,
				"current_status": string(preErr.Status),
			})
	}

	var conflict *usecase.BatchConflictError
	if errors.As(err, &conflict) {
		return pkg.NewDomainErrorSimple("BATCH_CONFLICT", "One or more tickets are not signable", http.StatusBadRequest).
			WithDetails(map[string]interface{}{
				"ticket_numbers": conflict.TicketNumbers,
			})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidTenant), errors.Is(err, usecase.ErrInvalidTicketNumber),
		errors.Is(err, usecase.ErrEmptyBatch), errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchNotValidated):
		return pkg.NewDomainErrorSimple("BATCH_CONFLICT", "Batch state changed during signing", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSequenceAllocation):
		return pkg.NewDomainError("SEQUENCE_ALLOCATION_FAILED", "Could not allocate a ticket number", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
