// Package lifecycle implements the field-ticket state machine:
//
//	draft -> pending_signature -> signed -> approved -> billed -> paid
//
// with a dispute side loop (any non-terminal -> disputed -> signed) and a
// voided terminal state. Guards are asymmetric: a signature must be stored
// before approval, and only disputed tickets may be resolved. All functions
// mutate the ticket in place and perform no I/O.
package lifecycle

import (
	"fmt"
	"time"

	"fieldops/internal/domain/entities"
)

// PreconditionError reports a transition attempted from the wrong state. It
// carries the current status and the action so callers can surface both.
type PreconditionError struct {
	Action string
	Status entities.TicketStatus
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot %s ticket in status %q: %s", e.Action, e.Status, e.Reason)
}

func precondition(action string, status entities.TicketStatus, reason string) error {
	return &PreconditionError{Action: action, Status: status, Reason: reason}
}

// SubmitForSignature moves a draft ticket to pending_signature. At least one
// photo must be attached.
func SubmitForSignature(t *entities.FieldTicket, actor string, now time.Time) error {
	if t.IsDeleted {
		return precondition("submit", t.Status, "ticket is deleted")
	}
	if t.Status != entities.TicketStatusDraft {
		return precondition("submit", t.Status, "only draft tickets can be submitted")
	}
	if len(t.Photos) == 0 {
		return precondition("submit", t.Status, "at least one photo is required")
	}
	t.Status = entities.TicketStatusPendingSignature
	t.SubmittedAt = &now
	t.SubmittedBy = actor
	t.UpdatedAt = now
	return nil
}

// ApplySignature stores the inspector signature and moves the ticket from
// pending_signature to signed.
func ApplySignature(t *entities.FieldTicket, sig entities.InspectorSignature, now time.Time) error {
	if t.IsDeleted {
		return precondition("sign", t.Status, "ticket is deleted")
	}
	if t.Status != entities.TicketStatusPendingSignature {
		return precondition("sign", t.Status, "ticket is not awaiting signature")
	}
	if sig.ImageData == "" {
		return precondition("sign", t.Status, "signature payload is required")
	}
	if sig.SignedAt.IsZero() {
		sig.SignedAt = now
	}
	t.Signature = &sig
	t.Status = entities.TicketStatusSigned
	t.UpdatedAt = now
	return nil
}

// Approve moves a signed ticket to approved. The stored signature is the
// guard; a signed status without a signature (possible after a pre-signature
// dispute resolution) does not pass.
func Approve(t *entities.FieldTicket, actor, notes string, now time.Time) error {
	if t.IsDeleted {
		return precondition("approve", t.Status, "ticket is deleted")
	}
	if t.Status != entities.TicketStatusSigned {
		return precondition("approve", t.Status, "only signed tickets can be approved")
	}
	if t.Signature == nil {
		return precondition("approve", t.Status, "no inspector signature is stored")
	}
	t.Status = entities.TicketStatusApproved
	t.ApprovedAt = &now
	t.ApprovedBy = actor
	t.ApprovalNotes = notes
	t.UpdatedAt = now
	return nil
}

// Dispute moves any non-terminal ticket to disputed. Evidence is appended to
// the existing list, never replacing it.
func Dispute(t *entities.FieldTicket, actor, reason, category string, evidence []entities.DisputeEvidenceItem, now time.Time) error {
	if t.IsDeleted {
		return precondition("dispute", t.Status, "ticket is deleted")
	}
	if t.Status.Terminal() {
		return precondition("dispute", t.Status, "ticket is in a terminal status")
	}
	if t.Status == entities.TicketStatusDisputed {
		return precondition("dispute", t.Status, "ticket is already disputed")
	}
	if reason == "" {
		return precondition("dispute", t.Status, "dispute reason is required")
	}
	t.Status = entities.TicketStatusDisputed
	t.IsDisputed = true
	t.DisputedAt = &now
	t.DisputedBy = actor
	t.DisputeReason = reason
	t.DisputeCategory = category
	t.DisputeEvidence = append(t.DisputeEvidence, evidence...)
	t.UpdatedAt = now
	return nil
}

// ResolveDispute returns a disputed ticket to signed. New evidence is
// appended; the replacement signature, when supplied, is the only path that
// may overwrite a stored signature.
func ResolveDispute(t *entities.FieldTicket, actor, resolution string, evidence []entities.DisputeEvidenceItem, replacement *entities.InspectorSignature, now time.Time) error {
	if t.Status != entities.TicketStatusDisputed {
		return precondition("resolve dispute", t.Status, "ticket is not disputed")
	}
	if resolution == "" {
		return precondition("resolve dispute", t.Status, "resolution is required")
	}
	if replacement != nil {
		if replacement.ImageData == "" {
			return precondition("resolve dispute", t.Status, "replacement signature payload is empty")
		}
		if replacement.SignedAt.IsZero() {
			replacement.SignedAt = now
		}
		t.Signature = replacement
	}
	t.Status = entities.TicketStatusSigned
	t.IsDisputed = false
	t.Resolution = resolution
	t.ResolvedAt = &now
	t.ResolvedBy = actor
	t.DisputeEvidence = append(t.DisputeEvidence, evidence...)
	t.UpdatedAt = now
	return nil
}

// Bill stamps an approved ticket as invoiced.
func Bill(t *entities.FieldTicket, invoiceRef string, now time.Time) error {
	if t.IsDeleted {
		return precondition("bill", t.Status, "ticket is deleted")
	}
	if t.Status != entities.TicketStatusApproved {
		return precondition("bill", t.Status, "only approved tickets can be billed")
	}
	t.Status = entities.TicketStatusBilled
	t.BilledAt = &now
	t.InvoiceRef = invoiceRef
	t.UpdatedAt = now
	return nil
}

// MarkPaid moves a billed ticket to paid after a successful payment.
func MarkPaid(t *entities.FieldTicket, now time.Time) error {
	if t.Status != entities.TicketStatusBilled {
		return precondition("mark paid", t.Status, "only billed tickets can be paid")
	}
	t.Status = entities.TicketStatusPaid
	t.PaidAt = &now
	t.UpdatedAt = now
	return nil
}

// Void cancels any non-terminal ticket.
func Void(t *entities.FieldTicket, actor, reason string, now time.Time) error {
	if t.IsDeleted {
		return precondition("void", t.Status, "ticket is deleted")
	}
	if t.Status.Terminal() {
		return precondition("void", t.Status, "ticket is in a terminal status")
	}
	if reason == "" {
		return precondition("void", t.Status, "void reason is required")
	}
	t.Status = entities.TicketStatusVoided
	t.VoidedAt = &now
	t.VoidedBy = actor
	t.VoidReason = reason
	t.UpdatedAt = now
	return nil
}

// SoftDelete flags the ticket as deleted while retaining the document for
// audit. Field actors may only delete drafts; elevated callers may delete
// any non-terminal ticket.
func SoftDelete(t *entities.FieldTicket, actor, reason string, elevated bool, now time.Time) error {
	if t.IsDeleted {
		return precondition("delete", t.Status, "ticket is already deleted")
	}
	if t.Status != entities.TicketStatusDraft && !elevated {
		return precondition("delete", t.Status, "only draft tickets can be deleted")
	}
	if elevated && t.Status.Terminal() {
		return precondition("delete", t.Status, "ticket is in a terminal status")
	}
	t.IsDeleted = true
	t.DeletedAt = &now
	t.DeletedBy = actor
	t.DeleteReason = reason
	t.UpdatedAt = now
	return nil
}

// EnsureEditable guards entry/markup mutations: allowed only while the
// ticket is draft or pending_signature.
func EnsureEditable(t *entities.FieldTicket) error {
	if t.IsDeleted {
		return precondition("update", t.Status, "ticket is deleted")
	}
	if !t.Status.Editable() {
		return precondition("update", t.Status, "entries are frozen after signature")
	}
	return nil
}
