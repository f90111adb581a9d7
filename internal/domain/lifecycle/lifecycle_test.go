package lifecycle

import (
	"errors"
	"testing"
	"time"

	"fieldops/internal/domain/entities"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func draftTicket() entities.FieldTicket {
	return entities.FieldTicket{
		TenantID:     "t-1",
		TicketNumber: "FT-2026-00001",
		Status:       entities.TicketStatusDraft,
		Photos:       []entities.Photo{{ID: "p-1", URL: "https://cdn/p1.jpg", TakenAt: now}},
	}
}

func signature() entities.InspectorSignature {
	return entities.InspectorSignature{
		ImageData:  "data:image/png;base64,abc",
		SignerName: "Ins P. Ector",
		SignedAt:   now,
	}
}

func expectPrecondition(t *testing.T, err error, action string) {
	t.Helper()
	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}
	if pe.Action != action {
		t.Fatalf("expected action %q, got %q", action, pe.Action)
	}
}

func TestSubmitForSignature(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ticket := draftTicket()
		if err := SubmitForSignature(&ticket, "field-1", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.Status != entities.TicketStatusPendingSignature {
			t.Fatalf("expected pending_signature, got %s", ticket.Status)
		}
		if ticket.SubmittedAt == nil || ticket.SubmittedBy != "field-1" {
			t.Fatalf("submitted stamp missing: %+v", ticket)
		}
	})

	t.Run("no photos", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Photos = nil
		err := SubmitForSignature(&ticket, "field-1", now)
		expectPrecondition(t, err, "submit")
		if ticket.Status != entities.TicketStatusDraft {
			t.Fatalf("ticket must remain draft, got %s", ticket.Status)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusSigned
		expectPrecondition(t, SubmitForSignature(&ticket, "field-1", now), "submit")
	})
}

func TestApplySignature(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusPendingSignature
		if err := ApplySignature(&ticket, signature(), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.Status != entities.TicketStatusSigned || ticket.Signature == nil {
			t.Fatalf("expected signed with stored signature: %+v", ticket)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusPendingSignature
		err := ApplySignature(&ticket, entities.InspectorSignature{SignerName: "x"}, now)
		expectPrecondition(t, err, "sign")
		if ticket.Signature != nil {
			t.Fatalf("signature must not be stored on failure")
		}
	})

	t.Run("not pending", func(t *testing.T) {
		ticket := draftTicket()
		expectPrecondition(t, ApplySignature(&ticket, signature(), now), "sign")
	})
}

func TestApprove(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusSigned
		sig := signature()
		ticket.Signature = &sig
		if err := Approve(&ticket, "pm-1", "looks good", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.Status != entities.TicketStatusApproved || ticket.ApprovedBy != "pm-1" {
			t.Fatalf("approval stamp missing: %+v", ticket)
		}
	})

	t.Run("signed without stored signature", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusSigned
		err := Approve(&ticket, "pm-1", "", now)
		expectPrecondition(t, err, "approve")
		if ticket.Status != entities.TicketStatusSigned {
			t.Fatalf("ticket must remain signed, got %s", ticket.Status)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		ticket := draftTicket()
		expectPrecondition(t, Approve(&ticket, "pm-1", "", now), "approve")
	})
}

func TestDispute(t *testing.T) {
	evidence := []entities.DisputeEvidenceItem{{ID: "e-1", URL: "https://cdn/e1.pdf", Type: "document", AddedBy: "pm-1", AddedAt: now}}

	t.Run("from signed", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusSigned
		if err := Dispute(&ticket, "client-1", "hours overstated", "quantity", evidence, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.Status != entities.TicketStatusDisputed || !ticket.IsDisputed {
			t.Fatalf("expected disputed: %+v", ticket)
		}
		if len(ticket.DisputeEvidence) != 1 {
			t.Fatalf("evidence not appended")
		}
	})

	t.Run("missing reason", func(t *testing.T) {
		ticket := draftTicket()
		expectPrecondition(t, Dispute(&ticket, "client-1", "", "", nil, now), "dispute")
	})

	t.Run("terminal status", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusPaid
		expectPrecondition(t, Dispute(&ticket, "client-1", "late", "", nil, now), "dispute")
	})
}

func TestResolveDispute(t *testing.T) {
	t.Run("appends evidence and returns to signed", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusDisputed
		ticket.IsDisputed = true
		ticket.DisputeEvidence = []entities.DisputeEvidenceItem{{ID: "e-1"}}

		extra := []entities.DisputeEvidenceItem{{ID: "e-2"}}
		if err := ResolveDispute(&ticket, "pm-1", "rate corrected", extra, nil, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.Status != entities.TicketStatusSigned {
			t.Fatalf("expected signed, got %s", ticket.Status)
		}
		if len(ticket.DisputeEvidence) != 2 {
			t.Fatalf("existing evidence must be retained, got %d items", len(ticket.DisputeEvidence))
		}
		if ticket.IsDisputed {
			t.Fatalf("resolved ticket must not report an open dispute")
		}
	})

	t.Run("replacement signature stored", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusDisputed
		old := signature()
		ticket.Signature = &old

		replacement := signature()
		replacement.SignerName = "New Inspector"
		if err := ResolveDispute(&ticket, "pm-1", "re-signed on site", nil, &replacement, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.Signature.SignerName != "New Inspector" {
			t.Fatalf("replacement signature not stored")
		}
	})

	t.Run("not disputed", func(t *testing.T) {
		ticket := draftTicket()
		err := ResolveDispute(&ticket, "pm-1", "n/a", nil, nil, now)
		expectPrecondition(t, err, "resolve dispute")
		if ticket.Status != entities.TicketStatusDraft {
			t.Fatalf("ticket must remain draft, got %s", ticket.Status)
		}
	})
}

func TestBillAndMarkPaid(t *testing.T) {
	ticket := draftTicket()
	ticket.Status = entities.TicketStatusApproved

	if err := Bill(&ticket, "INV-88", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Status != entities.TicketStatusBilled || ticket.InvoiceRef != "INV-88" {
		t.Fatalf("billing stamp missing: %+v", ticket)
	}

	if err := MarkPaid(&ticket, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Status != entities.TicketStatusPaid || ticket.PaidAt == nil {
		t.Fatalf("paid stamp missing: %+v", ticket)
	}

	expectPrecondition(t, Bill(&ticket, "INV-89", now), "bill")
}

func TestVoid(t *testing.T) {
	ticket := draftTicket()
	if err := Void(&ticket, "admin-1", "duplicate entry", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Status != entities.TicketStatusVoided {
		t.Fatalf("expected voided, got %s", ticket.Status)
	}
	expectPrecondition(t, Void(&ticket, "admin-1", "again", now), "void")
}

func TestSoftDelete(t *testing.T) {
	t.Run("draft by field actor", func(t *testing.T) {
		ticket := draftTicket()
		if err := SoftDelete(&ticket, "field-1", "created by mistake", false, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ticket.IsDeleted || ticket.DeleteReason == "" {
			t.Fatalf("delete metadata missing: %+v", ticket)
		}
	})

	t.Run("non-draft requires elevation", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusSigned
		expectPrecondition(t, SoftDelete(&ticket, "field-1", "x", false, now), "delete")

		if err := SoftDelete(&ticket, "admin-1", "compliance purge", true, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("terminal even when elevated", func(t *testing.T) {
		ticket := draftTicket()
		ticket.Status = entities.TicketStatusPaid
		expectPrecondition(t, SoftDelete(&ticket, "admin-1", "x", true, now), "delete")
	})
}

func TestEnsureEditable(t *testing.T) {
	ticket := draftTicket()
	if err := EnsureEditable(&ticket); err != nil {
		t.Fatalf("draft must be editable: %v", err)
	}
	ticket.Status = entities.TicketStatusPendingSignature
	if err := EnsureEditable(&ticket); err != nil {
		t.Fatalf("pending_signature must be editable: %v", err)
	}
	ticket.Status = entities.TicketStatusSigned
	expectPrecondition(t, EnsureEditable(&ticket), "update")
}
