package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldops/internal/domain/billing"
	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/lifecycle"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTenant       = errors.New("invalid tenant id")
	ErrInvalidTicketNumber = errors.New("invalid ticket number")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrSequenceAllocation  = errors.New("ticket number allocation failed")
)

// createAttempts bounds the internal retry on a ticket-number collision. The
// counter is atomic, so a collision only happens if someone wrote a ticket
// with a hand-picked number.
const createAttempts = 3

// FormatTicketNumber renders the stable external ticket number contract:
// FT-<4-digit year>-<5-digit zero-padded sequence>.
func FormatTicketNumber(year int, seq int64) string {
	return fmt.Sprintf("FT-%04d-%05d", year, seq)
}

// UpdateEntriesInput is the replace-all edit applied to a ticket while it is
// still editable. Totals inside the entries are ignored and recomputed.
type UpdateEntriesInput struct {
	LaborEntries     []entities.LaborEntry
	EquipmentEntries []entities.EquipmentEntry
	MaterialEntries  []entities.MaterialEntry
	MarkupRate       float64
	Description      string
}

// IFieldTicketUseCase exposes the change-order lifecycle operations.
type IFieldTicketUseCase interface {
	Create(ctx context.Context, t entities.FieldTicket) (entities.FieldTicket, error)
	Get(ctx context.Context, tenantID, ticketNumber string) (entities.FieldTicket, error)
	UpdateEntries(ctx context.Context, tenantID, ticketNumber string, in UpdateEntriesInput) (entities.FieldTicket, error)
	SubmitForSignature(ctx context.Context, tenantID, ticketNumber, actor string) (entities.FieldTicket, error)
	ApplySignature(ctx context.Context, tenantID, ticketNumber string, sig entities.InspectorSignature) (entities.FieldTicket, error)
	Approve(ctx context.Context, tenantID, ticketNumber, actor, notes string) (entities.FieldTicket, error)
	Dispute(ctx context.Context, tenantID, ticketNumber, actor, reason, category string, evidence []entities.DisputeEvidenceItem) (entities.FieldTicket, error)
	ResolveDispute(ctx context.Context, tenantID, ticketNumber, actor, resolution string, evidence []entities.DisputeEvidenceItem, replacement *entities.InspectorSignature) (entities.FieldTicket, error)
	Bill(ctx context.Context, tenantID, ticketNumber, invoiceRef string) (entities.FieldTicket, error)
	Void(ctx context.Context, tenantID, ticketNumber, actor, reason string) (entities.FieldTicket, error)
	SoftDelete(ctx context.Context, tenantID, ticketNumber, actor, reason string, elevated bool) (entities.FieldTicket, error)
}

type FieldTicketUseCase struct {
	repo      interfaces.IFieldTicketRepository
	sequences interfaces.ITicketSequenceRepository
	jobs      interfaces.IJobRepository
	notifier  interfaces.ITicketNotifier
}

var _ IFieldTicketUseCase = (*FieldTicketUseCase)(nil)

func NewFieldTicketUseCase(
	repo interfaces.IFieldTicketRepository,
	sequences interfaces.ITicketSequenceRepository,
	jobs interfaces.IJobRepository,
	notifier interfaces.ITicketNotifier,
) *FieldTicketUseCase {
	return &FieldTicketUseCase{repo: repo, sequences: sequences, jobs: jobs, notifier: notifier}
}

func (u *FieldTicketUseCase) Create(ctx context.Context, t entities.FieldTicket) (entities.FieldTicket, error) {
	t.TenantID = strings.TrimSpace(t.TenantID)
	if t.TenantID == "" {
		return entities.FieldTicket{}, ErrInvalidTenant
	}
	if err := t.Validate(); err != nil {
		return entities.FieldTicket{}, err
	}

	job, err := u.jobs.GetByID(ctx, t.TenantID, t.JobID)
	if err != nil {
		return entities.FieldTicket{}, err
	}
	if job.ID == "" || job.IsDeleted {
		return entities.FieldTicket{}, ErrJobNotFound
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.Status = entities.TicketStatusDraft
	t.Signature = nil
	t.IsDeleted = false
	t.IsDisputed = false
	t.CreatedAt = now
	t.UpdatedAt = now
	assignPhotoIDs(&t, now)
	billing.RecomputeTotals(&t)

	year := now.Year()
	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		seq, err := u.sequences.Next(ctx, t.TenantID, year)
		if err != nil {
			return entities.FieldTicket{}, fmt.Errorf("%w: %v", ErrSequenceAllocation, err)
		}
		t.TicketNumber = FormatTicketNumber(year, seq)

		created, err := u.repo.Create(ctx, t)
		if err == nil {
			log.Printf("[ticket][usecase] created tenant=%s number=%s total=%.2f", t.TenantID, t.TicketNumber, t.TotalAmount)
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrTicketNumberExists) {
			return entities.FieldTicket{}, err
		}
		log.Printf("[ticket][usecase] number collision tenant=%s number=%s attempt=%d", t.TenantID, t.TicketNumber, attempt+1)
		lastErr = err
	}
	return entities.FieldTicket{}, fmt.Errorf("%w: %v", ErrSequenceAllocation, lastErr)
}

func (u *FieldTicketUseCase) Get(ctx context.Context, tenantID, ticketNumber string) (entities.FieldTicket, error) {
	return u.load(ctx, tenantID, ticketNumber)
}

func (u *FieldTicketUseCase) UpdateEntries(ctx context.Context, tenantID, ticketNumber string, in UpdateEntriesInput) (entities.FieldTicket, error) {
	t, err := u.load(ctx, tenantID, ticketNumber)
	if err != nil {
		return entities.FieldTicket{}, err
	}
	if err := lifecycle.EnsureEditable(&t); err != nil {
		return entities.FieldTicket{}, err
	}
	if in.MarkupRate < 0 {
		return entities.FieldTicket{}, &entities.ValidationError{Field: "markup_rate", Reason: "must be >= 0"}
	}

	t.LaborEntries = in.LaborEntries
	t.EquipmentEntries = in.EquipmentEntries
	t.MaterialEntries = in.MaterialEntries
	t.MarkupRate = in.MarkupRate
	if in.Description != "" {
		t.Description = in.Description
	}
	if err := t.ValidateEntries(); err != nil {
		return entities.FieldTicket{}, err
	}
	assignEntryIDs(&t)
	billing.RecomputeTotals(&t)
	t.UpdatedAt = time.Now().UTC()

	return u.save(ctx, t, "")
}

func (u *FieldTicketUseCase) SubmitForSignature(ctx context.Context, tenantID, ticketNumber, actor string) (entities.FieldTicket, error) {
	return u.transition(ctx, tenantID, ticketNumber, "ticket.submitted", func(t *entities.FieldTicket, now time.Time) error {
		return lifecycle.SubmitForSignature(t, actor, now)
	})
}

func (u *FieldTicketUseCase) ApplySignature(ctx context.Context, tenantID, ticketNumber string, sig entities.InspectorSignature) (entities.FieldTicket, error) {
	return u.transition(ctx, tenantID, ticketNumber, "ticket.signed", func(t *entities.FieldTicket, now time.Time) error {
		return lifecycle.ApplySignature(t, sig, now)
	})
}

func (u *FieldTicketUseCase) Approve(ctx context.Context, tenantID, ticketNumber, actor, notes string) (entities.FieldTicket, error) {
	return u.transition(ctx, tenantID, ticketNumber, "ticket.approved", func(t *entities.FieldTicket, now time.Time) error {
		return lifecycle.Approve(t, actor, notes, now)
	})
}

func (u *FieldTicketUseCase) Dispute(ctx context.Context, tenantID, ticketNumber, actor, reason, category string, evidence []entities.DisputeEvidenceItem) (entities.FieldTicket, error) {
	return u.transition(ctx, tenantID, ticketNumber, "ticket.disputed", func(t *entities.FieldTicket, now time.Time) error {
		return lifecycle.Dispute(t, actor, reason, category, stampEvidence(evidence, actor, now), now)
	})
}

func (u *FieldTicketUseCase) ResolveDispute(ctx context.Context, tenantID, ticketNumber, actor, resolution string, evidence []entities.DisputeEvidenceItem, replacement *entities.InspectorSignature) (entities.FieldTicket, error) {
	return u.transition(ctx, tenantID, ticketNumber, "ticket.dispute_resolved", func(t *entities.FieldTicket, now time.Time) error {
		return lifecycle.ResolveDispute(t, actor, resolution, stampEvidence(evidence, actor, now), replacement, now)
	})
}

func (u *FieldTicketUseCase) Bill(ctx context.Context, tenantID, ticketNumber, invoiceRef string) (entities.FieldTicket, error) {
	return u.transition(ctx, tenantID, ticketNumber, "ticket.billed", func(t *entities.FieldTicket, now time.Time) error {
		return lifecycle.Bill(t, invoiceRef, now)
	})
}

func (u *FieldTicketUseCase) Void(ctx context.Context, tenantID, ticketNumber, actor, reason string) (entities.FieldTicket, error) {
	return u.transition(ctx, tenantID, ticketNumber, "ticket.voided", func(t *entities.FieldTicket, now time.Time) error {
		return lifecycle.Void(t, actor, reason, now)
	})
}

func (u *FieldTicketUseCase) SoftDelete(ctx context.Context, tenantID, ticketNumber, actor, reason string, elevated bool) (entities.FieldTicket, error) {
	return u.transition(ctx, tenantID, ticketNumber, "", func(t *entities.FieldTicket, now time.Time) error {
		return lifecycle.SoftDelete(t, actor, reason, elevated, now)
	})
}

// transition loads the ticket, applies one lifecycle mutation, re-derives
// totals and saves. The notification fan-out runs after the save commits and
// is never awaited.
func (u *FieldTicketUseCase) transition(
	ctx context.Context,
	tenantID, ticketNumber, event string,
	apply func(t *entities.FieldTicket, now time.Time) error,
) (entities.FieldTicket, error) {
	t, err := u.load(ctx, tenantID, ticketNumber)
	if err != nil {
		return entities.FieldTicket{}, err
	}
	if err := apply(&t, time.Now().UTC()); err != nil {
		return entities.FieldTicket{}, err
	}
	billing.RecomputeTotals(&t)
	return u.save(ctx, t, event)
}

func (u *FieldTicketUseCase) load(ctx context.Context, tenantID, ticketNumber string) (entities.FieldTicket, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.FieldTicket{}, ErrInvalidTenant
	}
	ticketNumber = strings.TrimSpace(ticketNumber)
	if ticketNumber == "" {
		return entities.FieldTicket{}, ErrInvalidTicketNumber
	}

	t, err := u.repo.GetByNumber(ctx, tenantID, ticketNumber)
	if err != nil {
		return entities.FieldTicket{}, err
	}
	if t.ID == "" {
		return entities.FieldTicket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *FieldTicketUseCase) save(ctx context.Context, t entities.FieldTicket, event string) (entities.FieldTicket, error) {
	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.FieldTicket{}, err
	}
	if updated.ID == "" {
		return entities.FieldTicket{}, ErrTicketNotFound
	}
	if event != "" && u.notifier != nil {
		u.notifier.Notify(event, updated)
	}
	return updated, nil
}

func assignPhotoIDs(t *entities.FieldTicket, now time.Time) {
	for i := range t.Photos {
		if t.Photos[i].ID == "" {
			t.Photos[i].ID = uuid.NewString()
		}
		if t.Photos[i].TakenAt.IsZero() {
			t.Photos[i].TakenAt = now
		}
	}
	assignEntryIDs(t)
}

func assignEntryIDs(t *entities.FieldTicket) {
	for i := range t.LaborEntries {
		if t.LaborEntries[i].ID == "" {
			t.LaborEntries[i].ID = uuid.NewString()
		}
	}
	for i := range t.EquipmentEntries {
		if t.EquipmentEntries[i].ID == "" {
			t.EquipmentEntries[i].ID = uuid.NewString()
		}
	}
	for i := range t.MaterialEntries {
		if t.MaterialEntries[i].ID == "" {
			t.MaterialEntries[i].ID = uuid.NewString()
		}
	}
}

func stampEvidence(items []entities.DisputeEvidenceItem, actor string, now time.Time) []entities.DisputeEvidenceItem {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		if items[i].AddedBy == "" {
			items[i].AddedBy = actor
		}
		if items[i].AddedAt.IsZero() {
			items[i].AddedAt = now
		}
	}
	return items
}
