package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

var (
	ErrEmptyBatch        = errors.New("batch contains no ticket numbers")
	ErrInvalidSignature  = errors.New("invalid signature payload")
	ErrBatchNotValidated = errors.New("batch state changed during signing")
)

// BatchConflictError rejects a batch in which at least one ticket is not
// awaiting signature. Signing the rest anyway would attach an inspector's
// signature to tickets that inspector never reviewed, so nothing is mutated.
type BatchConflictError struct {
	TicketNumbers []string
}

func (e *BatchConflictError) Error() string {
	return fmt.Sprintf("tickets not pending signature: %s", strings.Join(e.TicketNumbers, ", "))
}

// IBatchSignUseCase applies one captured signature to N tickets as a single
// all-or-nothing unit of work.
type IBatchSignUseCase interface {
	SignBatch(ctx context.Context, tenantID string, ticketNumbers []string, sig entities.InspectorSignature) ([]entities.FieldTicket, error)
}

type BatchSignUseCase struct {
	repo     interfaces.IFieldTicketRepository
	notifier interfaces.ITicketNotifier
}

var _ IBatchSignUseCase = (*BatchSignUseCase)(nil)

func NewBatchSignUseCase(repo interfaces.IFieldTicketRepository, notifier interfaces.ITicketNotifier) *BatchSignUseCase {
	return &BatchSignUseCase{repo: repo, notifier: notifier}
}

// SignBatch pre-validates every target, then signs them in one transaction.
// The transaction re-checks each ticket's status, closing the window between
// validation and write: a ticket that changed mid-flight aborts the whole
// batch with nothing written.
func (u *BatchSignUseCase) SignBatch(ctx context.Context, tenantID string, ticketNumbers []string, sig entities.InspectorSignature) ([]entities.FieldTicket, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenant
	}
	if sig.ImageData == "" {
		return nil, ErrInvalidSignature
	}

	numbers := dedupeNumbers(ticketNumbers)
	if len(numbers) == 0 {
		return nil, ErrEmptyBatch
	}

	var offending []string
	for _, number := range numbers {
		t, err := u.repo.GetByNumber(ctx, tenantID, number)
		if err != nil {
			return nil, err
		}
		if t.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, number)
		}
		if t.IsDeleted || t.Status != entities.TicketStatusPendingSignature {
			offending = append(offending, number)
		}
	}
	if len(offending) > 0 {
		sort.Strings(offending)
		return nil, &BatchConflictError{TicketNumbers: offending}
	}

	now := time.Now().UTC()
	if sig.SignedAt.IsZero() {
		sig.SignedAt = now
	}
	if err := u.repo.SignBatch(ctx, tenantID, numbers, sig, now); err != nil {
		if errors.Is(err, interfaces.ErrBatchPrecondition) {
			return nil, fmt.Errorf("%w: %v", ErrBatchNotValidated, err)
		}
		return nil, err
	}
	log.Printf("[batch-sign][usecase] signed tenant=%s count=%d signer=%s", tenantID, len(numbers), sig.SignerName)

	signed := make([]entities.FieldTicket, 0, len(numbers))
	for _, number := range numbers {
		t, err := u.repo.GetByNumber(ctx, tenantID, number)
		if err != nil {
			return nil, err
		}
		signed = append(signed, t)
		if u.notifier != nil {
			u.notifier.Notify("ticket.signed", t)
		}
	}
	return signed, nil
}

func dedupeNumbers(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, n := range in {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
