package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fieldops/internal/domain/entities"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTicketPaymentUseCase_CreateAndApprove(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTicketPaymentUseCase(nil, nil, gateway, nil)

		_, err := uc.CreateAndApprove(context.Background(), "t-1", "FT-2026-00007", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewTicketPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "t-1", "FT-2026-00007", nil)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("ticket not billed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTicketPaymentUseCase(nil, tickets, gateway, nil)

		tickets.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00007").
			Return(storedTicket(entities.TicketStatusApproved), nil)

		_, err := uc.CreateAndApprove(context.Background(), "t-1", "FT-2026-00007", nil)
		if !errors.Is(err, ErrTicketNotBilled) {
			t.Fatalf("expected ErrTicketNotBilled, got %v", err)
		}
	})

	t.Run("success records payment and marks ticket paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockITicketPaymentRepository(ctrl)
		tickets := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		notifier := mock_interfaces.NewMockITicketNotifier(ctrl)
		uc := NewTicketPaymentUseCase(payments, tickets, gateway, notifier)

		billed := storedTicket(entities.TicketStatusBilled)
		billed.TotalAmount = 605
		tickets.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00007").Return(billed, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("unparseable enriched payload: %v", err)
				}
				// The store total is authoritative regardless of caller input.
				if m["transaction_amount"] != 605.0 {
					t.Fatalf("expected enriched amount 605, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "FT-2026-00007" {
					t.Fatalf("expected external_reference, got %v", m["external_reference"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			},
		)

		payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.TicketPayment{})).DoAndReturn(
			func(_ context.Context, p entities.TicketPayment) (entities.TicketPayment, error) {
				if p.ID != "pay-1" || p.Amount != 605 || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)
		tickets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated entities.FieldTicket) (entities.FieldTicket, error) {
				if updated.Status != entities.TicketStatusPaid || updated.PaidAt == nil {
					t.Fatalf("ticket not marked paid: %+v", updated)
				}
				return updated, nil
			},
		)
		notifier.EXPECT().Notify("ticket.paid", gomock.Any())

		res, err := uc.CreateAndApprove(context.Background(), "t-1", "FT-2026-00007",
			json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "pay-1" {
			t.Fatalf("unexpected payment id: %s", res.ID)
		}
	})

	t.Run("gateway failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTicketPaymentUseCase(nil, tickets, gateway, nil)

		tickets.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00007").
			Return(storedTicket(entities.TicketStatusBilled), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New("provider 500"))

		_, err := uc.CreateAndApprove(context.Background(), "t-1", "FT-2026-00007", nil)
		if !errors.Is(err, ErrPaymentGatewayFailed) {
			t.Fatalf("expected ErrPaymentGatewayFailed, got %v", err)
		}
	})
}

// fakePaymentIndex mirrors a ticket-number index shared by every tenant:
// the same ticket number maps to payments owned by different tenants.
type fakePaymentIndex struct {
	payments []entities.TicketPayment
}

func (f *fakePaymentIndex) Create(_ context.Context, p entities.TicketPayment) (entities.TicketPayment, error) {
	f.payments = append(f.payments, p)
	return p, nil
}

func (f *fakePaymentIndex) GetByID(_ context.Context, id string) (entities.TicketPayment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.TicketPayment{}, nil
}

func (f *fakePaymentIndex) ListByTicketNumber(_ context.Context, tenantID, ticketNumber string) ([]entities.TicketPayment, error) {
	var out []entities.TicketPayment
	for _, p := range f.payments {
		if p.TenantID == tenantID && p.TicketNumber == ticketNumber {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestTicketPaymentUseCase_ListByTicketNumber(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewTicketPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.ListByTicketNumber(context.Background(), "  ", "FT-2026-00001")
		if !errors.Is(err, ErrInvalidTenant) {
			t.Fatalf("expected ErrInvalidTenant, got %v", err)
		}
	})

	t.Run("invalid ticket number", func(t *testing.T) {
		uc := NewTicketPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.ListByTicketNumber(context.Background(), "tenant-a", "")
		if !errors.Is(err, ErrInvalidTicketNumber) {
			t.Fatalf("expected ErrInvalidTicketNumber, got %v", err)
		}
	})

	t.Run("same ticket number across tenants stays isolated", func(t *testing.T) {
		repo := &fakePaymentIndex{payments: []entities.TicketPayment{
			{ID: "pay-a", TenantID: "tenant-a", TicketNumber: "FT-2026-00001"},
			{ID: "pay-b", TenantID: "tenant-b", TicketNumber: "FT-2026-00001"},
		}}
		uc := NewTicketPaymentUseCase(repo, nil, nil, nil)

		got, err := uc.ListByTicketNumber(context.Background(), "tenant-a", "FT-2026-00001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "pay-a" {
			t.Fatalf("expected only tenant-a's payment, got %+v", got)
		}
		for _, p := range got {
			if p.TenantID != "tenant-a" {
				t.Fatalf("payment %s belongs to tenant %s", p.ID, p.TenantID)
			}
		}
	})
}
