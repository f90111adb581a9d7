package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingTicket(number string) entities.FieldTicket {
	t := storedTicket(entities.TicketStatusPendingSignature)
	t.TicketNumber = number
	return t
}

func batchSignature() entities.InspectorSignature {
	return entities.InspectorSignature{ImageData: "data:image/png;base64,xyz", SignerName: "Inspector"}
}

func TestBatchSignUseCase_SignBatch(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewBatchSignUseCase(nil, nil)
		_, err := uc.SignBatch(context.Background(), " ", []string{"FT-2026-00001"}, batchSignature())
		if !errors.Is(err, ErrInvalidTenant) {
			t.Fatalf("expected ErrInvalidTenant, got %v", err)
		}
	})

	t.Run("missing signature payload", func(t *testing.T) {
		uc := NewBatchSignUseCase(nil, nil)
		_, err := uc.SignBatch(context.Background(), "t-1", []string{"FT-2026-00001"}, entities.InspectorSignature{})
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		uc := NewBatchSignUseCase(nil, nil)
		_, err := uc.SignBatch(context.Background(), "t-1", []string{" ", ""}, batchSignature())
		if !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch, got %v", err)
		}
	})

	t.Run("mixed batch rejected with offending numbers and no writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		uc := NewBatchSignUseCase(repo, nil)

		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00001").Return(pendingTicket("FT-2026-00001"), nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00002").Return(storedTicket(entities.TicketStatusSigned), nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00003").Return(pendingTicket("FT-2026-00003"), nil)
		// No SignBatch expectation: nothing may be written.

		_, err := uc.SignBatch(context.Background(), "t-1",
			[]string{"FT-2026-00001", "FT-2026-00002", "FT-2026-00003"}, batchSignature())

		var conflict *BatchConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected BatchConflictError, got %v", err)
		}
		if len(conflict.TicketNumbers) != 1 || conflict.TicketNumbers[0] != "FT-2026-00002" {
			t.Fatalf("expected offending FT-2026-00002, got %v", conflict.TicketNumbers)
		}
	})

	t.Run("unknown ticket fails the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		uc := NewBatchSignUseCase(repo, nil)

		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-09999").Return(entities.FieldTicket{}, nil)

		_, err := uc.SignBatch(context.Background(), "t-1", []string{"FT-2026-09999"}, batchSignature())
		if !errors.Is(err, ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("all pending signs atomically and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		notifier := mock_interfaces.NewMockITicketNotifier(ctrl)
		uc := NewBatchSignUseCase(repo, notifier)

		numbers := []string{"FT-2026-00001", "FT-2026-00002"}
		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00001").Return(pendingTicket("FT-2026-00001"), nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00002").Return(pendingTicket("FT-2026-00002"), nil)
		repo.EXPECT().SignBatch(gomock.Any(), "t-1", numbers, gomock.Any(), gomock.Any()).Return(nil)

		signed1 := pendingTicket("FT-2026-00001")
		signed1.Status = entities.TicketStatusSigned
		signed2 := pendingTicket("FT-2026-00002")
		signed2.Status = entities.TicketStatusSigned
		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00001").Return(signed1, nil)
		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00002").Return(signed2, nil)
		notifier.EXPECT().Notify("ticket.signed", gomock.Any()).Times(2)

		res, err := uc.SignBatch(context.Background(), "t-1", numbers, batchSignature())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 signed tickets, got %d", len(res))
		}
	})

	t.Run("mid-flight status change aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		uc := NewBatchSignUseCase(repo, nil)

		repo.EXPECT().GetByNumber(gomock.Any(), "t-1", "FT-2026-00001").Return(pendingTicket("FT-2026-00001"), nil)
		repo.EXPECT().SignBatch(gomock.Any(), "t-1", []string{"FT-2026-00001"}, gomock.Any(), gomock.Any()).
			Return(interfaces.ErrBatchPrecondition)

		_, err := uc.SignBatch(context.Background(), "t-1", []string{"FT-2026-00001"}, batchSignature())
		if !errors.Is(err, ErrBatchNotValidated) {
			t.Fatalf("expected ErrBatchNotValidated, got %v", err)
		}
	})
}
