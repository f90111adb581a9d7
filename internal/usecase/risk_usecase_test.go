package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/risk"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func riskFixture() []entities.FieldTicket {
	now := time.Now().UTC()
	mk := func(status entities.TicketStatus, amount float64, deleted bool) entities.FieldTicket {
		return entities.FieldTicket{
			Status:      status,
			TotalAmount: amount,
			WorkDate:    now.AddDate(0, 0, -2),
			CreatedAt:   now.AddDate(0, 0, -2),
			IsDeleted:   deleted,
		}
	}
	return []entities.FieldTicket{
		mk(entities.TicketStatusDraft, 100, false),
		mk(entities.TicketStatusPendingSignature, 200.50, false),
		mk(entities.TicketStatusSigned, 5000, false),
		mk(entities.TicketStatusDraft, 77, true),
	}
}

func TestRiskUseCase_AtRisk(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewRiskUseCase(nil, nil)
		_, err := uc.AtRisk(context.Background(), "", risk.Options{})
		if !errors.Is(err, ErrInvalidTenant) {
			t.Fatalf("expected ErrInvalidTenant, got %v", err)
		}
	})

	t.Run("computes from one snapshot without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		uc := NewRiskUseCase(repo, nil)

		repo.EXPECT().ListByTenant(gomock.Any(), "t-1").Return(riskFixture(), nil)

		got, err := uc.AtRisk(context.Background(), "t-1", risk.Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Count != 2 || math.Abs(got.TotalAtRisk-300.50) >= 0.01 {
			t.Fatalf("unexpected summary: %+v", got)
		}
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		cache := mock_interfaces.NewMockIRiskCache(ctrl)
		uc := NewRiskUseCase(repo, cache)

		cached := risk.Summary{Count: 9, TotalAtRisk: 1234}
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, true, nil)

		got, err := uc.AtRisk(context.Background(), "t-1", risk.Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Count != 9 {
			t.Fatalf("expected cached summary, got %+v", got)
		}
	})

	t.Run("cache failure degrades to fresh computation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		cache := mock_interfaces.NewMockIRiskCache(ctrl)
		uc := NewRiskUseCase(repo, cache)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(risk.Summary{}, false, errors.New("redis down"))
		repo.EXPECT().ListByTenant(gomock.Any(), "t-1").Return(riskFixture(), nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		got, err := uc.AtRisk(context.Background(), "t-1", risk.Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Count != 2 {
			t.Fatalf("unexpected summary: %+v", got)
		}
	})

	t.Run("distinct options use distinct cache keys", func(t *testing.T) {
		a := cacheKey("t-1", risk.Options{WarningDays: 3, CriticalDays: 7, TrendWeeks: 8})
		b := cacheKey("t-1", risk.Options{WarningDays: 5, CriticalDays: 7, TrendWeeks: 8})
		if a == b {
			t.Fatalf("cache keys must differ: %s", a)
		}
	})

	t.Run("zero options and explicit defaults share one cache entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFieldTicketRepository(ctrl)
		cache := mock_interfaces.NewMockIRiskCache(ctrl)
		uc := NewRiskUseCase(repo, cache)

		var keys []string
		record := func(_ context.Context, key string) (risk.Summary, bool, error) {
			keys = append(keys, key)
			return risk.Summary{}, false, nil
		}
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(record).Times(2)
		repo.EXPECT().ListByTenant(gomock.Any(), "t-1").Return(riskFixture(), nil).Times(2)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		if _, err := uc.AtRisk(context.Background(), "t-1", risk.Options{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		explicit := risk.Options{
			WarningDays:  risk.DefaultWarningDays,
			CriticalDays: risk.DefaultCriticalDays,
			TrendWeeks:   risk.DefaultTrendWeeks,
		}
		if _, err := uc.AtRisk(context.Background(), "t-1", explicit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(keys) != 2 || keys[0] != keys[1] {
			t.Fatalf("expected one shared cache key, got %v", keys)
		}
	})
}
