package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *TicketPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/:ticket_number", h.CreatePaymentByTicketNumber)
	r.GET("/v1/payments/:ticket_number", h.GetPaymentByTicketNumber)
	return r
}

func TestTicketPaymentHandler_CreatePaymentByTicketNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketPaymentUseCase(ctrl)
		r := newPaymentRouter(NewTicketPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/FT-2026-00001", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(tenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("envelope payload unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketPaymentUseCase(ctrl)
		r := newPaymentRouter(NewTicketPaymentHandler(uc))

		uc.EXPECT().CreateAndApprove(gomock.Any(), "tenant-1", "FT-2026-00001", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.TicketPayment{ID: "pay-1", TicketNumber: "FT-2026-00001", Status: entities.PaymentStatusApproved}, nil)

		body := `{"provider_payload": {"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/FT-2026-00001", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(tenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("ticket not billed maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketPaymentUseCase(ctrl)
		r := newPaymentRouter(NewTicketPaymentHandler(uc))

		uc.EXPECT().CreateAndApprove(gomock.Any(), "tenant-1", "FT-2026-00001", gomock.Any()).
			Return(entities.TicketPayment{}, usecase.ErrTicketNotBilled)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/FT-2026-00001", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(tenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketPaymentUseCase(ctrl)
		r := newPaymentRouter(NewTicketPaymentHandler(uc))

		uc.EXPECT().CreateAndApprove(gomock.Any(), "tenant-1", "FT-2026-00001", gomock.Any()).
			Return(entities.TicketPayment{}, usecase.ErrGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/FT-2026-00001", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(tenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestTicketPaymentHandler_GetPaymentByTicketNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketPaymentUseCase(ctrl)
		r := newPaymentRouter(NewTicketPaymentHandler(uc))

		uc.EXPECT().ListByTicketNumber(gomock.Any(), "tenant-1", "FT-2026-00001").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/FT-2026-00001", nil)
		req.Header.Set(tenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lookup is scoped to the caller's tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketPaymentUseCase(ctrl)
		r := newPaymentRouter(NewTicketPaymentHandler(uc))

		uc.EXPECT().
			ListByTicketNumber(gomock.Any(), "tenant-a", "FT-2026-00001").
			DoAndReturn(func(_ context.Context, tenantID, _ string) ([]entities.TicketPayment, error) {
				if tenantID != "tenant-a" {
					t.Fatalf("expected tenant-a, got %s", tenantID)
				}
				return nil, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/FT-2026-00001", nil)
		req.Header.Set(tenantHeader, "tenant-a")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		// Another tenant's payment for the same ticket number must not be
		// visible; an empty tenant-scoped result is a 404.
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketPaymentUseCase(ctrl)
		r := newPaymentRouter(NewTicketPaymentHandler(uc))

		older := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		newer := older.Add(2 * time.Hour)
		uc.EXPECT().ListByTicketNumber(gomock.Any(), "tenant-1", "FT-2026-00001").Return([]entities.TicketPayment{
			{ID: "pay-1", Date: older, Status: entities.PaymentStatusApproved},
			{ID: "pay-2", Date: newer, Status: entities.PaymentStatusApproved},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/FT-2026-00001", nil)
		req.Header.Set(tenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.ID != "pay-2" {
			t.Fatalf("expected latest payment pay-2, got %s", body.ID)
		}
	})
}
