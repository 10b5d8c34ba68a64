package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studioflow/internal/adapter/http/handlers/mocks"
	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFinanceHandler_ListProjectFinance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id/finance", h.ListProjectFinance)

		uc.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.FinanceEntry{
			{ID: "f-1", ProjectID: "p-1", Value: 2700, Status: entities.EntryStatusPaid, Installment: "1/3"},
			{ID: "f-2", ProjectID: "p-1", Value: 2700, Status: entities.EntryStatusPending, Installment: "2/3"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/finance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["installment"] != "1/3" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing project id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id/finance", h.ListProjectFinance)

		uc.EXPECT().ListByProjectID(gomock.Any(), "  ").Return(nil, usecase.ErrInvalidProjectID)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/%20%20/finance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestFinanceHandler_SettleEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success passes raw payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.POST("/v1/finance/:entry_id/settle", h.SettleEntry)

		uc.EXPECT().Settle(gomock.Any(), "f-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, payload json.RawMessage) (entities.FinanceEntry, error) {
				var fields map[string]any
				if err := json.Unmarshal(payload, &fields); err != nil {
					t.Fatalf("payload is not json: %v", err)
				}
				if fields["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", string(payload))
				}
				return entities.FinanceEntry{ID: "f-1", Status: entities.EntryStatusPaid, ProviderPaymentID: "mp-55"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/f-1/settle", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"marina@example.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" || body["provider_payment_id"] != "mp-55" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.POST("/v1/finance/:entry_id/settle", h.SettleEntry)

		uc.EXPECT().Settle(gomock.Any(), "f-1", gomock.Any()).Return(entities.FinanceEntry{}, usecase.ErrEntryAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/f-1/settle", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.POST("/v1/finance/:entry_id/settle", h.SettleEntry)

		uc.EXPECT().Settle(gomock.Any(), "f-9", gomock.Any()).Return(entities.FinanceEntry{}, usecase.ErrEntryNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/f-9/settle", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapFinanceError(t *testing.T) {
	if got := mapFinanceError(usecase.ErrInvalidEntryID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapFinanceError(usecase.ErrInvalidProjectID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapFinanceError(usecase.ErrEntryNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFinanceError(usecase.ErrEntryAlreadyPaid); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapFinanceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
