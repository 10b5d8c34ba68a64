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

func TestProjectHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Stage: "projeto", EstimatedHours: 40, HoursUsed: 20}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["stage"] != "projeto" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["progress_percent"] != 50.0 {
			t.Fatalf("unexpected progress: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by office", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects", h.ListProjects)

		uc.EXPECT().ListByOfficeID(gomock.Any(), "esc-1").Return([]entities.Project{{ID: "p-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects?office_id=esc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_StageNavigation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("advance success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/advance", h.AdvanceProject)

		uc.EXPECT().Advance(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Stage: "detalhamento"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("retreat success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/retreat", h.RetreatProject)

		uc.EXPECT().Retreat(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Stage: "briefing"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/retreat", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("finalize not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/finalize", h.FinalizeProject)

		uc.EXPECT().Finalize(gomock.Any(), "p-9").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-9/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_LogHours(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/hours", h.LogHours)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/hours", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/hours", h.LogHours)

		uc.EXPECT().LogHours(gomock.Any(), "p-1", -2.0, "").Return(entities.Project{}, usecase.ErrInvalidHours)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/hours", bytes.NewBufferString(`{"hours":-2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/hours", h.LogHours)

		uc.EXPECT().LogHours(gomock.Any(), "p-1", 4.5, "revisao de plantas").Return(entities.Project{ID: "p-1", HoursUsed: 14.5}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/hours", bytes.NewBufferString(`{"hours":4.5,"note":"revisao de plantas"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["hours_used"] != 14.5 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapProjectError(t *testing.T) {
	if got := mapProjectError(usecase.ErrInvalidProjectID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrInvalidHours); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
