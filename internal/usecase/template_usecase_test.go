package usecase

import (
	"context"
	"errors"
	"testing"

	"studioflow/internal/domain/entities"
	"studioflow/internal/templates"
	mock_interfaces "studioflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func overrideTemplate() entities.ServiceTemplate {
	return entities.ServiceTemplate{
		ServiceID: "arquitetura",
		Phases: []entities.Phase{
			{ID: "briefing", Name: "Briefing", Steps: []entities.Step{{ID: "s1", Name: "Entrevista", ExecTime: "8h"}}},
			{ID: "projeto", Name: "Projeto", Steps: []entities.Step{{ID: "s2", Name: "Plantas", ExecTime: "24h"}}},
			{ID: "detalhamento", Name: "Detalhamento"},
			{ID: entities.TerminalPhaseID, Name: "Finalizado"},
		},
		BaseArea: 100,
	}
}

func TestTemplateUseCase_Resolve(t *testing.T) {
	t.Run("invalid office id", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil)
		_, err := uc.Resolve(context.Background(), " ", "arquitetura")
		if !errors.Is(err, ErrInvalidOfficeID) {
			t.Fatalf("expected ErrInvalidOfficeID, got %v", err)
		}
	})

	t.Run("invalid service id", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil)
		_, err := uc.Resolve(context.Background(), "office-1", " ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("override wins over default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		catalog, err := templates.LoadDefaults()
		if err != nil {
			t.Fatalf("loading defaults: %v", err)
		}
		uc := NewTemplateUseCase(repo, catalog)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)

		tpl, err := uc.Resolve(context.Background(), "office-1", "arquitetura")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tpl.Phases) != 4 || tpl.Phases[0].ID != "briefing" {
			t.Fatalf("expected override template, got %+v", tpl)
		}
	})

	t.Run("default when no override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		catalog, err := templates.LoadDefaults()
		if err != nil {
			t.Fatalf("loading defaults: %v", err)
		}
		uc := NewTemplateUseCase(repo, catalog)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(entities.ServiceTemplate{}, false, nil)

		tpl, err := uc.Resolve(context.Background(), "office-1", "arquitetura")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tpl.ServiceID != "arquitetura" || len(tpl.Phases) == 0 {
			t.Fatalf("expected built-in template, got %+v", tpl)
		}
		if tpl.Phases[len(tpl.Phases)-1].ID != entities.TerminalPhaseID {
			t.Fatalf("expected terminal phase last")
		}
	})

	t.Run("minimal fallback for unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo, nil)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "luminotecnica").Return(entities.ServiceTemplate{}, false, nil)

		tpl, err := uc.Resolve(context.Background(), "office-1", "luminotecnica")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tpl.Phases) != 1 || tpl.Phases[0].ID != entities.TerminalPhaseID {
			t.Fatalf("expected terminal-only fallback, got %+v", tpl)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo, nil)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(entities.ServiceTemplate{}, false, errors.New("db"))

		_, err := uc.Resolve(context.Background(), "office-1", "arquitetura")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestTemplateUseCase_PhaseMutations(t *testing.T) {
	newUC := func(ctrl *gomock.Controller) (*TemplateUseCase, *mock_interfaces.MockITemplateRepository) {
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		return NewTemplateUseCase(repo, nil), repo
	}

	t.Run("add phase slots before terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)
		repo.EXPECT().PutOverride(gomock.Any(), "office-1", gomock.Any()).Return(nil)

		tpl, err := uc.AddPhase(context.Background(), "office-1", "arquitetura", "Obras", "#ff8800", "3 semanas")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tpl.Phases) != 5 {
			t.Fatalf("expected 5 phases, got %d", len(tpl.Phases))
		}
		if tpl.Phases[3].Name != "Obras" || tpl.Phases[3].ID == "" {
			t.Fatalf("expected new phase at position 3, got %+v", tpl.Phases[3])
		}
		if tpl.Phases[4].ID != entities.TerminalPhaseID {
			t.Fatalf("terminal phase must stay last, got %+v", tpl.Phases[4])
		}
	})

	t.Run("remove terminal phase forbidden", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil)
		_, err := uc.RemovePhase(context.Background(), "office-1", "arquitetura", entities.TerminalPhaseID)
		if !errors.Is(err, ErrReservedPhase) {
			t.Fatalf("expected ErrReservedPhase, got %v", err)
		}
	})

	t.Run("remove phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)
		repo.EXPECT().PutOverride(gomock.Any(), "office-1", gomock.Any()).Return(nil)

		tpl, err := uc.RemovePhase(context.Background(), "office-1", "arquitetura", "projeto")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tpl.HasPhase("projeto") {
			t.Fatalf("expected projeto removed, got %+v", tpl.PhaseIDs())
		}
	})

	t.Run("remove unknown phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)

		_, err := uc.RemovePhase(context.Background(), "office-1", "arquitetura", "obras")
		if !errors.Is(err, ErrPhaseNotFound) {
			t.Fatalf("expected ErrPhaseNotFound, got %v", err)
		}
	})

	t.Run("move swaps adjacent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)
		repo.EXPECT().PutOverride(gomock.Any(), "office-1", gomock.Any()).Return(nil)

		tpl, err := uc.MovePhase(context.Background(), "office-1", "arquitetura", "projeto", -1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tpl.Phases[0].ID != "projeto" || tpl.Phases[1].ID != "briefing" {
			t.Fatalf("expected swap, got %+v", tpl.PhaseIDs())
		}
	})

	t.Run("move rejects non-adjacent offset", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil)
		_, err := uc.MovePhase(context.Background(), "office-1", "arquitetura", "briefing", 2)
		if !errors.Is(err, ErrInvalidPhaseMove) {
			t.Fatalf("expected ErrInvalidPhaseMove, got %v", err)
		}
	})

	t.Run("move cannot displace terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)

		_, err := uc.MovePhase(context.Background(), "office-1", "arquitetura", "detalhamento", 1)
		if !errors.Is(err, ErrInvalidPhaseMove) {
			t.Fatalf("expected ErrInvalidPhaseMove, got %v", err)
		}
	})

	t.Run("move terminal forbidden", func(t *testing.T) {
		uc := NewTemplateUseCase(nil, nil)
		_, err := uc.MovePhase(context.Background(), "office-1", "arquitetura", entities.TerminalPhaseID, -1)
		if !errors.Is(err, ErrReservedPhase) {
			t.Fatalf("expected ErrReservedPhase, got %v", err)
		}
	})

	t.Run("edit phase patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)
		repo.EXPECT().PutOverride(gomock.Any(), "office-1", gomock.Any()).Return(nil)

		name := "Anteprojeto"
		tpl, err := uc.EditPhase(context.Background(), "office-1", "arquitetura", "projeto", PhasePatch{Name: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tpl.Phases[1].Name != "Anteprojeto" {
			t.Fatalf("expected renamed phase, got %+v", tpl.Phases[1])
		}
		if tpl.Phases[1].Steps[0].Name != "Plantas" {
			t.Fatalf("untouched fields must survive the patch")
		}
	})

	t.Run("update rejects duplicate phase ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)

		phases := []entities.Phase{
			{ID: "briefing"}, {ID: "briefing"}, {ID: entities.TerminalPhaseID},
		}
		_, err := uc.Update(context.Background(), "office-1", "arquitetura", TemplatePatch{Phases: &phases})
		if !errors.Is(err, ErrDuplicatePhase) {
			t.Fatalf("expected ErrDuplicatePhase, got %v", err)
		}
	})

	t.Run("update rejects dropping terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)

		phases := []entities.Phase{{ID: "briefing"}, {ID: "projeto"}}
		_, err := uc.Update(context.Background(), "office-1", "arquitetura", TemplatePatch{Phases: &phases})
		if !errors.Is(err, ErrReservedPhase) {
			t.Fatalf("expected ErrReservedPhase, got %v", err)
		}
	})
}

func TestTemplateUseCase_StepMutations(t *testing.T) {
	newUC := func(ctrl *gomock.Controller) (*TemplateUseCase, *mock_interfaces.MockITemplateRepository) {
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		return NewTemplateUseCase(repo, nil), repo
	}

	t.Run("add step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)
		repo.EXPECT().PutOverride(gomock.Any(), "office-1", gomock.Any()).Return(nil)

		tpl, err := uc.AddStep(context.Background(), "office-1", "arquitetura", "projeto", "Cortes", "16h", "PDF")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		steps := tpl.Phases[1].Steps
		if len(steps) != 2 || steps[1].Name != "Cortes" || steps[1].ID == "" {
			t.Fatalf("expected appended step, got %+v", steps)
		}
	})

	t.Run("add step unknown phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)

		_, err := uc.AddStep(context.Background(), "office-1", "arquitetura", "obras", "Cortes", "16h", "")
		if !errors.Is(err, ErrPhaseNotFound) {
			t.Fatalf("expected ErrPhaseNotFound, got %v", err)
		}
	})

	t.Run("edit step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)
		repo.EXPECT().PutOverride(gomock.Any(), "office-1", gomock.Any()).Return(nil)

		execTime := "32h"
		tpl, err := uc.EditStep(context.Background(), "office-1", "arquitetura", "projeto", "s2", StepPatch{ExecTime: &execTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tpl.Phases[1].Steps[0].ExecTime != "32h" {
			t.Fatalf("expected exec time updated, got %+v", tpl.Phases[1].Steps[0])
		}
	})

	t.Run("edit unknown step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)

		_, err := uc.EditStep(context.Background(), "office-1", "arquitetura", "projeto", "s9", StepPatch{})
		if !errors.Is(err, ErrStepNotFound) {
			t.Fatalf("expected ErrStepNotFound, got %v", err)
		}
	})

	t.Run("remove step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo := newUC(ctrl)

		repo.EXPECT().GetOverride(gomock.Any(), "office-1", "arquitetura").Return(overrideTemplate(), true, nil)
		repo.EXPECT().PutOverride(gomock.Any(), "office-1", gomock.Any()).Return(nil)

		tpl, err := uc.RemoveStep(context.Background(), "office-1", "arquitetura", "briefing", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tpl.Phases[0].Steps) != 0 {
			t.Fatalf("expected empty steps, got %+v", tpl.Phases[0].Steps)
		}
	})
}
