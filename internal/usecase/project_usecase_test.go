package usecase

import (
	"context"
	"errors"
	"testing"

	"studioflow/internal/domain/entities"
	mock_interfaces "studioflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func runningProject() entities.Project {
	return entities.Project{
		ID:             "p-1",
		BudgetID:       "b-1",
		OfficeID:       "office-1",
		Stage:          "projeto",
		Scope:          []string{"briefing", "projeto", "detalhamento"},
		EstimatedHours: 40,
	}
}

func TestProjectUseCase_Advance(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Advance(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.Advance(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("moves one stage forward", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(runningProject(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Stage != "detalhamento" {
					t.Fatalf("expected detalhamento, got %s", p.Stage)
				}
				return p, nil
			},
		)

		res, err := uc.Advance(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != "detalhamento" {
			t.Fatalf("expected detalhamento, got %s", res.Stage)
		}
	})

	t.Run("no-op at last scope phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := runningProject()
		p.Stage = "detalhamento"
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		res, err := uc.Advance(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != "detalhamento" {
			t.Fatalf("advance past the scope must be a no-op, got %s", res.Stage)
		}
	})

	t.Run("no-op on finalized project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := runningProject()
		p.Stage = entities.TerminalPhaseID
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		res, err := uc.Advance(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != entities.TerminalPhaseID {
			t.Fatalf("expected stage unchanged, got %s", res.Stage)
		}
	})

	t.Run("vanished on save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(runningProject(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		_, err := uc.Advance(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_Retreat(t *testing.T) {
	t.Run("moves one stage back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(runningProject(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				return p, nil
			},
		)

		res, err := uc.Retreat(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != "briefing" {
			t.Fatalf("expected briefing, got %s", res.Stage)
		}
	})

	t.Run("no-op at first scope phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := runningProject()
		p.Stage = "briefing"
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		res, err := uc.Retreat(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != "briefing" {
			t.Fatalf("retreat before the scope must be a no-op, got %s", res.Stage)
		}
	})

	t.Run("vanished on save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(runningProject(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		_, err := uc.Retreat(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_Finalize(t *testing.T) {
	t.Run("enters terminal phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(runningProject(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				return p, nil
			},
		)

		res, err := uc.Finalize(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != entities.TerminalPhaseID {
			t.Fatalf("expected terminal stage, got %s", res.Stage)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := runningProject()
		p.Stage = entities.TerminalPhaseID
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		res, err := uc.Finalize(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stage != entities.TerminalPhaseID {
			t.Fatalf("expected terminal stage, got %s", res.Stage)
		}
	})

	t.Run("vanished on save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(runningProject(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		_, err := uc.Finalize(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_LogHours(t *testing.T) {
	t.Run("rejects non-positive hours", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.LogHours(context.Background(), "p-1", 0, "")
		if !errors.Is(err, ErrInvalidHours) {
			t.Fatalf("expected ErrInvalidHours, got %v", err)
		}
	})

	t.Run("appends entry and accumulates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		p := runningProject()
		p.HoursUsed = 10
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, saved entities.Project) (entities.Project, error) {
				if saved.HoursUsed != 14.5 {
					t.Fatalf("expected 14.5 hours used, got %v", saved.HoursUsed)
				}
				if len(saved.Entries) != 1 || saved.Entries[0].Hours != 4.5 || saved.Entries[0].Note != "revisao de plantas" {
					t.Fatalf("unexpected entries: %+v", saved.Entries)
				}
				return saved, nil
			},
		)

		if _, err := uc.LogHours(context.Background(), "p-1", 4.5, "revisao de plantas"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("vanished on save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(runningProject(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		_, err := uc.LogHours(context.Background(), "p-1", 4.5, "revisao de plantas")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name     string
		project  entities.Project
		expected float64
	}{
		{name: "zero estimate", project: entities.Project{HoursUsed: 10}, expected: 0},
		{name: "halfway", project: entities.Project{EstimatedHours: 40, HoursUsed: 20}, expected: 50},
		{name: "overrun stays uncapped", project: entities.Project{EstimatedHours: 40, HoursUsed: 60}, expected: 150},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Progress(tc.project); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
