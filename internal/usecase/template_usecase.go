package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"studioflow/internal/domain/entities"
	"studioflow/internal/templates"
	"studioflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceID = errors.New("invalid service id")
	ErrInvalidOfficeID  = errors.New("invalid office id")

	// Template-mutation violations, distinct from plain validation errors.
	ErrReservedPhase    = errors.New("reserved terminal phase cannot be changed")
	ErrDuplicatePhase   = errors.New("duplicate phase id")
	ErrPhaseNotFound    = errors.New("phase not found")
	ErrStepNotFound     = errors.New("step not found")
	ErrInvalidPhaseMove = errors.New("phase can only swap with an adjacent position")
)

// TemplatePatch is a shallow update of a resolved template. Nil fields are
// left untouched; Phases, when set, replaces the phase list wholesale.
type TemplatePatch struct {
	ServiceName *string
	BaseArea    *float64
	BaseRooms   *int
	Phases      *[]entities.Phase
}

type PhasePatch struct {
	Name     *string
	Color    *string
	Duration *string
}

type StepPatch struct {
	Name        *string
	ExecTime    *string
	Deliverable *string
}

// ITemplateUseCase is the phase/step template registry.
//
// Resolution order: office override, built-in default, minimal fallback.
// Every mutation works on the currently resolved template and stores the
// result as a full office override (override-wins-wholesale; defaults are
// never merged field by field).

type ITemplateUseCase interface {
	Resolve(ctx context.Context, officeID, serviceID string) (entities.ServiceTemplate, error)
	Update(ctx context.Context, officeID, serviceID string, patch TemplatePatch) (entities.ServiceTemplate, error)
	AddPhase(ctx context.Context, officeID, serviceID, name, color, duration string) (entities.ServiceTemplate, error)
	RemovePhase(ctx context.Context, officeID, serviceID, phaseID string) (entities.ServiceTemplate, error)
	MovePhase(ctx context.Context, officeID, serviceID, phaseID string, offset int) (entities.ServiceTemplate, error)
	EditPhase(ctx context.Context, officeID, serviceID, phaseID string, patch PhasePatch) (entities.ServiceTemplate, error)
	AddStep(ctx context.Context, officeID, serviceID, phaseID, name, execTime, deliverable string) (entities.ServiceTemplate, error)
	EditStep(ctx context.Context, officeID, serviceID, phaseID, stepID string, patch StepPatch) (entities.ServiceTemplate, error)
	RemoveStep(ctx context.Context, officeID, serviceID, phaseID, stepID string) (entities.ServiceTemplate, error)
}

type TemplateUseCase struct {
	repo     interfaces.ITemplateRepository
	defaults *templates.Catalog
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)
var _ interfaces.ITemplateSource = (*TemplateUseCase)(nil)

func NewTemplateUseCase(repo interfaces.ITemplateRepository, defaults *templates.Catalog) *TemplateUseCase {
	return &TemplateUseCase{repo: repo, defaults: defaults}
}

func (u *TemplateUseCase) Resolve(ctx context.Context, officeID, serviceID string) (entities.ServiceTemplate, error) {
	officeID = strings.TrimSpace(officeID)
	serviceID = strings.TrimSpace(serviceID)
	if officeID == "" {
		return entities.ServiceTemplate{}, ErrInvalidOfficeID
	}
	if serviceID == "" {
		return entities.ServiceTemplate{}, ErrInvalidServiceID
	}

	if u.repo != nil {
		override, found, err := u.repo.GetOverride(ctx, officeID, serviceID)
		if err != nil {
			return entities.ServiceTemplate{}, err
		}
		if found {
			return override, nil
		}
	}

	if u.defaults != nil {
		if tpl, ok := u.defaults.Get(serviceID); ok {
			return tpl, nil
		}
	}

	// Minimal fallback: an empty template still carries the terminal phase
	// so downstream invariants hold.
	return entities.ServiceTemplate{
		ServiceID: serviceID,
		Phases:    []entities.Phase{{ID: entities.TerminalPhaseID, Name: "Finalizado"}},
	}, nil
}

func (u *TemplateUseCase) Update(ctx context.Context, officeID, serviceID string, patch TemplatePatch) (entities.ServiceTemplate, error) {
	tpl, err := u.Resolve(ctx, officeID, serviceID)
	if err != nil {
		return entities.ServiceTemplate{}, err
	}

	if patch.ServiceName != nil {
		tpl.ServiceName = *patch.ServiceName
	}
	if patch.BaseArea != nil {
		tpl.BaseArea = *patch.BaseArea
	}
	if patch.BaseRooms != nil {
		tpl.BaseRooms = *patch.BaseRooms
	}
	if patch.Phases != nil {
		tpl.Phases = *patch.Phases
	}

	return u.store(ctx, officeID, tpl)
}

func (u *TemplateUseCase) AddPhase(ctx context.Context, officeID, serviceID, name, color, duration string) (entities.ServiceTemplate, error) {
	return u.mutate(ctx, officeID, serviceID, func(tpl *entities.ServiceTemplate) error {
		phase := entities.Phase{
			ID:       uuid.NewString(),
			Name:     name,
			Color:    color,
			Duration: duration,
			Steps:    []entities.Step{},
		}
		// New phases slot in before the terminal phase so it stays last.
		for i, p := range tpl.Phases {
			if p.ID == entities.TerminalPhaseID {
				tpl.Phases = append(tpl.Phases[:i], append([]entities.Phase{phase}, tpl.Phases[i:]...)...)
				return nil
			}
		}
		tpl.Phases = append(tpl.Phases, phase)
		return nil
	})
}

func (u *TemplateUseCase) RemovePhase(ctx context.Context, officeID, serviceID, phaseID string) (entities.ServiceTemplate, error) {
	if phaseID == entities.TerminalPhaseID {
		return entities.ServiceTemplate{}, ErrReservedPhase
	}
	return u.mutate(ctx, officeID, serviceID, func(tpl *entities.ServiceTemplate) error {
		for i, p := range tpl.Phases {
			if p.ID == phaseID {
				tpl.Phases = append(tpl.Phases[:i], tpl.Phases[i+1:]...)
				return nil
			}
		}
		return ErrPhaseNotFound
	})
}

func (u *TemplateUseCase) MovePhase(ctx context.Context, officeID, serviceID, phaseID string, offset int) (entities.ServiceTemplate, error) {
	if offset != 1 && offset != -1 {
		return entities.ServiceTemplate{}, ErrInvalidPhaseMove
	}
	if phaseID == entities.TerminalPhaseID {
		return entities.ServiceTemplate{}, ErrReservedPhase
	}
	return u.mutate(ctx, officeID, serviceID, func(tpl *entities.ServiceTemplate) error {
		for i, p := range tpl.Phases {
			if p.ID != phaseID {
				continue
			}
			j := i + offset
			if j < 0 || j >= len(tpl.Phases) {
				return ErrInvalidPhaseMove
			}
			if tpl.Phases[j].ID == entities.TerminalPhaseID {
				return ErrInvalidPhaseMove
			}
			tpl.Phases[i], tpl.Phases[j] = tpl.Phases[j], tpl.Phases[i]
			return nil
		}
		return ErrPhaseNotFound
	})
}

func (u *TemplateUseCase) EditPhase(ctx context.Context, officeID, serviceID, phaseID string, patch PhasePatch) (entities.ServiceTemplate, error) {
	return u.mutate(ctx, officeID, serviceID, func(tpl *entities.ServiceTemplate) error {
		for i := range tpl.Phases {
			if tpl.Phases[i].ID != phaseID {
				continue
			}
			if patch.Name != nil {
				tpl.Phases[i].Name = *patch.Name
			}
			if patch.Color != nil {
				tpl.Phases[i].Color = *patch.Color
			}
			if patch.Duration != nil {
				tpl.Phases[i].Duration = *patch.Duration
			}
			return nil
		}
		return ErrPhaseNotFound
	})
}

func (u *TemplateUseCase) AddStep(ctx context.Context, officeID, serviceID, phaseID, name, execTime, deliverable string) (entities.ServiceTemplate, error) {
	return u.mutate(ctx, officeID, serviceID, func(tpl *entities.ServiceTemplate) error {
		for i := range tpl.Phases {
			if tpl.Phases[i].ID != phaseID {
				continue
			}
			tpl.Phases[i].Steps = append(tpl.Phases[i].Steps, entities.Step{
				ID:          uuid.NewString(),
				Name:        name,
				ExecTime:    execTime,
				Deliverable: deliverable,
			})
			return nil
		}
		return ErrPhaseNotFound
	})
}

func (u *TemplateUseCase) EditStep(ctx context.Context, officeID, serviceID, phaseID, stepID string, patch StepPatch) (entities.ServiceTemplate, error) {
	return u.mutate(ctx, officeID, serviceID, func(tpl *entities.ServiceTemplate) error {
		phase, err := findPhase(tpl, phaseID)
		if err != nil {
			return err
		}
		for i := range phase.Steps {
			if phase.Steps[i].ID != stepID {
				continue
			}
			if patch.Name != nil {
				phase.Steps[i].Name = *patch.Name
			}
			if patch.ExecTime != nil {
				phase.Steps[i].ExecTime = *patch.ExecTime
			}
			if patch.Deliverable != nil {
				phase.Steps[i].Deliverable = *patch.Deliverable
			}
			return nil
		}
		return ErrStepNotFound
	})
}

func (u *TemplateUseCase) RemoveStep(ctx context.Context, officeID, serviceID, phaseID, stepID string) (entities.ServiceTemplate, error) {
	return u.mutate(ctx, officeID, serviceID, func(tpl *entities.ServiceTemplate) error {
		phase, err := findPhase(tpl, phaseID)
		if err != nil {
			return err
		}
		for i := range phase.Steps {
			if phase.Steps[i].ID == stepID {
				phase.Steps = append(phase.Steps[:i], phase.Steps[i+1:]...)
				return nil
			}
		}
		return ErrStepNotFound
	})
}

func (u *TemplateUseCase) mutate(ctx context.Context, officeID, serviceID string, fn func(*entities.ServiceTemplate) error) (entities.ServiceTemplate, error) {
	tpl, err := u.Resolve(ctx, officeID, serviceID)
	if err != nil {
		return entities.ServiceTemplate{}, err
	}
	if err := fn(&tpl); err != nil {
		return entities.ServiceTemplate{}, err
	}
	return u.store(ctx, officeID, tpl)
}

func (u *TemplateUseCase) store(ctx context.Context, officeID string, tpl entities.ServiceTemplate) (entities.ServiceTemplate, error) {
	if err := validateTemplate(tpl); err != nil {
		return entities.ServiceTemplate{}, err
	}
	if err := u.repo.PutOverride(ctx, officeID, tpl); err != nil {
		return entities.ServiceTemplate{}, err
	}
	log.Printf("[template][usecase] override stored office_id=%s service_id=%s phases=%d hours=%d",
		officeID, tpl.ServiceID, len(tpl.Phases), tpl.TotalHours())
	return tpl, nil
}

func validateTemplate(tpl entities.ServiceTemplate) error {
	seen := make(map[string]struct{}, len(tpl.Phases))
	for _, p := range tpl.Phases {
		if _, dup := seen[p.ID]; dup {
			return ErrDuplicatePhase
		}
		seen[p.ID] = struct{}{}
	}
	if _, ok := seen[entities.TerminalPhaseID]; !ok {
		return ErrReservedPhase
	}
	return nil
}

func findPhase(tpl *entities.ServiceTemplate, phaseID string) (*entities.Phase, error) {
	for i := range tpl.Phases {
		if tpl.Phases[i].ID == phaseID {
			return &tpl.Phases[i], nil
		}
	}
	return nil, ErrPhaseNotFound
}
