package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrInvalidHours     = errors.New("logged hours must be positive")
)

// IProjectUseCase governs stage progression of a running project. Stages
// follow the approved scope in template order; the reserved terminal phase
// is only entered through Finalize.

type IProjectUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByOfficeID(ctx context.Context, officeID string) ([]entities.Project, error)
	Advance(ctx context.Context, id string) (entities.Project, error)
	Retreat(ctx context.Context, id string) (entities.Project, error)
	Finalize(ctx context.Context, id string) (entities.Project, error)
	LogHours(ctx context.Context, id string, hours float64, note string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// Progress is the hours-consumption percentage of a project. Values above
// 100 signal overrun; clamping is a display concern, not done here.
func Progress(p entities.Project) float64 {
	if p.EstimatedHours <= 0 {
		return 0
	}
	return p.HoursUsed / float64(p.EstimatedHours) * 100
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return u.load(ctx, id)
}

func (u *ProjectUseCase) ListByOfficeID(ctx context.Context, officeID string) ([]entities.Project, error) {
	officeID = strings.TrimSpace(officeID)
	if officeID == "" {
		return nil, ErrInvalidOfficeID
	}
	return u.repo.ListByOfficeID(ctx, officeID)
}

// Advance moves the stage one scope position forward. At the last scope
// phase it is a no-op: moving into the terminal phase requires Finalize.
func (u *ProjectUseCase) Advance(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	idx := stageIndex(p)
	if idx < 0 || idx == len(p.Scope)-1 {
		return p, nil
	}

	p.Stage = p.Scope[idx+1]
	p.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if saved.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] advanced project_id=%s stage=%s", saved.ID, saved.Stage)
	return saved, nil
}

// Retreat moves the stage one scope position back, no-op at the first.
func (u *ProjectUseCase) Retreat(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	idx := stageIndex(p)
	if idx <= 0 {
		return p, nil
	}

	p.Stage = p.Scope[idx-1]
	p.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if saved.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] retreated project_id=%s stage=%s", saved.ID, saved.Stage)
	return saved, nil
}

// Finalize enters the reserved terminal phase. Idempotent.
func (u *ProjectUseCase) Finalize(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.Stage == entities.TerminalPhaseID {
		return p, nil
	}

	p.Stage = entities.TerminalPhaseID
	p.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if saved.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] finalized project_id=%s", saved.ID)
	return saved, nil
}

func (u *ProjectUseCase) LogHours(ctx context.Context, id string, hours float64, note string) (entities.Project, error) {
	if hours <= 0 {
		return entities.Project{}, ErrInvalidHours
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p.Entries = append(p.Entries, entities.TimeEntry{Date: now, Hours: hours, Note: note})
	p.HoursUsed += hours
	p.UpdatedAt = now

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if saved.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return saved, nil
}

func (u *ProjectUseCase) load(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// stageIndex locates the current stage within the scope; -1 when the
// project sits on the terminal phase (or on a phase edited out of scope).
func stageIndex(p entities.Project) int {
	for i, phaseID := range p.Scope {
		if phaseID == p.Stage {
			return i
		}
	}
	return -1
}
