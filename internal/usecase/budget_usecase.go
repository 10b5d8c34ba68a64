package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"studioflow/internal/domain/entities"
	"studioflow/internal/domain/installments"
	"studioflow/internal/domain/pricing"
	"studioflow/internal/domain/schedule"
	"studioflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrOfficeNotFound    = errors.New("office not found")
	ErrInvalidBudgetID   = errors.New("invalid budget id")
	ErrNotComputable     = errors.New("calculation not computable from the given inputs")
	ErrInvalidScope      = errors.New("scope contains phases outside the service template")
	ErrMissingClientInfo = errors.New("client name and email are required")
	ErrEmptyScope        = errors.New("budget scope is empty")
	ErrInvalidTransition = errors.New("invalid budget status transition")
)

// History actions appended by the lifecycle. One successful transition
// appends exactly one event.
const (
	historyActionCreated  = "created"
	historyActionSent     = "sent"
	historyActionApproved = "approved"
	historyActionRejected = "rejected"
	historyActionFollowup = "followup"
)

// CreateBudgetInput is the calculation commit payload.
type CreateBudgetInput struct {
	OfficeID     string
	Client       entities.Client
	ServiceID    string
	CalcMode     entities.CalcMode
	Area         float64
	Rooms        []entities.Room
	ComplexityID string
	FinishID     string
	Scope        []string
	PaymentTerms entities.PaymentTerms
}

// IBudgetUseCase drives the budget lifecycle: draft -> sent -> approved or
// rejected. Approval spawns the project and its finance entries.

type IBudgetUseCase interface {
	CreateFromCalculation(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByOfficeID(ctx context.Context, officeID string) ([]entities.Budget, error)
	Send(ctx context.Context, id string) (entities.Budget, error)
	Approve(ctx context.Context, id string, startDate time.Time) (entities.Budget, error)
	Reject(ctx context.Context, id, reason string) (entities.Budget, error)
	LogFollowup(ctx context.Context, id, note string) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo      interfaces.IBudgetRepository
	projects  interfaces.IProjectRepository
	finance   interfaces.IFinanceRepository
	offices   interfaces.IOfficeRepository
	templates interfaces.ITemplateSource
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	projects interfaces.IProjectRepository,
	finance interfaces.IFinanceRepository,
	offices interfaces.IOfficeRepository,
	templates interfaces.ITemplateSource,
) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, projects: projects, finance: finance, offices: offices, templates: templates}
}

func (u *BudgetUseCase) CreateFromCalculation(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	in.OfficeID = strings.TrimSpace(in.OfficeID)
	if in.OfficeID == "" {
		return entities.Budget{}, ErrInvalidOfficeID
	}

	office, err := u.offices.GetByID(ctx, in.OfficeID)
	if err != nil {
		return entities.Budget{}, err
	}
	if office.ID == "" {
		return entities.Budget{}, ErrOfficeNotFound
	}

	tpl, err := u.templates.Resolve(ctx, in.OfficeID, in.ServiceID)
	if err != nil {
		return entities.Budget{}, err
	}

	for _, phaseID := range in.Scope {
		if phaseID == entities.TerminalPhaseID || !tpl.HasPhase(phaseID) {
			return entities.Budget{}, ErrInvalidScope
		}
	}

	result := pricing.ForService(in.ServiceID).Calculate(pricing.Input{
		ServiceID:     in.ServiceID,
		Mode:          in.CalcMode,
		Area:          in.Area,
		Rooms:         in.Rooms,
		ComplexityID:  in.ComplexityID,
		FinishID:      in.FinishID,
		HourlyCost:    office.HourlyCost(),
		MarginPercent: office.MarginPercent,
		Template:      tpl,
	})
	if result == nil {
		return entities.Budget{}, ErrNotComputable
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:             uuid.NewString(),
		OfficeID:       in.OfficeID,
		Client:         in.Client,
		ServiceID:      in.ServiceID,
		CalcMode:       in.CalcMode,
		Area:           in.Area,
		Rooms:          in.Rooms,
		ComplexityID:   in.ComplexityID,
		FinishID:       in.FinishID,
		EstimatedHours: result.EstimatedHours,
		CostValue:      result.CostValue,
		Value:          result.FinalValue,
		Profit:         result.Profit,
		Scope:          in.Scope,
		PaymentTerms:   in.PaymentTerms,
		Status:         entities.BudgetStatusDraft,
		History:        []entities.HistoryEvent{{Date: now, Action: historyActionCreated}},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	log.Printf("[budget][usecase] created budget_id=%s office_id=%s value=%.2f health=%s",
		created.ID, created.OfficeID, created.Value, result.Health)
	return created, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (u *BudgetUseCase) ListByOfficeID(ctx context.Context, officeID string) ([]entities.Budget, error) {
	officeID = strings.TrimSpace(officeID)
	if officeID == "" {
		return nil, ErrInvalidOfficeID
	}
	return u.repo.ListByOfficeID(ctx, officeID)
}

func (u *BudgetUseCase) Send(ctx context.Context, id string) (entities.Budget, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusDraft {
		return entities.Budget{}, ErrInvalidTransition
	}
	if strings.TrimSpace(b.Client.Name) == "" || strings.TrimSpace(b.Client.Email) == "" {
		return entities.Budget{}, ErrMissingClientInfo
	}
	if len(b.Scope) == 0 {
		return entities.Budget{}, ErrEmptyScope
	}

	now := time.Now().UTC()
	b.Status = entities.BudgetStatusSent
	b.History = append(b.History, entities.HistoryEvent{Date: now, Action: historyActionSent})
	b.UpdatedAt = now

	saved, err := u.repo.Save(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if saved.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	log.Printf("[budget][usecase] sent budget_id=%s client=%s", saved.ID, saved.Client.Email)
	return saved, nil
}

// Approve transitions sent -> approved and spawns the project and its
// payment installments. A zero startDate means "today".
func (u *BudgetUseCase) Approve(ctx context.Context, id string, startDate time.Time) (entities.Budget, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusSent {
		return entities.Budget{}, ErrInvalidTransition
	}

	tpl, err := u.templates.Resolve(ctx, b.OfficeID, b.ServiceID)
	if err != nil {
		return entities.Budget{}, err
	}

	// Scope phases in template order, terminal phase excluded.
	inScope := make(map[string]struct{}, len(b.Scope))
	for _, phaseID := range b.Scope {
		inScope[phaseID] = struct{}{}
	}
	var scopePhases []entities.Phase
	for _, p := range tpl.Phases {
		if p.ID == entities.TerminalPhaseID {
			continue
		}
		if _, ok := inScope[p.ID]; ok {
			scopePhases = append(scopePhases, p)
		}
	}
	if len(scopePhases) == 0 {
		return entities.Budget{}, ErrEmptyScope
	}

	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}
	now := time.Now().UTC()

	project := entities.Project{
		ID:             uuid.NewString(),
		BudgetID:       b.ID,
		OfficeID:       b.OfficeID,
		ClientName:     b.Client.Name,
		ServiceID:      b.ServiceID,
		Stage:          scopePhases[0].ID,
		Scope:          phaseIDs(scopePhases),
		Schedule:       schedule.Generate(startDate, scopePhases, b.EstimatedHours),
		EstimatedHours: b.EstimatedHours,
		StartDate:      startDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := u.projects.Create(ctx, project); err != nil {
		return entities.Budget{}, err
	}

	entries := installments.Generate(b.Value, b.PaymentTerms, startDate)
	for i := range entries {
		entries[i].ID = uuid.NewString()
		entries[i].ProjectID = project.ID
		entries[i].BudgetID = b.ID
		entries[i].CreatedAt = now
		entries[i].UpdatedAt = now
	}
	if _, err := u.finance.CreateBatch(ctx, entries); err != nil {
		return entities.Budget{}, err
	}

	b.Status = entities.BudgetStatusApproved
	b.ProjectID = project.ID
	b.History = append(b.History, entities.HistoryEvent{Date: now, Action: historyActionApproved})
	b.UpdatedAt = now

	saved, err := u.repo.Save(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if saved.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	log.Printf("[budget][usecase] approved budget_id=%s project_id=%s installments=%d",
		saved.ID, project.ID, len(entries))
	return saved, nil
}

func (u *BudgetUseCase) Reject(ctx context.Context, id, reason string) (entities.Budget, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusSent {
		return entities.Budget{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	b.Status = entities.BudgetStatusRejected
	b.RejectionReason = reason
	b.History = append(b.History, entities.HistoryEvent{Date: now, Action: historyActionRejected, Note: reason})
	b.UpdatedAt = now

	saved, err := u.repo.Save(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if saved.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	log.Printf("[budget][usecase] rejected budget_id=%s", saved.ID)
	return saved, nil
}

// LogFollowup records a contact note while the budget is with the client.
// It never changes the status.
func (u *BudgetUseCase) LogFollowup(ctx context.Context, id, note string) (entities.Budget, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusSent {
		return entities.Budget{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	b.History = append(b.History, entities.HistoryEvent{Date: now, Action: historyActionFollowup, Note: note})
	b.UpdatedAt = now

	saved, err := u.repo.Save(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if saved.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return saved, nil
}

func (u *BudgetUseCase) load(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func phaseIDs(phases []entities.Phase) []string {
	ids := make([]string, 0, len(phases))
	for _, p := range phases {
		ids = append(ids, p.ID)
	}
	return ids
}
