package response

import (
	"time"

	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase"
)

type MilestoneResponse struct {
	Date    time.Time `json:"date"`
	Type    string    `json:"type"`
	PhaseID string    `json:"phase,omitempty"`
}

type TimeEntryResponse struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
	Note  string    `json:"note,omitempty"`
}

type ProjectResponse struct {
	ID         string `json:"id"`
	BudgetID   string `json:"budget_id"`
	OfficeID   string `json:"office_id"`
	ClientName string `json:"client_name"`
	ServiceID  string `json:"service_id"`

	Stage    string              `json:"stage"`
	Scope    []string            `json:"scope"`
	Schedule []MilestoneResponse `json:"schedule"`

	EstimatedHours  int                 `json:"estimated_hours"`
	HoursUsed       float64             `json:"hours_used"`
	ProgressPercent float64             `json:"progress_percent"`
	Entries         []TimeEntryResponse `json:"entries,omitempty"`

	StartDate time.Time `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	schedule := make([]MilestoneResponse, 0, len(p.Schedule))
	for _, m := range p.Schedule {
		schedule = append(schedule, MilestoneResponse{Date: m.Date, Type: string(m.Type), PhaseID: m.PhaseID})
	}
	entries := make([]TimeEntryResponse, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, TimeEntryResponse{Date: e.Date, Hours: e.Hours, Note: e.Note})
	}
	return ProjectResponse{
		ID:         p.ID,
		BudgetID:   p.BudgetID,
		OfficeID:   p.OfficeID,
		ClientName: p.ClientName,
		ServiceID:  p.ServiceID,

		Stage:    p.Stage,
		Scope:    p.Scope,
		Schedule: schedule,

		EstimatedHours:  p.EstimatedHours,
		HoursUsed:       p.HoursUsed,
		ProgressPercent: usecase.Progress(p),
		Entries:         entries,

		StartDate: p.StartDate,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
