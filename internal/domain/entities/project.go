package entities

import "time"

// MilestoneType tags the entries of a project delivery schedule.
type MilestoneType string

const (
	MilestoneTypeStart    MilestoneType = "start"
	MilestoneTypeDelivery MilestoneType = "delivery"
	MilestoneTypeEnd      MilestoneType = "end"
)

type Milestone struct {
	Date    time.Time     `json:"date"`
	Type    MilestoneType `json:"type"`
	PhaseID string        `json:"phase,omitempty"`
}

// TimeEntry is one logged block of worked hours on a project.
type TimeEntry struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
	Note  string    `json:"note,omitempty"`
}

// Project is the in-execution unit of work spawned from an approved budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
//
// Stage is always one of the phase ids of the budget's approved scope, or
// the reserved terminal id once the project is finalized.
type Project struct {
	ID         string `json:"id"`
	BudgetID   string `json:"budget_id"`
	OfficeID   string `json:"office_id"`
	ClientName string `json:"client_name"`
	ServiceID  string `json:"service_id"`

	Stage    string      `json:"stage"`
	Scope    []string    `json:"scope"`
	Schedule []Milestone `json:"schedule"`

	EstimatedHours int         `json:"estimated_hours"`
	HoursUsed      float64     `json:"hours_used"`
	Entries        []TimeEntry `json:"entries,omitempty"`

	StartDate time.Time `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
