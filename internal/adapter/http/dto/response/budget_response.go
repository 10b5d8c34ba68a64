package response

import (
	"time"

	"studioflow/internal/domain/entities"
)

type ClientResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type HistoryEventResponse struct {
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
	Note   string    `json:"note,omitempty"`
}

type BudgetResponse struct {
	ID       string         `json:"id"`
	OfficeID string         `json:"office_id"`
	Client   ClientResponse `json:"client"`

	ServiceID    string  `json:"service_id"`
	CalcMode     string  `json:"calc_mode"`
	Area         float64 `json:"area,omitempty"`
	ComplexityID string  `json:"complexity_id"`
	FinishID     string  `json:"finish_id"`

	EstimatedHours int     `json:"estimated_hours"`
	CostValue      float64 `json:"cost_value"`
	Value          float64 `json:"value"`
	Profit         float64 `json:"profit"`

	Scope        []string `json:"scope"`
	PaymentTerms string   `json:"payment_terms"`

	Status          string                 `json:"status"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	ProjectID       string                 `json:"project_id,omitempty"`
	History         []HistoryEventResponse `json:"history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	history := make([]HistoryEventResponse, 0, len(b.History))
	for _, h := range b.History {
		history = append(history, HistoryEventResponse{Date: h.Date, Action: h.Action, Note: h.Note})
	}
	return BudgetResponse{
		ID:       b.ID,
		OfficeID: b.OfficeID,
		Client:   ClientResponse{Name: b.Client.Name, Email: b.Client.Email, Phone: b.Client.Phone},

		ServiceID:    b.ServiceID,
		CalcMode:     string(b.CalcMode),
		Area:         b.Area,
		ComplexityID: b.ComplexityID,
		FinishID:     b.FinishID,

		EstimatedHours: b.EstimatedHours,
		CostValue:      b.CostValue,
		Value:          b.Value,
		Profit:         b.Profit,

		Scope:        b.Scope,
		PaymentTerms: string(b.PaymentTerms),

		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		ProjectID:       b.ProjectID,
		History:         history,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}

type ProposalResponse struct {
	BudgetID string `json:"budget_id"`
	Text     string `json:"text"`
}
