package response

import (
	"time"

	"studioflow/internal/domain/entities"
)

type FinanceEntryResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	BudgetID  string `json:"budget_id"`

	Value       float64   `json:"value"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	Installment string    `json:"installment"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFinanceEntry(e entities.FinanceEntry) FinanceEntryResponse {
	return FinanceEntryResponse{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		BudgetID:  e.BudgetID,

		Value:       e.Value,
		DueDate:     e.DueDate,
		Status:      string(e.Status),
		Installment: e.Installment,

		ProviderPaymentID: e.ProviderPaymentID,

		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromFinanceEntries(entries []entities.FinanceEntry) []FinanceEntryResponse {
	out := make([]FinanceEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromFinanceEntry(e))
	}
	return out
}
