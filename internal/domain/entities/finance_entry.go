package entities

import "time"

// EntryStatus represents the settlement state of one installment.
type EntryStatus string

const (
	EntryStatusPaid    EntryStatus = "paid"
	EntryStatusPending EntryStatus = "pending"
)

// FinanceEntry is one payment installment created at project-spawn time.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Entries are immutable after creation except for Status and the provider
// payment reference recorded on settlement.
type FinanceEntry struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	BudgetID  string `json:"budget_id"`

	Value       float64     `json:"value"`
	DueDate     time.Time   `json:"due_date"`
	Status      EntryStatus `json:"status"`
	Installment string      `json:"installment"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
