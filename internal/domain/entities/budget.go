package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (priced proposal).
//
// Domain notes:
//   - A budget is editable while draft, frozen once sent, and terminal at
//     approved/rejected.
//   - Approval spawns exactly one project; the budget keeps the link.

type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusSent     BudgetStatus = "sent"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
)

// CalcMode selects how the pricing model scales the service template.
type CalcMode string

const (
	CalcModeArea CalcMode = "area"
	CalcModeRoom CalcMode = "room"
)

// PaymentTerms selects how the budget value is split into installments.
type PaymentTerms string

const (
	PaymentTerms5050   PaymentTerms = "50_50"
	PaymentTerms303040 PaymentTerms = "30_30_40"
	PaymentTerms403030 PaymentTerms = "40_30_30"
	PaymentTermsAVista PaymentTerms = "a_vista"
	PaymentTermsCustom PaymentTerms = "personalizado"
)

// RoomSize is the size class of a single room in room-mode calculations.
type RoomSize string

const (
	RoomSizeP RoomSize = "P"
	RoomSizeM RoomSize = "M"
	RoomSizeG RoomSize = "G"
)

type Room struct {
	Name string   `json:"name,omitempty"`
	Type string   `json:"type,omitempty"`
	Size RoomSize `json:"size"`
}

type Client struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// HistoryEvent is one append-only entry in a budget's audit trail.
type HistoryEvent struct {
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
	Note   string    `json:"note,omitempty"`
}

// Budget is a priced proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (office_id-index): office_id
//
// Monetary representation:
//   - CostValue is the internal cost (hours x office hourly cost).
//   - Value is the final price quoted to the client.
type Budget struct {
	ID       string `json:"id"`
	OfficeID string `json:"office_id"`
	Client   Client `json:"client"`

	ServiceID    string   `json:"service_id"`
	CalcMode     CalcMode `json:"calc_mode"`
	Area         float64  `json:"area,omitempty"`
	Rooms        []Room   `json:"rooms,omitempty"`
	ComplexityID string   `json:"complexity_id"`
	FinishID     string   `json:"finish_id"`

	EstimatedHours int     `json:"estimated_hours"`
	CostValue      float64 `json:"cost_value"`
	Value          float64 `json:"value"`
	Profit         float64 `json:"profit"`

	Scope        []string     `json:"scope"`
	PaymentTerms PaymentTerms `json:"payment_terms"`

	Status          BudgetStatus   `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	ProjectID       string         `json:"project_id,omitempty"`
	History         []HistoryEvent `json:"history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
