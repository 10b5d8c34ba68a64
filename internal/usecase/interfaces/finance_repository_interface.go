package interfaces

import (
	"context"
	"studioflow/internal/domain/entities"
)

// IFinanceRepository abstracts DynamoDB persistence for FinanceEntry.
//
// Entries are created in bulk at project-spawn time and only ever change
// status afterwards. GetByID and UpdateStatusByID signal not-found with a
// zero-value entity and a nil error.

type IFinanceRepository interface {
	CreateBatch(ctx context.Context, entries []entities.FinanceEntry) ([]entities.FinanceEntry, error)
	GetByID(ctx context.Context, id string) (entities.FinanceEntry, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.FinanceEntry, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EntryStatus, providerPaymentID string) (entities.FinanceEntry, error)
}
