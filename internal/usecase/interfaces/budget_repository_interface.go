package interfaces

import (
	"context"
	"studioflow/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Not-found is signalled by a zero-value entity (empty ID) with a nil
// error, matching the convention of the other repositories. This includes
// Save: a conditional write against an item that no longer exists returns
// the zero value, and callers must treat it as not-found.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Save(ctx context.Context, b entities.Budget) (entities.Budget, error)
	ListByOfficeID(ctx context.Context, officeID string) ([]entities.Budget, error)
}
