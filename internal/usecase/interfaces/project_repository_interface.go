package interfaces

import (
	"context"
	"studioflow/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// GetByID and Save signal not-found with a zero-value entity and a nil
// error; callers check the empty ID.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Save(ctx context.Context, p entities.Project) (entities.Project, error)
	ListByOfficeID(ctx context.Context, officeID string) ([]entities.Project, error)
}
