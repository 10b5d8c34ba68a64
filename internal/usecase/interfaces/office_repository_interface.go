package interfaces

import (
	"context"
	"studioflow/internal/domain/entities"
)

// IOfficeRepository abstracts DynamoDB persistence for OfficeProfile.
// The engine only reads it; settings screens own the writes.

type IOfficeRepository interface {
	GetByID(ctx context.Context, id string) (entities.OfficeProfile, error)
}
