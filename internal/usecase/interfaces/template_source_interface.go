package interfaces

import (
	"context"
	"studioflow/internal/domain/entities"
)

// ITemplateSource resolves the effective template of a service for an
// office (override if one exists, built-in default otherwise). Implemented
// by the template usecase; consumed by budget and project usecases.

type ITemplateSource interface {
	Resolve(ctx context.Context, officeID, serviceID string) (entities.ServiceTemplate, error)
}
