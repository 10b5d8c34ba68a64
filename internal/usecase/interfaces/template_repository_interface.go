package interfaces

import (
	"context"
	"studioflow/internal/domain/entities"
)

// ITemplateRepository abstracts DynamoDB persistence for per-office
// template overrides. The built-in defaults never touch storage.

type ITemplateRepository interface {
	GetOverride(ctx context.Context, officeID, serviceID string) (entities.ServiceTemplate, bool, error)
	PutOverride(ctx context.Context, officeID string, tpl entities.ServiceTemplate) error
}
