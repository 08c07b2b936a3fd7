package interfaces

import (
	"context"
	"doctor_app/internal/domain/entities"
)

type ITemplateRepository interface {
	ListAll(ctx context.Context) ([]entities.Template, error)
}
