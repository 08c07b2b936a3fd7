package repository

import (
	"context"

	"doctor_app/internal/adapter/persistence/table"
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"
)

// TemplateDynamoRepository reads report templates. Templates are authored
// outside this service, so items are returned as stored.

type TemplateDynamoRepository struct {
	table *table.Table
}

var _ interfaces.ITemplateRepository = (*TemplateDynamoRepository)(nil)

func NewTemplateDynamoRepository(api table.DynamoAPI, tableName string) *TemplateDynamoRepository {
	return &TemplateDynamoRepository{table: table.New(api, tableName)}
}

func (r *TemplateDynamoRepository) ListAll(ctx context.Context) ([]entities.Template, error) {
	var items []map[string]any
	if err := r.table.Scan(ctx, nil, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Template, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Template(it))
	}
	return out, nil
}
