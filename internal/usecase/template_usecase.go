package usecase

import (
	"context"
	"errors"

	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"
)

var ErrTemplatesNotFound = errors.New("no templates found")

type ITemplateUseCase interface {
	ListAll(ctx context.Context) ([]entities.Template, error)
}

type TemplateUseCase struct {
	repo interfaces.ITemplateRepository
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(repo interfaces.ITemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

func (u *TemplateUseCase) ListAll(ctx context.Context) ([]entities.Template, error) {
	templates, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, ErrTemplatesNotFound
	}
	return templates, nil
}
