package usecase

import (
	"context"
	"errors"
	"testing"

	"doctor_app/internal/domain/entities"
	mock_interfaces "doctor_app/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTemplateUseCase_ListAll(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Template{}, nil)

		if _, err := uc.ListAll(context.Background()); !errors.Is(err, ErrTemplatesNotFound) {
			t.Fatalf("expected ErrTemplatesNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo)
		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListAll(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITemplateRepository(ctrl)
		uc := NewTemplateUseCase(repo)
		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Template{{"templateId": "t-1"}}, nil)

		got, err := uc.ListAll(context.Background())
		if err != nil || len(got) != 1 || got[0].ID() != "t-1" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}
