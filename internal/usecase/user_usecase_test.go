package usecase

import (
	"context"
	"errors"
	"testing"

	"doctor_app/internal/domain/entities"
	mock_interfaces "doctor_app/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_GetByEmail(t *testing.T) {
	t.Run("blank email", func(t *testing.T) {
		uc := NewUserUseCase(nil, "default")
		if _, err := uc.GetByEmail(context.Background(), " "); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("lower-cases before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "default")

		repo.EXPECT().GetByEmail(gomock.Any(), "doc@example.com").Return(entities.User{UserID: "u-1"}, nil)

		u, err := uc.GetByEmail(context.Background(), "Doc@Example.com")
		if err != nil || u.UserID != "u-1" {
			t.Fatalf("unexpected result: %+v %v", u, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "default")

		repo.EXPECT().GetByEmail(gomock.Any(), "x@example.com").Return(entities.User{}, nil)

		if _, err := uc.GetByEmail(context.Background(), "x@example.com"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo, "default")
	uc.now = fixedClock

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u entities.User) (entities.User, error) {
			if u.UserID == "" || u.Email != "doc@example.com" || u.CreatedAt == "" {
				t.Fatalf("unexpected user: %+v", u)
			}
			return u, nil
		},
	)

	if _, err := uc.CreateUser(context.Background(), entities.User{Email: "DOC@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserUseCase_UpdateDefaultTemplate(t *testing.T) {
	validation := []struct {
		name                    string
		userID, email, template string
		want                    error
	}{
		{"missing user", "", "a@b.c", "soap", ErrInvalidUserID},
		{"missing email", "u-1", "", "soap", ErrInvalidEmail},
		{"missing template", "u-1", "a@b.c", " ", ErrInvalidTemplate},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewUserUseCase(nil, "default")
			if _, err := uc.UpdateDefaultTemplate(context.Background(), tc.userID, tc.email, tc.template); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("mismatch is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "default")
		repo.EXPECT().UpdateDefaultTemplate(gomock.Any(), "u-1", "a@b.c", "soap").Return(entities.User{}, nil)

		if _, err := uc.UpdateDefaultTemplate(context.Background(), "u-1", "A@B.c", "soap"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "default")
		repo.EXPECT().UpdateDefaultTemplate(gomock.Any(), "u-1", "a@b.c", "soap").
			Return(entities.User{UserID: "u-1", DefaultTemplate: "soap"}, nil)

		u, err := uc.UpdateDefaultTemplate(context.Background(), "u-1", "a@b.c", "soap")
		if err != nil || u.DefaultTemplate != "soap" {
			t.Fatalf("unexpected result: %+v %v", u, err)
		}
	})
}

func TestUserUseCase_RegisterFromSignup(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		uc := NewUserUseCase(nil, "default")
		if _, err := uc.RegisterFromSignup(context.Background(), SignupAttributes{Sub: "s-1"}); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("creates active user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "soap")
		uc.now = fixedClock

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				want := entities.User{
					UserID:          u.UserID,
					Email:           "new@example.com",
					DefaultTemplate: "soap",
					CognitoUserID:   "sub-1",
					Name:            "Dr New",
					PhoneNumber:     "+15550100",
					IsActive:        true,
					Status:          "ACTIVE",
					CreatedAt:       "2024-05-01T10:00:00.123456Z",
					UpdatedAt:       "2024-05-01T10:00:00.123456Z",
				}
				if u.UserID == "" || u != want {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)

		_, err := uc.RegisterFromSignup(context.Background(), SignupAttributes{
			Email: "New@Example.com", Sub: "sub-1", Name: "Dr New", PhoneNumber: "+15550100",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "soap")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("db"))

		if _, err := uc.RegisterFromSignup(context.Background(), SignupAttributes{Email: "a@b.c"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
