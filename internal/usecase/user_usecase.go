package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidUserID   = errors.New("invalid userId")
	ErrInvalidTemplate = errors.New("invalid defaultTemplate")
)

// SignupAttributes are the identity-provider attributes of a confirmed user.
type SignupAttributes struct {
	Email       string
	Sub         string
	Name        string
	PhoneNumber string
}

// IUserUseCase exposes user account operations.

type IUserUseCase interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	UpdateDefaultTemplate(ctx context.Context, userID, email, template string) (entities.User, error)
	RegisterFromSignup(ctx context.Context, attrs SignupAttributes) (entities.User, error)
}

type UserUseCase struct {
	repo            interfaces.IUserRepository
	defaultTemplate string
	now             func() time.Time
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, defaultTemplate string) *UserUseCase {
	return &UserUseCase{repo: repo, defaultTemplate: defaultTemplate, now: time.Now}
}

func (u *UserUseCase) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return entities.User{}, ErrInvalidEmail
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if user.UserID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

// CreateUser stores the user as given, assigning a userId when absent.
func (u *UserUseCase) CreateUser(ctx context.Context, user entities.User) (entities.User, error) {
	if strings.TrimSpace(user.UserID) == "" {
		user.UserID = uuid.NewString()
	}
	user.Email = normalizeEmail(user.Email)
	now := entities.FormatTimestamp(u.now())
	if user.CreatedAt == "" {
		user.CreatedAt = now
	}
	if user.UpdatedAt == "" {
		user.UpdatedAt = now
	}

	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	log.Info().Str("component", "user.usecase").Str("userId", created.UserID).Msg("user added")
	return created, nil
}

func (u *UserUseCase) UpdateDefaultTemplate(ctx context.Context, userID, email, template string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidUserID
	}
	email = normalizeEmail(email)
	if email == "" {
		return entities.User{}, ErrInvalidEmail
	}
	if strings.TrimSpace(template) == "" {
		return entities.User{}, ErrInvalidTemplate
	}

	updated, err := u.repo.UpdateDefaultTemplate(ctx, userID, email, template)
	if err != nil {
		return entities.User{}, err
	}
	if updated.UserID == "" {
		return entities.User{}, ErrUserNotFound
	}
	log.Info().Str("component", "user.usecase").Str("userId", userID).Str("template", template).Msg("default template updated")
	return updated, nil
}

// RegisterFromSignup creates the account for a freshly confirmed identity.
func (u *UserUseCase) RegisterFromSignup(ctx context.Context, attrs SignupAttributes) (entities.User, error) {
	email := normalizeEmail(attrs.Email)
	if email == "" {
		return entities.User{}, ErrInvalidEmail
	}

	now := entities.FormatTimestamp(u.now())
	user := entities.User{
		UserID:          uuid.NewString(),
		Email:           email,
		DefaultTemplate: u.defaultTemplate,
		CognitoUserID:   attrs.Sub,
		Name:            attrs.Name,
		PhoneNumber:     attrs.PhoneNumber,
		IsActive:        true,
		Status:          entities.UserStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	log.Info().Str("component", "user.usecase").Str("userId", created.UserID).Msg("user registered from signup")
	return created, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
