package interfaces

import (
	"context"
	"doctor_app/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	// UpdateDefaultTemplate only writes when userId exists and its email
	// matches; otherwise it returns a zero User.
	UpdateDefaultTemplate(ctx context.Context, userID, email, template string) (entities.User, error)
}
