package repository

import (
	"context"
	"strings"

	"doctor_app/internal/adapter/persistence/table"
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"
)

type userItem struct {
	UserID          string `dynamodbav:"userId"`
	Email           string `dynamodbav:"email,omitempty"`
	DefaultTemplate string `dynamodbav:"defaultTemplate,omitempty"`
	CognitoUserID   string `dynamodbav:"cognitoUserId,omitempty"`
	Name            string `dynamodbav:"name,omitempty"`
	PhoneNumber     string `dynamodbav:"phoneNumber,omitempty"`
	IsActive        bool   `dynamodbav:"isActive"`
	Status          string `dynamodbav:"status,omitempty"`
	CreatedAt       string `dynamodbav:"createdAt,omitempty"`
	UpdatedAt       string `dynamodbav:"updatedAt,omitempty"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: userId (string)
//   - GSI email-index: email
//
// Emails are lower-cased on write and on lookup.

type UserDynamoRepository struct {
	table *table.Table
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(api table.DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{table: table.New(api, tableName)}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	u.Email = strings.ToLower(u.Email)
	if err := r.table.Put(ctx, toUserItem(u)); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var items []userItem
	_, err := r.table.Query(ctx, table.QueryInput{
		IndexName: usersByEmailIndex,
		KeyName:   "email",
		KeyValue:  strings.ToLower(email),
	}, &items)
	if err != nil || len(items) == 0 {
		return entities.User{}, err
	}
	return fromUserItem(items[0]), nil
}

func (r *UserDynamoRepository) UpdateDefaultTemplate(ctx context.Context, userID, email, template string) (entities.User, error) {
	var it userItem
	found, err := r.table.Update(ctx, table.UpdateInput{
		Key:        table.Key{Name: "userId", Value: userID},
		Set:        map[string]any{"defaultTemplate": template},
		Conditions: []table.Filter{{Name: "email", Value: strings.ToLower(email)}},
	}, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		UserID:          u.UserID,
		Email:           u.Email,
		DefaultTemplate: u.DefaultTemplate,
		CognitoUserID:   u.CognitoUserID,
		Name:            u.Name,
		PhoneNumber:     u.PhoneNumber,
		IsActive:        u.IsActive,
		Status:          u.Status,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		UserID:          it.UserID,
		Email:           it.Email,
		DefaultTemplate: it.DefaultTemplate,
		CognitoUserID:   it.CognitoUserID,
		Name:            it.Name,
		PhoneNumber:     it.PhoneNumber,
		IsActive:        it.IsActive,
		Status:          it.Status,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}
