package request

import "doctor_app/internal/domain/entities"

type UserRequest struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	DefaultTemplate string `json:"defaultTemplate"`
	CognitoUserID   string `json:"cognitoUserId"`
	Name            string `json:"name"`
	PhoneNumber     string `json:"phoneNumber"`
	IsActive        bool   `json:"isActive"`
	Status          string `json:"status"`
}

func (r UserRequest) ToEntity() entities.User {
	return entities.User{
		UserID:          r.UserID,
		Email:           r.Email,
		DefaultTemplate: r.DefaultTemplate,
		CognitoUserID:   r.CognitoUserID,
		Name:            r.Name,
		PhoneNumber:     r.PhoneNumber,
		IsActive:        r.IsActive,
		Status:          r.Status,
	}
}

// TemplatePreferenceRequest sets a user's default report template. Email
// must match the stored user.
type TemplatePreferenceRequest struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	DefaultTemplate string `json:"defaultTemplate"`
}
