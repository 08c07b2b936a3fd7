package entities

const UserStatusActive = "ACTIVE"

// User is a practice account, created at signup.
//
// Storage model (DynamoDB, DoctorApp_users):
//   - PK: userId
//   - GSI email-index: email (always lower-case)
type User struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	DefaultTemplate string `json:"defaultTemplate,omitempty"`
	CognitoUserID   string `json:"cognitoUserId,omitempty"`
	Name            string `json:"name,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	IsActive        bool   `json:"isActive"`
	Status          string `json:"status,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}
