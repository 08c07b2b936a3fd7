package response

import "doctor_app/internal/domain/entities"

type TemplateUpdatedResponse struct {
	Message     string        `json:"message"`
	UserID      string        `json:"userId"`
	UpdatedItem entities.User `json:"updatedItem"`
}

func FromTemplateUpdate(u entities.User) TemplateUpdatedResponse {
	return TemplateUpdatedResponse{Message: "Template updated successfully", UserID: u.UserID, UpdatedItem: u}
}

// MessageResponse is the body of simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
