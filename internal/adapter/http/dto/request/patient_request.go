package request

import "doctor_app/internal/domain/entities"

type PatientRequest struct {
	PatientID   string `json:"patientId"`
	DoctorID    string `json:"doctorId"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	Avatar      string `json:"avatar"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (r PatientRequest) ToEntity() entities.Patient {
	return entities.Patient{
		PatientID:   r.PatientID,
		DoctorID:    r.DoctorID,
		Name:        r.Name,
		DateOfBirth: r.DateOfBirth,
		Email:       r.Email,
		Gender:      r.Gender,
		Address:     r.Address,
		Avatar:      r.Avatar,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
