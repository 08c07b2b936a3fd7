package response

import (
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase"
)

type PatientCreatedResponse struct {
	Message string           `json:"message"`
	Patient entities.Patient `json:"patient"`
}

func FromCreatedPatient(p entities.Patient) PatientCreatedResponse {
	return PatientCreatedResponse{Message: "Patient created successfully", Patient: p}
}

type PatientResponse struct {
	Patient entities.Patient `json:"patient"`
}

func FromPatient(p entities.Patient) PatientResponse {
	return PatientResponse{Patient: p}
}

type PatientsByDoctorResponse struct {
	Message          string             `json:"message"`
	DoctorID         string             `json:"doctorId"`
	Patients         []entities.Patient `json:"patients"`
	Count            int                `json:"count"`
	HasMore          bool               `json:"hasMore"`
	LastEvaluatedKey string             `json:"lastEvaluatedKey,omitempty"`
	UsedIndex        string             `json:"usedIndex"`
	SortKey          string             `json:"sortKey,omitempty"`
	SortOrder        string             `json:"sortOrder"`
}

func FromPatientList(doctorID string, list usecase.PatientList) PatientsByDoctorResponse {
	patients := list.Patients
	if patients == nil {
		patients = []entities.Patient{}
	}
	return PatientsByDoctorResponse{
		Message:          "Patients retrieved successfully",
		DoctorID:         doctorID,
		Patients:         patients,
		Count:            len(patients),
		HasMore:          list.NextCursor != "",
		LastEvaluatedKey: list.NextCursor,
		UsedIndex:        list.UsedIndex,
		SortKey:          string(list.SortKey),
		SortOrder:        string(list.SortOrder),
	}
}
