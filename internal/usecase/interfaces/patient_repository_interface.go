package interfaces

import (
	"context"
	"doctor_app/internal/domain/entities"
)

// PatientPage is one page of a doctor's patients together with the index the
// page was read from.
type PatientPage struct {
	Patients   []entities.Patient
	NextCursor string
	IndexName  string
}

// IPatientRepository abstracts DynamoDB persistence for Patient.
//
// Lookups that find nothing return a zero Patient and a nil error.

type IPatientRepository interface {
	Create(ctx context.Context, p entities.Patient) (entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Patient, error)
	ListAll(ctx context.Context) ([]entities.Patient, error)
	ListByDoctor(ctx context.Context, doctorID string, sortKey entities.PatientSortKey, order entities.SortOrder, page PageRequest) (PatientPage, error)
	UpdateLatestReport(ctx context.Context, patientID, reportID, reportDate string) (bool, error)
}
