package interfaces

import (
	"context"
	"doctor_app/internal/domain/entities"
)

type ReportPage struct {
	Reports    []entities.Report
	NextCursor string
}

// IReportRepository abstracts DynamoDB persistence for Report.

type IReportRepository interface {
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	ListByPatient(ctx context.Context, patientID string) ([]entities.Report, error)
	ListCompleteByPatient(ctx context.Context, patientID string) ([]entities.Report, error)
	// ListRecentCompleteByDoctor reads doctorId-reportDate-index newest first.
	ListRecentCompleteByDoctor(ctx context.Context, doctorID string, page PageRequest) (ReportPage, error)
}
