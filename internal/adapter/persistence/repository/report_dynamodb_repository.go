package repository

import (
	"context"

	"doctor_app/internal/adapter/persistence/table"
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"
)

type reportItem struct {
	ReportID        string `dynamodbav:"reportId"`
	PatientID       string `dynamodbav:"patientId"`
	DoctorID        string `dynamodbav:"doctorId"`
	AudioFile       string `dynamodbav:"audioFile"`
	Transcription   any    `dynamodbav:"transcription"`
	ReportData      any    `dynamodbav:"reportData"`
	AdditionalNotes any    `dynamodbav:"additionalNotes"`
	ReportDate      string `dynamodbav:"reportDate"`
	ReportType      string `dynamodbav:"reportType"`
	BillingData     any    `dynamodbav:"billingData"`
	CurrentStatus   string `dynamodbav:"currentStatus"`
	CreatedAt       string `dynamodbav:"createdAt"`
	UpdatedAt       string `dynamodbav:"updatedAt"`
}

// ReportDynamoRepository persists Report entities in DynamoDB.
//
// Table requirements:
//   - PK: reportId (string)
//   - GSI patientId-index: patientId
//   - GSI doctorId-reportDate-index: doctorId (hash) + reportDate (range)

type ReportDynamoRepository struct {
	table *table.Table
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(api table.DynamoAPI, tableName string) *ReportDynamoRepository {
	return &ReportDynamoRepository{table: table.New(api, tableName)}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, rep entities.Report) (entities.Report, error) {
	if err := r.table.Put(ctx, toReportItem(rep)); err != nil {
		return entities.Report{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	var it reportItem
	found, err := r.table.Get(ctx, table.Key{Name: "reportId", Value: id}, &it)
	if err != nil || !found {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

func (r *ReportDynamoRepository) ListByPatient(ctx context.Context, patientID string) ([]entities.Report, error) {
	return r.listByPatient(ctx, patientID, nil)
}

func (r *ReportDynamoRepository) ListCompleteByPatient(ctx context.Context, patientID string) ([]entities.Report, error) {
	return r.listByPatient(ctx, patientID, statusFilter(string(entities.ReportStatusComplete)))
}

func (r *ReportDynamoRepository) listByPatient(ctx context.Context, patientID string, filter *table.Filter) ([]entities.Report, error) {
	var items []reportItem
	err := r.table.QueryAll(ctx, table.QueryInput{
		IndexName: reportsByPatientIndex,
		KeyName:   "patientId",
		KeyValue:  patientID,
		Filter:    filter,
	}, &items)
	if err != nil {
		return nil, err
	}
	return fromReportItems(items), nil
}

func (r *ReportDynamoRepository) ListRecentCompleteByDoctor(ctx context.Context, doctorID string, page interfaces.PageRequest) (interfaces.ReportPage, error) {
	var items []reportItem
	p, err := r.table.Query(ctx, table.QueryInput{
		IndexName:  reportsByDoctorDateIndex,
		KeyName:    "doctorId",
		KeyValue:   doctorID,
		Filter:     statusFilter(string(entities.ReportStatusComplete)),
		Descending: true,
		Limit:      page.Limit,
		Cursor:     page.Cursor,
	}, &items)
	if err != nil {
		return interfaces.ReportPage{}, err
	}
	return interfaces.ReportPage{Reports: fromReportItems(items), NextCursor: p.NextCursor}, nil
}

func toReportItem(r entities.Report) reportItem {
	return reportItem{
		ReportID:        r.ReportID,
		PatientID:       r.PatientID,
		DoctorID:        r.DoctorID,
		AudioFile:       r.AudioFile,
		Transcription:   r.Transcription,
		ReportData:      r.ReportData,
		AdditionalNotes: r.AdditionalNotes,
		ReportDate:      r.ReportDate,
		ReportType:      r.ReportType,
		BillingData:     r.BillingData,
		CurrentStatus:   string(r.CurrentStatus),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func fromReportItem(it reportItem) entities.Report {
	return entities.Report{
		ReportID:        it.ReportID,
		PatientID:       it.PatientID,
		DoctorID:        it.DoctorID,
		AudioFile:       it.AudioFile,
		Transcription:   it.Transcription,
		ReportData:      it.ReportData,
		AdditionalNotes: it.AdditionalNotes,
		ReportDate:      it.ReportDate,
		ReportType:      it.ReportType,
		BillingData:     it.BillingData,
		CurrentStatus:   entities.ReportStatus(it.CurrentStatus),
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}

func fromReportItems(items []reportItem) []entities.Report {
	out := make([]entities.Report, 0, len(items))
	for _, it := range items {
		out = append(out, fromReportItem(it))
	}
	return out
}
