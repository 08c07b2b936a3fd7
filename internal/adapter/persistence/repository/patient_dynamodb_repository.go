package repository

import (
	"context"

	"doctor_app/internal/adapter/persistence/table"
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"
)

type patientItem struct {
	PatientID        string `dynamodbav:"patientId"`
	DoctorID         string `dynamodbav:"doctorId"`
	Name             string `dynamodbav:"name"`
	DateOfBirth      string `dynamodbav:"dateOfBirth"`
	Email            string `dynamodbav:"email"`
	Gender           string `dynamodbav:"gender"`
	Address          string `dynamodbav:"address,omitempty"`
	Avatar           string `dynamodbav:"avatar,omitempty"`
	LatestReportID   string `dynamodbav:"latestReportId,omitempty"`
	LatestReportDate string `dynamodbav:"latestReportDate,omitempty"`
	CreatedAt        string `dynamodbav:"createdAt,omitempty"`
	UpdatedAt        string `dynamodbav:"updatedAt,omitempty"`
}

// PatientDynamoRepository persists Patient entities in DynamoDB.
//
// Table requirements:
//   - PK: patientId (string)
//   - GSIs: doctorId-index, doctorId-name-index, doctorId-latestReportDate-index

type PatientDynamoRepository struct {
	table *table.Table
}

var _ interfaces.IPatientRepository = (*PatientDynamoRepository)(nil)

func NewPatientDynamoRepository(api table.DynamoAPI, tableName string) *PatientDynamoRepository {
	return &PatientDynamoRepository{table: table.New(api, tableName)}
}

func (r *PatientDynamoRepository) Create(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	if err := r.table.Put(ctx, toPatientItem(p)); err != nil {
		return entities.Patient{}, err
	}
	return p, nil
}

func (r *PatientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	var it patientItem
	found, err := r.table.Get(ctx, table.Key{Name: "patientId", Value: id}, &it)
	if err != nil || !found {
		return entities.Patient{}, err
	}
	return fromPatientItem(it), nil
}

func (r *PatientDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Patient, error) {
	var items []patientItem
	if err := r.table.BatchGet(ctx, "patientId", ids, &items); err != nil {
		return nil, err
	}
	return fromPatientItems(items), nil
}

func (r *PatientDynamoRepository) ListAll(ctx context.Context) ([]entities.Patient, error) {
	var items []patientItem
	if err := r.table.Scan(ctx, nil, &items); err != nil {
		return nil, err
	}
	return fromPatientItems(items), nil
}

func (r *PatientDynamoRepository) ListByDoctor(
	ctx context.Context,
	doctorID string,
	sortKey entities.PatientSortKey,
	order entities.SortOrder,
	page interfaces.PageRequest,
) (interfaces.PatientPage, error) {
	index := patientIndexFor(sortKey)

	var items []patientItem
	p, err := r.table.Query(ctx, table.QueryInput{
		IndexName:  index,
		KeyName:    "doctorId",
		KeyValue:   doctorID,
		Descending: order == entities.SortDescending,
		Limit:      page.Limit,
		Cursor:     page.Cursor,
	}, &items)
	if err != nil {
		return interfaces.PatientPage{}, err
	}
	return interfaces.PatientPage{
		Patients:   fromPatientItems(items),
		NextCursor: p.NextCursor,
		IndexName:  index,
	}, nil
}

func (r *PatientDynamoRepository) UpdateLatestReport(ctx context.Context, patientID, reportID, reportDate string) (bool, error) {
	return r.table.Update(ctx, table.UpdateInput{
		Key: table.Key{Name: "patientId", Value: patientID},
		Set: map[string]any{
			"latestReportId":   reportID,
			"latestReportDate": reportDate,
		},
	}, nil)
}

func patientIndexFor(sortKey entities.PatientSortKey) string {
	switch sortKey {
	case entities.PatientSortByName:
		return patientsByDoctorNameIndex
	case entities.PatientSortByLatestReportAt:
		return patientsByDoctorLatestDateIndex
	default:
		return patientsByDoctorIndex
	}
}

func toPatientItem(p entities.Patient) patientItem {
	return patientItem{
		PatientID:        p.PatientID,
		DoctorID:         p.DoctorID,
		Name:             p.Name,
		DateOfBirth:      p.DateOfBirth,
		Email:            p.Email,
		Gender:           p.Gender,
		Address:          p.Address,
		Avatar:           p.Avatar,
		LatestReportID:   p.LatestReportID,
		LatestReportDate: p.LatestReportDate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func fromPatientItem(it patientItem) entities.Patient {
	return entities.Patient{
		PatientID:        it.PatientID,
		DoctorID:         it.DoctorID,
		Name:             it.Name,
		DateOfBirth:      it.DateOfBirth,
		Email:            it.Email,
		Gender:           it.Gender,
		Address:          it.Address,
		Avatar:           it.Avatar,
		LatestReportID:   it.LatestReportID,
		LatestReportDate: it.LatestReportDate,
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

func fromPatientItems(items []patientItem) []entities.Patient {
	out := make([]entities.Patient, 0, len(items))
	for _, it := range items {
		out = append(out, fromPatientItem(it))
	}
	return out
}
