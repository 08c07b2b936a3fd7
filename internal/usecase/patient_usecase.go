package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const maxPageSize = 1000

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrPatientsNotFound = errors.New("no patients found")
	ErrInvalidPatientID = errors.New("invalid patientId")
	ErrInvalidDoctorID  = errors.New("invalid doctorId")
	ErrInvalidSortKey   = errors.New("invalid sortKey")
	ErrInvalidSortOrder = errors.New("invalid sortOrder")
	ErrInvalidPageSize  = errors.New("invalid pageSize")
)

// PatientListQuery lists one page of a doctor's patients. PageSize 0 means
// no limit; an empty SortOrder means ascending.
type PatientListQuery struct {
	DoctorID  string
	SortKey   entities.PatientSortKey
	SortOrder entities.SortOrder
	PageSize  int
	Cursor    string
}

type PatientList struct {
	Patients   []entities.Patient
	NextCursor string
	UsedIndex  string
	SortKey    entities.PatientSortKey
	SortOrder  entities.SortOrder
}

// IPatientUseCase exposes patient operations.

type IPatientUseCase interface {
	CreatePatient(ctx context.Context, p entities.Patient) (entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	ListAll(ctx context.Context) ([]entities.Patient, error)
	ListByDoctor(ctx context.Context, q PatientListQuery) (PatientList, error)
}

type PatientUseCase struct {
	repo interfaces.IPatientRepository
	now  func() time.Time
}

var _ IPatientUseCase = (*PatientUseCase)(nil)

func NewPatientUseCase(repo interfaces.IPatientRepository) *PatientUseCase {
	return &PatientUseCase{repo: repo, now: time.Now}
}

// CreatePatient assigns a patientId and timestamps when the caller did not
// supply them. An existing patientId is overwritten (last write wins).
func (u *PatientUseCase) CreatePatient(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	if strings.TrimSpace(p.PatientID) == "" {
		p.PatientID = uuid.NewString()
	}
	now := entities.FormatTimestamp(u.now())
	if p.CreatedAt == "" {
		p.CreatedAt = now
	}
	if p.UpdatedAt == "" {
		p.UpdatedAt = now
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Patient{}, err
	}
	log.Info().Str("component", "patient.usecase").Str("patientId", created.PatientID).Msg("patient added")
	return created, nil
}

func (u *PatientUseCase) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Patient{}, ErrInvalidPatientID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}
	if p.PatientID == "" {
		return entities.Patient{}, ErrPatientNotFound
	}
	return p, nil
}

func (u *PatientUseCase) ListAll(ctx context.Context) ([]entities.Patient, error) {
	patients, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, ErrPatientsNotFound
	}
	return patients, nil
}

func (u *PatientUseCase) ListByDoctor(ctx context.Context, q PatientListQuery) (PatientList, error) {
	q.DoctorID = strings.TrimSpace(q.DoctorID)
	if q.DoctorID == "" {
		return PatientList{}, ErrInvalidDoctorID
	}
	if !q.SortKey.Valid() {
		return PatientList{}, ErrInvalidSortKey
	}
	if q.SortOrder == "" {
		q.SortOrder = entities.SortAscending
	}
	if !q.SortOrder.Valid() {
		return PatientList{}, ErrInvalidSortOrder
	}
	if q.PageSize < 0 || q.PageSize > maxPageSize {
		return PatientList{}, ErrInvalidPageSize
	}

	page, err := u.repo.ListByDoctor(ctx, q.DoctorID, q.SortKey, q.SortOrder, interfaces.PageRequest{
		Limit:  int32(q.PageSize),
		Cursor: q.Cursor,
	})
	if err != nil {
		return PatientList{}, err
	}

	log.Debug().
		Str("component", "patient.usecase").
		Str("doctorId", q.DoctorID).
		Str("index", page.IndexName).
		Int("count", len(page.Patients)).
		Msg("patients listed")

	patients := page.Patients
	if patients == nil {
		patients = []entities.Patient{}
	}
	return PatientList{
		Patients:   patients,
		NextCursor: page.NextCursor,
		UsedIndex:  page.IndexName,
		SortKey:    q.SortKey,
		SortOrder:  q.SortOrder,
	}, nil
}
