package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// patientGroupSize is how many patients' report queries are issued per group
// by the patient-first merge.
const patientGroupSize = 10

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrReportsNotFound   = errors.New("no reports found")
	ErrInvalidReportID   = errors.New("invalid reportId")
	ErrInvalidReportDate = errors.New("invalid reportDate")

	// ErrMalformedReportDate rejects a caller-supplied reportDate at creation.
	// Stored reports must stay sortable by the doctor report listings.
	ErrMalformedReportDate = errors.New("reportDate must match YYYY-MM-DDTHH:MM:SS.ffffffZ")
)

// DoctorReportsQuery pages through a doctor's completed reports. PageSize 0
// selects the configured default.
type DoctorReportsQuery struct {
	DoctorID string
	PageSize int
	Cursor   string
}

type PatientReportPage struct {
	PatientReports []entities.PatientReport
	PageSize       int
	NextCursor     string
}

// IReportUseCase exposes report operations.
//
//   - CreateReport stores a report and points the patient at it.
//   - ReportsByDoctor walks the doctor's patients, then their reports.
//   - RecentReportsByDoctor walks the doctor's reports by date, then fetches patients.

type IReportUseCase interface {
	CreateReport(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	ListByPatient(ctx context.Context, patientID string) ([]entities.Report, error)
	ReportsByDoctor(ctx context.Context, q DoctorReportsQuery) (PatientReportPage, error)
	RecentReportsByDoctor(ctx context.Context, q DoctorReportsQuery) (PatientReportPage, error)
}

type ReportUseCase struct {
	reports         interfaces.IReportRepository
	patients        interfaces.IPatientRepository
	defaultPageSize int
	now             func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(reports interfaces.IReportRepository, patients interfaces.IPatientRepository, defaultPageSize int) *ReportUseCase {
	return &ReportUseCase{
		reports:         reports,
		patients:        patients,
		defaultPageSize: defaultPageSize,
		now:             time.Now,
	}
}

// CreateReport fills defaults, derives the status from content, stores the
// report and then records it as the patient's latest report. The second
// write is best effort: its failure is logged and the report is still
// returned.
func (u *ReportUseCase) CreateReport(ctx context.Context, r entities.Report) (entities.Report, error) {
	now := entities.FormatTimestamp(u.now())

	if r.ReportDate != "" {
		if _, err := entities.ParseReportDate(r.ReportDate); err != nil {
			return entities.Report{}, fmt.Errorf("%w: %v", ErrMalformedReportDate, err)
		}
	}
	if strings.TrimSpace(r.ReportID) == "" {
		r.ReportID = uuid.NewString()
	}
	if r.Transcription == nil {
		r.Transcription = ""
	}
	if r.ReportData == nil {
		r.ReportData = ""
	}
	if r.AdditionalNotes == nil {
		r.AdditionalNotes = ""
	}
	if r.BillingData == nil {
		r.BillingData = map[string]any{}
	}
	if r.ReportType == "" {
		r.ReportType = entities.DefaultReportType
	}
	if r.ReportDate == "" {
		r.ReportDate = now
	}
	r.CurrentStatus = r.StatusFromContent()
	r.CreatedAt = now
	r.UpdatedAt = now

	created, err := u.reports.Create(ctx, r)
	if err != nil {
		return entities.Report{}, err
	}
	log.Info().
		Str("component", "report.usecase").
		Str("reportId", created.ReportID).
		Str("status", string(created.CurrentStatus)).
		Msg("report added")

	found, err := u.patients.UpdateLatestReport(ctx, created.PatientID, created.ReportID, created.CreatedAt)
	switch {
	case err != nil:
		log.Error().Err(err).
			Str("component", "report.usecase").
			Str("patientId", created.PatientID).
			Msg("updating patient latest report failed")
	case !found:
		log.Warn().
			Str("component", "report.usecase").
			Str("patientId", created.PatientID).
			Msg("patient not found, latest report not recorded")
	}

	return created, nil
}

func (u *ReportUseCase) GetByID(ctx context.Context, id string) (entities.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Report{}, ErrInvalidReportID
	}

	r, err := u.reports.GetByID(ctx, id)
	if err != nil {
		return entities.Report{}, err
	}
	if r.ReportID == "" {
		return entities.Report{}, ErrReportNotFound
	}
	return r, nil
}

func (u *ReportUseCase) ListByPatient(ctx context.Context, patientID string) ([]entities.Report, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}

	reports, err := u.reports.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrReportsNotFound
	}
	return reports, nil
}

func (u *ReportUseCase) ReportsByDoctor(ctx context.Context, q DoctorReportsQuery) (PatientReportPage, error) {
	q, err := u.normalize(q)
	if err != nil {
		return PatientReportPage{}, err
	}

	page, err := u.patients.ListByDoctor(ctx, q.DoctorID, entities.PatientSortNone, entities.SortAscending, interfaces.PageRequest{
		Limit:  int32(q.PageSize),
		Cursor: q.Cursor,
	})
	if err != nil {
		return PatientReportPage{}, err
	}

	byID := make(map[string]entities.Patient, len(page.Patients))
	ids := make([]string, 0, len(page.Patients))
	for _, p := range page.Patients {
		if _, dup := byID[p.PatientID]; dup {
			continue
		}
		byID[p.PatientID] = p
		ids = append(ids, p.PatientID)
	}

	var joined []entities.PatientReport
	for start := 0; start < len(ids); start += patientGroupSize {
		end := min(start+patientGroupSize, len(ids))
		for _, id := range ids[start:end] {
			reports, err := u.reports.ListCompleteByPatient(ctx, id)
			if err != nil {
				return PatientReportPage{}, err
			}
			for _, r := range reports {
				if r.CurrentStatus != entities.ReportStatusComplete {
					continue
				}
				joined = append(joined, entities.JoinPatientReport(byID[id], r))
			}
		}
	}

	if err := sortByReportDateDesc(joined); err != nil {
		return PatientReportPage{}, err
	}

	log.Debug().
		Str("component", "report.usecase").
		Str("doctorId", q.DoctorID).
		Int("patients", len(ids)).
		Int("reports", len(joined)).
		Msg("reports merged patient-first")

	return PatientReportPage{
		PatientReports: nonNil(joined),
		PageSize:       q.PageSize,
		NextCursor:     page.NextCursor,
	}, nil
}

func (u *ReportUseCase) RecentReportsByDoctor(ctx context.Context, q DoctorReportsQuery) (PatientReportPage, error) {
	q, err := u.normalize(q)
	if err != nil {
		return PatientReportPage{}, err
	}

	page, err := u.reports.ListRecentCompleteByDoctor(ctx, q.DoctorID, interfaces.PageRequest{
		Limit:  int32(q.PageSize),
		Cursor: q.Cursor,
	})
	if err != nil {
		return PatientReportPage{}, err
	}

	reports := make([]entities.Report, 0, len(page.Reports))
	ids := make([]string, 0, len(page.Reports))
	for _, r := range page.Reports {
		if r.CurrentStatus != entities.ReportStatusComplete {
			continue
		}
		reports = append(reports, r)
		ids = append(ids, r.PatientID)
	}

	byID := map[string]entities.Patient{}
	if len(ids) > 0 {
		patients, err := u.patients.GetByIDs(ctx, ids)
		if err != nil {
			return PatientReportPage{}, err
		}
		for _, p := range patients {
			byID[p.PatientID] = p
		}
	}

	joined := make([]entities.PatientReport, 0, len(reports))
	for _, r := range reports {
		joined = append(joined, entities.JoinPatientReport(byID[r.PatientID], r))
	}

	if err := sortByReportDateDesc(joined); err != nil {
		return PatientReportPage{}, err
	}

	log.Debug().
		Str("component", "report.usecase").
		Str("doctorId", q.DoctorID).
		Int("reports", len(joined)).
		Msg("reports merged index-first")

	return PatientReportPage{
		PatientReports: joined,
		PageSize:       q.PageSize,
		NextCursor:     page.NextCursor,
	}, nil
}

func (u *ReportUseCase) normalize(q DoctorReportsQuery) (DoctorReportsQuery, error) {
	q.DoctorID = strings.TrimSpace(q.DoctorID)
	if q.DoctorID == "" {
		return q, ErrInvalidDoctorID
	}
	if q.PageSize == 0 {
		q.PageSize = u.defaultPageSize
	}
	if q.PageSize < 1 || q.PageSize > maxPageSize {
		return q, ErrInvalidPageSize
	}
	return q, nil
}

// sortByReportDateDesc orders newest first. Every reportDate must parse;
// one malformed date fails the whole page.
func sortByReportDateDesc(records []entities.PatientReport) error {
	type dated struct {
		rec entities.PatientReport
		at  time.Time
	}
	tmp := make([]dated, len(records))
	for i, r := range records {
		t, err := entities.ParseReportDate(r.ReportDate)
		if err != nil {
			return fmt.Errorf("%w: report %s: %v", ErrInvalidReportDate, r.ReportID, err)
		}
		tmp[i] = dated{rec: r, at: t}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		return tmp[i].at.After(tmp[j].at)
	})
	for i := range tmp {
		records[i] = tmp[i].rec
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
