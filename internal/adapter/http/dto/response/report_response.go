package response

import (
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase"
)

type ReportSavedResponse struct {
	Message string          `json:"message"`
	Report  entities.Report `json:"report"`
}

func FromSavedReport(r entities.Report) ReportSavedResponse {
	return ReportSavedResponse{Message: "Report saved successfully", Report: r}
}

type ReportResponse struct {
	Message  string          `json:"message"`
	ReportID string          `json:"reportId"`
	Report   entities.Report `json:"report"`
}

func FromReport(r entities.Report) ReportResponse {
	return ReportResponse{Message: "Report retrieved successfully", ReportID: r.ReportID, Report: r}
}

type PatientReportsResponse struct {
	Message   string            `json:"message"`
	PatientID string            `json:"patientId"`
	Reports   []entities.Report `json:"reports"`
}

func FromPatientReports(patientID string, reports []entities.Report) PatientReportsResponse {
	return PatientReportsResponse{Message: "Reports retrieved successfully", PatientID: patientID, Reports: reports}
}

// DoctorReportsResponse is the merged report listing for a doctor.
type DoctorReportsResponse struct {
	PatientReports   []entities.PatientReport `json:"patientReports"`
	Count            int                      `json:"count"`
	PageSize         int                      `json:"pageSize"`
	HasMore          bool                     `json:"hasMore"`
	LastEvaluatedKey string                   `json:"lastEvaluatedKey,omitempty"`
}

func FromPatientReportPage(page usecase.PatientReportPage) DoctorReportsResponse {
	records := page.PatientReports
	if records == nil {
		records = []entities.PatientReport{}
	}
	return DoctorReportsResponse{
		PatientReports:   records,
		Count:            len(records),
		PageSize:         page.PageSize,
		HasMore:          page.NextCursor != "",
		LastEvaluatedKey: page.NextCursor,
	}
}
