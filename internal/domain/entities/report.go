package entities

// ReportStatus is fixed once, when the report is created.
type ReportStatus string

const (
	ReportStatusPending               ReportStatus = "Pending"
	ReportStatusAwaitingTranscription ReportStatus = "Awaiting Transcription"
	ReportStatusAwaitingReportData    ReportStatus = "Awaiting Report Data"
	ReportStatusFailed                ReportStatus = "failed"
	ReportStatusComplete              ReportStatus = "Complete"
)

const DefaultReportType = "Unknown"

// Report is a dictated medical report.
//
// Storage model (DynamoDB, DoctorApp_Reports):
//   - PK: reportId
//   - GSI patientId-index: patientId
//   - GSI doctorId-reportDate-index: doctorId + reportDate
//
// Transcription, ReportData, AdditionalNotes and BillingData are opaque JSON
// values produced by upstream processing; only their presence matters here.
type Report struct {
	ReportID        string       `json:"reportId"`
	PatientID       string       `json:"patientId"`
	DoctorID        string       `json:"doctorId"`
	AudioFile       string       `json:"audioFile"`
	Transcription   any          `json:"transcription"`
	ReportData      any          `json:"reportData"`
	AdditionalNotes any          `json:"additionalNotes"`
	ReportDate      string       `json:"reportDate"`
	ReportType      string       `json:"reportType"`
	BillingData     any          `json:"billingData"`
	CurrentStatus   ReportStatus `json:"currentStatus"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt"`
}

// DeriveReportStatus applies the processing pipeline order:
// transcription, then report data, then billing data.
func DeriveReportStatus(hasTranscription, hasReportData, hasBillingData bool) ReportStatus {
	switch {
	case !hasTranscription:
		return ReportStatusAwaitingTranscription
	case !hasReportData:
		return ReportStatusAwaitingReportData
	case !hasBillingData:
		return ReportStatusFailed
	default:
		return ReportStatusComplete
	}
}

// StatusFromContent derives the status from the report's own fields.
func (r Report) StatusFromContent() ReportStatus {
	return DeriveReportStatus(!IsBlank(r.Transcription), !IsBlank(r.ReportData), !IsBlank(r.BillingData))
}

// IsBlank reports whether a decoded JSON value counts as absent: nil, false,
// zero, or an empty string, object or array.
func IsBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	case int64:
		return t == 0
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

// PatientReport is a report joined with its patient's identity fields.
type PatientReport struct {
	DoctorID      string       `json:"doctorId"`
	PatientID     string       `json:"patientId"`
	DateOfBirth   string       `json:"dateOfBirth"`
	Email         string       `json:"email"`
	Name          string       `json:"name"`
	Gender        string       `json:"gender"`
	ReportID      string       `json:"reportId"`
	CurrentStatus ReportStatus `json:"currentStatus"`
	ReportType    string       `json:"reportType"`
	UpdatedAt     string       `json:"updatedAt"`
	ReportDate    string       `json:"reportDate"`
}

// JoinPatientReport combines a report with its patient. A zero Patient (the
// patient was deleted) leaves the identity fields empty.
func JoinPatientReport(p Patient, r Report) PatientReport {
	return PatientReport{
		DoctorID:      r.DoctorID,
		PatientID:     r.PatientID,
		DateOfBirth:   p.DateOfBirth,
		Email:         p.Email,
		Name:          p.Name,
		Gender:        p.Gender,
		ReportID:      r.ReportID,
		CurrentStatus: r.CurrentStatus,
		ReportType:    r.ReportType,
		UpdatedAt:     r.UpdatedAt,
		ReportDate:    r.ReportDate,
	}
}
