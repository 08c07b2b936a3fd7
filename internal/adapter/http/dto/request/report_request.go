package request

import "doctor_app/internal/domain/entities"

// ReportRequest carries a new report. The content fields are free-form JSON.
type ReportRequest struct {
	ReportID        string `json:"reportId"`
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	AudioFile       string `json:"audioFile"`
	Transcription   any    `json:"transcription"`
	ReportData      any    `json:"reportData"`
	AdditionalNotes any    `json:"additionalNotes"`
	BillingData     any    `json:"billingData"`
	ReportDate      string `json:"reportDate"`
	ReportType      string `json:"reportType"`
}

func (r ReportRequest) ToEntity() entities.Report {
	return entities.Report{
		ReportID:        r.ReportID,
		PatientID:       r.PatientID,
		DoctorID:        r.DoctorID,
		AudioFile:       r.AudioFile,
		Transcription:   r.Transcription,
		ReportData:      r.ReportData,
		AdditionalNotes: r.AdditionalNotes,
		BillingData:     r.BillingData,
		ReportDate:      r.ReportDate,
		ReportType:      r.ReportType,
	}
}
