package repository

import "doctor_app/internal/adapter/persistence/table"

// Secondary indexes. Names must match the provisioned tables.
const (
	patientsByDoctorIndex           = "doctorId-index"
	patientsByDoctorNameIndex       = "doctorId-name-index"
	patientsByDoctorLatestDateIndex = "doctorId-latestReportDate-index"

	reportsByPatientIndex    = "patientId-index"
	reportsByDoctorDateIndex = "doctorId-reportDate-index"

	usersByEmailIndex = "email-index"
)

const currentStatusAttr = "currentStatus"

func statusFilter(status string) *table.Filter {
	return &table.Filter{Name: currentStatusAttr, Value: status}
}
