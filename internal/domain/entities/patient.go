package entities

// Patient belongs to exactly one doctor.
//
// Storage model (DynamoDB, doctorApp_patients):
//   - PK: patientId
//   - GSI doctorId-index: doctorId
//   - GSI doctorId-name-index: doctorId + name
//   - GSI doctorId-latestReportDate-index: doctorId + latestReportDate
//
// LatestReportID / LatestReportDate are written after a report is created,
// as a separate non-atomic update.
type Patient struct {
	PatientID        string `json:"patientId"`
	DoctorID         string `json:"doctorId"`
	Name             string `json:"name"`
	DateOfBirth      string `json:"dateOfBirth"`
	Email            string `json:"email"`
	Gender           string `json:"gender"`
	Address          string `json:"address,omitempty"`
	Avatar           string `json:"avatar,omitempty"`
	LatestReportID   string `json:"latestReportId,omitempty"`
	LatestReportDate string `json:"latestReportDate,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// PatientSortKey selects the secondary index used to list a doctor's patients.
type PatientSortKey string

const (
	PatientSortNone             PatientSortKey = ""
	PatientSortByName           PatientSortKey = "name"
	PatientSortByLatestReportAt PatientSortKey = "latestReportDate"
)

func (k PatientSortKey) Valid() bool {
	switch k {
	case PatientSortNone, PatientSortByName, PatientSortByLatestReportAt:
		return true
	}
	return false
}

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAscending || o == SortDescending
}
