package routes

import (
	"net/http"

	"doctor_app/internal/adapter/http/handlers"
)

// Resource templates, as API Gateway reports them in the request.
const (
	PathUser               = "/user"
	PathUserByEmail        = "/user/{emailid}"
	PathPatients           = "/patients"
	PathAddPatient         = "/patients/addpatient"
	PathPatientsByDoctor   = "/patients/{doctorId}"
	PathPatient            = "/patient/{patientId}"
	PathPatientReports     = "/patient/{patientId}/reports"
	PathReports            = "/reports"
	PathReport             = "/reports/{reportId}"
	PathTemplates          = "/templates"
	PathDefaultTemplate    = "/templates/default"
	PathDoctorReports      = "/doctors/{doctorId}/reports"
	PathDoctorRecentReport = "/doctors/{doctorId}/reports/recent"
)

// Route binds one (resource, method) pair to its handler.
type Route struct {
	Resource string
	Method   string
	Handler  handlers.HandlerFunc
}

// Handlers groups the HTTP handlers the route table points at.
type Handlers struct {
	Users     *handlers.UserHandler
	Patients  *handlers.PatientHandler
	Reports   *handlers.ReportHandler
	Templates *handlers.TemplateHandler
}

// Table is the static route table.
func Table(h Handlers) []Route {
	return []Route{
		{PathUserByEmail, http.MethodGet, h.Users.GetUser},
		{PathUserByEmail, http.MethodOptions, h.Users.UserPreflight},
		{PathUser, http.MethodPost, h.Users.CreateUser},

		{PathPatients, http.MethodPost, h.Patients.CreatePatient},
		{PathPatients, http.MethodGet, h.Patients.ListPatients},
		{PathAddPatient, http.MethodPost, h.Patients.CreatePatientWithAddress},
		{PathPatientsByDoctor, http.MethodGet, h.Patients.ListPatientsByDoctor},
		{PathPatient, http.MethodGet, h.Patients.GetPatient},

		{PathPatientReports, http.MethodGet, h.Reports.ListPatientReports},
		{PathReports, http.MethodPost, h.Reports.CreateReport},
		{PathReport, http.MethodGet, h.Reports.GetReport},
		{PathDoctorReports, http.MethodGet, h.Reports.ListDoctorReports},
		{PathDoctorRecentReport, http.MethodGet, h.Reports.ListRecentDoctorReports},

		{PathTemplates, http.MethodGet, h.Templates.ListTemplates},
		{PathDefaultTemplate, http.MethodPost, h.Users.UpdateDefaultTemplate},
	}
}
