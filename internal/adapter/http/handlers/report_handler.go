package handlers

import (
	"context"
	"errors"
	"net/http"

	request "doctor_app/internal/adapter/http/dto/request"
	response "doctor_app/internal/adapter/http/dto/response"
	"doctor_app/internal/usecase"
	"doctor_app/pkg"

	"github.com/aws/aws-lambda-go/events"
)

const reportComponent = "report.handler"

// ReportHandler serves report creation, lookups and the doctor report
// listings.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// CreateReport godoc
// @Summary      Save a report
// @Description  The status is derived from which of transcription, reportData and billingData are present.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        report  body      request.ReportRequest  true  "Report"
// @Success      200     {object}  response.ReportSavedResponse
// @Failure      400     {object}  map[string]any
// @Router       /reports [post]
func (h *ReportHandler) CreateReport(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	raw, err := requestBody(req)
	if err != nil {
		return errorJSON(reportComponent, errInvalidBody)
	}

	var payload request.ReportRequest
	if _, err := request.Decode(raw, request.ReportFields, &payload); err != nil {
		return errorJSON(reportComponent, mapReportError(err))
	}

	r, err := h.usecase.CreateReport(ctx, payload.ToEntity())
	if err != nil {
		return errorJSON(reportComponent, mapReportError(err))
	}
	return JSON(http.StatusOK, response.FromSavedReport(r))
}

// GetReport godoc
// @Summary      Get a report
// @Tags         reports
// @Produce      json
// @Param        reportId  path      string  true  "Report ID"
// @Success      200       {object}  response.ReportResponse
// @Failure      404       {object}  map[string]any
// @Router       /reports/{reportId} [get]
func (h *ReportHandler) GetReport(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	reportID := req.PathParameters["reportId"]

	r, err := h.usecase.GetByID(ctx, reportID)
	if err != nil {
		appErr := mapReportError(err)
		if errors.Is(err, usecase.ErrReportNotFound) {
			appErr = appErr.WithDetail("reportId", reportID)
		}
		return errorJSON(reportComponent, appErr)
	}
	return JSON(http.StatusOK, response.FromReport(r))
}

// ListPatientReports godoc
// @Summary      List a patient's reports
// @Tags         reports
// @Produce      json
// @Param        patientId  path      string  true  "Patient ID"
// @Success      200        {object}  response.PatientReportsResponse
// @Failure      404        {object}  map[string]any
// @Router       /patient/{patientId}/reports [get]
func (h *ReportHandler) ListPatientReports(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	patientID := req.PathParameters["patientId"]

	reports, err := h.usecase.ListByPatient(ctx, patientID)
	if err != nil {
		appErr := mapReportError(err)
		if errors.Is(err, usecase.ErrReportsNotFound) {
			appErr = appErr.WithDetail("patientId", patientID)
		}
		return errorJSON(reportComponent, appErr)
	}
	return JSON(http.StatusOK, response.FromPatientReports(patientID, reports))
}

// ListDoctorReports godoc
// @Summary      Completed reports of a doctor's patients
// @Description  Pages through the doctor's patients and merges their completed reports, newest first.
// @Tags         reports
// @Produce      json
// @Param        doctorId          path      string  true   "Doctor ID"
// @Param        pageSize          query     int     false  "1..1000, default 1000"
// @Param        lastEvaluatedKey  query     string  false  "Continuation token"
// @Success      200               {object}  response.DoctorReportsResponse
// @Router       /doctors/{doctorId}/reports [get]
func (h *ReportHandler) ListDoctorReports(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.doctorReports(ctx, req, h.usecase.ReportsByDoctor)
}

// ListRecentDoctorReports godoc
// @Summary      Completed reports of a doctor, newest first
// @Description  Pages through the doctor's reports by date and attaches patient details.
// @Tags         reports
// @Produce      json
// @Param        doctorId          path      string  true   "Doctor ID"
// @Param        pageSize          query     int     false  "1..1000, default 1000"
// @Param        lastEvaluatedKey  query     string  false  "Continuation token"
// @Success      200               {object}  response.DoctorReportsResponse
// @Router       /doctors/{doctorId}/reports/recent [get]
func (h *ReportHandler) ListRecentDoctorReports(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.doctorReports(ctx, req, h.usecase.RecentReportsByDoctor)
}

func (h *ReportHandler) doctorReports(
	ctx context.Context,
	req events.APIGatewayProxyRequest,
	merge func(ctx context.Context, q usecase.DoctorReportsQuery) (usecase.PatientReportPage, error),
) (events.APIGatewayProxyResponse, error) {
	params, err := request.ParsePageParams(req.QueryStringParameters)
	if err != nil {
		return errorJSON(reportComponent, mapReportError(err))
	}

	page, err := merge(ctx, usecase.DoctorReportsQuery{
		DoctorID: req.PathParameters["doctorId"],
		PageSize: params.PageSize,
		Cursor:   params.Cursor,
	})
	if err != nil {
		return errorJSON(reportComponent, mapReportError(err))
	}
	return JSON(http.StatusOK, response.FromPatientReportPage(page))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Report ID is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportsNotFound):
		return pkg.NewDomainErrorSimple("REPORTS_NOT_FOUND", "No reports found for the given patient.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMalformedReportDate):
		return pkg.NewDomainError("INVALID_REQUEST", "reportDate must match YYYY-MM-DDTHH:MM:SS.ffffffZ", err, http.StatusBadRequest).
			WithFields([]string{"reportDate"})
	case errors.Is(err, usecase.ErrInvalidReportDate):
		return pkg.NewDomainError("INVALID_REPORT_DATE", "Invalid report date", err, http.StatusInternalServerError)
	default:
		return mapCommonError(err)
	}
}
