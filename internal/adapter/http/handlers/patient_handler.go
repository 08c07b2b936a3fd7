package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	request "doctor_app/internal/adapter/http/dto/request"
	response "doctor_app/internal/adapter/http/dto/response"
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase"
	"doctor_app/pkg"

	"github.com/aws/aws-lambda-go/events"
)

const patientComponent = "patient.handler"

// PatientHandler serves the patient routes.
type PatientHandler struct {
	usecase usecase.IPatientUseCase
}

func NewPatientHandler(uc usecase.IPatientUseCase) *PatientHandler {
	return &PatientHandler{usecase: uc}
}

// CreatePatient godoc
// @Summary      Create a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        patient  body      request.PatientRequest  true  "Patient"
// @Success      201      {object}  response.PatientCreatedResponse
// @Failure      400      {object}  map[string]any
// @Router       /patients [post]
func (h *PatientHandler) CreatePatient(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.create(ctx, req, request.PatientFields)
}

// CreatePatientWithAddress godoc
// @Summary      Create a patient with a mandatory address
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        patient  body      request.PatientRequest  true  "Patient"
// @Success      201      {object}  response.PatientCreatedResponse
// @Failure      400      {object}  map[string]any
// @Router       /patients/addpatient [post]
func (h *PatientHandler) CreatePatientWithAddress(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.create(ctx, req, request.PatientWithAddressFields)
}

func (h *PatientHandler) create(ctx context.Context, req events.APIGatewayProxyRequest, schema request.Schema) (events.APIGatewayProxyResponse, error) {
	raw, err := requestBody(req)
	if err != nil {
		return errorJSON(patientComponent, errInvalidBody)
	}

	var payload request.PatientRequest
	if _, err := request.Decode(raw, schema, &payload); err != nil {
		return errorJSON(patientComponent, mapPatientError(err))
	}

	p, err := h.usecase.CreatePatient(ctx, payload.ToEntity())
	if err != nil {
		return errorJSON(patientComponent, mapPatientError(err))
	}
	return JSON(http.StatusCreated, response.FromCreatedPatient(p))
}

// ListPatients godoc
// @Summary      List every patient
// @Tags         patients
// @Produce      json
// @Success      200  {array}   entities.Patient
// @Failure      404  {object}  map[string]any
// @Router       /patients [get]
func (h *PatientHandler) ListPatients(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	patients, err := h.usecase.ListAll(ctx)
	if err != nil {
		return errorJSON(patientComponent, mapPatientError(err))
	}
	return JSON(http.StatusOK, patients)
}

// GetPatient godoc
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Param        patientId  path      string  true  "Patient ID"
// @Success      200        {object}  response.PatientResponse
// @Failure      404        {object}  map[string]any
// @Router       /patient/{patientId} [get]
func (h *PatientHandler) GetPatient(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	patientID := req.PathParameters["patientId"]

	p, err := h.usecase.GetByID(ctx, patientID)
	if err != nil {
		appErr := mapPatientError(err)
		if errors.Is(err, usecase.ErrPatientNotFound) {
			appErr = pkg.NewDomainErrorSimple(appErr.Code, fmt.Sprintf("Patient with ID %s not found", patientID), appErr.HTTPStatus).
				WithDetail("patientId", patientID)
		}
		return errorJSON(patientComponent, appErr)
	}
	return JSON(http.StatusOK, response.FromPatient(p))
}

// ListPatientsByDoctor godoc
// @Summary      List a doctor's patients
// @Tags         patients
// @Produce      json
// @Param        doctorId          path      string  true   "Doctor ID"
// @Param        sortKey           query     string  false  "name | latestReportDate"
// @Param        sortOrder         query     string  false  "asc | desc"
// @Param        pageSize          query     int     false  "1..1000"
// @Param        lastEvaluatedKey  query     string  false  "Continuation token"
// @Success      200               {object}  response.PatientsByDoctorResponse
// @Failure      400               {object}  map[string]any
// @Router       /patients/{doctorId} [get]
func (h *PatientHandler) ListPatientsByDoctor(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	doctorID := req.PathParameters["doctorId"]

	params, err := request.ParsePatientListParams(req.QueryStringParameters)
	if err != nil {
		return errorJSON(patientComponent, mapPatientError(err))
	}

	list, err := h.usecase.ListByDoctor(ctx, usecase.PatientListQuery{
		DoctorID:  doctorID,
		SortKey:   params.SortKey,
		SortOrder: params.SortOrder,
		PageSize:  params.PageSize,
		Cursor:    params.Cursor,
	})
	if err != nil {
		return errorJSON(patientComponent, mapPatientError(err))
	}
	return JSON(http.StatusOK, response.FromPatientList(doctorID, list))
}

func mapPatientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSortKey):
		return pkg.NewDomainErrorSimple("INVALID_SORT_KEY", "Invalid sortKey", http.StatusBadRequest).
			WithDetail("allowed", []string{string(entities.PatientSortByName), string(entities.PatientSortByLatestReportAt)})
	case errors.Is(err, usecase.ErrInvalidSortOrder):
		return pkg.NewDomainErrorSimple("INVALID_SORT_ORDER", "Invalid sortOrder", http.StatusBadRequest).
			WithDetail("allowed", []string{string(entities.SortAscending), string(entities.SortDescending)})
	case errors.Is(err, usecase.ErrPatientNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPatientsNotFound):
		return pkg.NewDomainErrorSimple("PATIENTS_NOT_FOUND", "No patients found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
