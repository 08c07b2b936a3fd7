package handlers

import (
	"errors"
	"net/http"

	request "doctor_app/internal/adapter/http/dto/request"
	"doctor_app/internal/adapter/persistence/table"
	"doctor_app/internal/usecase"
	"doctor_app/pkg"
)

var (
	errInvalidBody    = pkg.NewDomainErrorSimple("INVALID_REQUEST_BODY", "Invalid request body", http.StatusBadRequest)
	errInvalidJSON    = pkg.NewDomainErrorSimple("INVALID_JSON", "Invalid JSON in request body", http.StatusBadRequest)
	errMissingFields  = pkg.NewDomainErrorSimple("MISSING_FIELDS", "Missing required fields", http.StatusBadRequest)
	errInvalidPage    = pkg.NewDomainErrorSimple("INVALID_PAGE_SIZE", "pageSize must be an integer between 1 and 1000", http.StatusBadRequest)
	errInvalidCursor  = pkg.NewDomainErrorSimple("INVALID_LAST_EVALUATED_KEY", "Invalid lastEvaluatedKey", http.StatusBadRequest)
	errInvalidDoctor  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Doctor ID is required.", http.StatusBadRequest)
	errInvalidPatient = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Patient ID is required.", http.StatusBadRequest)
)

// mapCommonError covers the errors any handler can see: request parsing,
// pagination and the store. Anything else is an internal error.
func mapCommonError(err error) *pkg.AppError {
	var missing *request.MissingFieldsError
	var storeErr *table.StoreError

	switch {
	case errors.As(err, &missing):
		return errMissingFields.WithFields(missing.Fields)
	case errors.Is(err, request.ErrInvalidJSON):
		return pkg.NewDomainError(errInvalidJSON.Code, errInvalidJSON.Message, err, errInvalidJSON.HTTPStatus)
	case errors.Is(err, request.ErrInvalidBody):
		return pkg.NewDomainError(errInvalidBody.Code, errInvalidBody.Message, err, errInvalidBody.HTTPStatus)
	case errors.Is(err, request.ErrInvalidPageSize), errors.Is(err, usecase.ErrInvalidPageSize):
		return errInvalidPage
	case errors.Is(err, table.ErrInvalidCursor):
		return pkg.NewDomainError(errInvalidCursor.Code, errInvalidCursor.Message, err, errInvalidCursor.HTTPStatus)
	case errors.Is(err, usecase.ErrInvalidDoctorID):
		return errInvalidDoctor
	case errors.Is(err, usecase.ErrInvalidPatientID):
		return errInvalidPatient
	case errors.As(err, &storeErr):
		return pkg.NewDomainError(storeErr.Code, "Database error occurred", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error processing request", err, http.StatusInternalServerError)
	}
}
