package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"doctor_app/internal/adapter/http/handlers/mocks"
	"doctor_app/internal/adapter/persistence/table"
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/usecase"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/mock/gomock"
)

const patientBody = `{"doctorId":"d-1","name":"Ada","dateOfBirth":"1990-01-01","email":"ada@example.com","gender":"F"}`

func TestPatientHandler_CreatePatient(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPatientUseCase(ctrl)
		h := NewPatientHandler(uc)

		res, err := h.CreatePatient(context.Background(), events.APIGatewayProxyRequest{Body: `{"doctorId":"d-1","name":null}`})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", res.StatusCode)
		}
		body := decodeBody(t, res)
		fields, _ := body["fields"].([]any)
		want := []string{"name", "dateOfBirth", "email", "gender"}
		if len(fields) != len(want) {
			t.Fatalf("expected fields %v, got %v", want, body["fields"])
		}
		for i, f := range want {
			if fields[i] != f {
				t.Fatalf("expected fields %v, got %v", want, fields)
			}
		}
		if body["message"] != "Missing required fields" {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPatientHandler(mocks.NewMockIPatientUseCase(ctrl))

		res, _ := h.CreatePatient(context.Background(), events.APIGatewayProxyRequest{Body: "{"})
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", res.StatusCode)
		}
		if decodeBody(t, res)["message"] != "Invalid JSON in request body" {
			t.Fatalf("unexpected body %s", res.Body)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPatientHandler(mocks.NewMockIPatientUseCase(ctrl))

		res, _ := h.CreatePatient(context.Background(), events.APIGatewayProxyRequest{})
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", res.StatusCode)
		}
		if decodeBody(t, res)["message"] != "Invalid request body" {
			t.Fatalf("unexpected body %s", res.Body)
		}
	})

	t.Run("success with base64 body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPatientUseCase(ctrl)
		h := NewPatientHandler(uc)

		uc.EXPECT().CreatePatient(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Patient) (entities.Patient, error) {
				if p.DoctorID != "d-1" || p.Name != "Ada" {
					t.Fatalf("unexpected patient %+v", p)
				}
				p.PatientID = "p-1"
				return p, nil
			})

		res, err := h.CreatePatient(context.Background(), events.APIGatewayProxyRequest{
			Body:            base64.StdEncoding.EncodeToString([]byte(patientBody)),
			IsBase64Encoded: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", res.StatusCode)
		}
		assertCORS(t, res)
		body := decodeBody(t, res)
		patient, _ := body["patient"].(map[string]any)
		if body["message"] != "Patient created successfully" || patient["patientId"] != "p-1" {
			t.Fatalf("unexpected body %s", res.Body)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPatientUseCase(ctrl)
		h := NewPatientHandler(uc)

		uc.EXPECT().CreatePatient(gomock.Any(), gomock.Any()).
			Return(entities.Patient{}, &table.StoreError{Op: "PutItem", Table: "patients", Code: "ResourceNotFoundException", Err: errors.New("boom")})

		res, _ := h.CreatePatient(context.Background(), events.APIGatewayProxyRequest{Body: patientBody})
		if res.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", res.StatusCode)
		}
		body := decodeBody(t, res)
		if body["message"] != "Database error occurred" || body["error"] != "ResourceNotFoundException" {
			t.Fatalf("unexpected body %s", res.Body)
		}
	})
}

func TestPatientHandler_CreatePatientWithAddress_RequiresAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewPatientHandler(mocks.NewMockIPatientUseCase(ctrl))

	res, _ := h.CreatePatientWithAddress(context.Background(), events.APIGatewayProxyRequest{Body: patientBody})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	fields, _ := decodeBody(t, res)["fields"].([]any)
	if len(fields) != 1 || fields[0] != "address" {
		t.Fatalf("expected only address missing, got %v", fields)
	}
}

func TestPatientHandler_GetPatient(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPatientUseCase(ctrl)
		h := NewPatientHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Patient{}, usecase.ErrPatientNotFound)

		res, _ := h.GetPatient(context.Background(), events.APIGatewayProxyRequest{PathParameters: map[string]string{"patientId": "p-9"}})
		if res.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", res.StatusCode)
		}
		body := decodeBody(t, res)
		if body["message"] != "Patient with ID p-9 not found" || body["patientId"] != "p-9" {
			t.Fatalf("unexpected body %s", res.Body)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPatientUseCase(ctrl)
		h := NewPatientHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Patient{PatientID: "p-1", Name: "Ada"}, nil)

		res, _ := h.GetPatient(context.Background(), events.APIGatewayProxyRequest{PathParameters: map[string]string{"patientId": "p-1"}})
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", res.StatusCode)
		}
		patient, _ := decodeBody(t, res)["patient"].(map[string]any)
		if patient["name"] != "Ada" {
			t.Fatalf("unexpected body %s", res.Body)
		}
	})
}

func TestPatientHandler_ListPatients_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPatientUseCase(ctrl)
	h := NewPatientHandler(uc)

	uc.EXPECT().ListAll(gomock.Any()).Return(nil, usecase.ErrPatientsNotFound)

	res, _ := h.ListPatients(context.Background(), events.APIGatewayProxyRequest{})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	if decodeBody(t, res)["message"] != "No patients found" {
		t.Fatalf("unexpected body %s", res.Body)
	}
}

func TestPatientHandler_ListPatientsByDoctor(t *testing.T) {
	t.Run("passes query through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPatientUseCase(ctrl)
		h := NewPatientHandler(uc)

		uc.EXPECT().ListByDoctor(gomock.Any(), usecase.PatientListQuery{
			DoctorID:  "d-1",
			SortKey:   entities.PatientSortByName,
			SortOrder: entities.SortDescending,
			PageSize:  2,
			Cursor:    "tok",
		}).Return(usecase.PatientList{
			Patients:   []entities.Patient{{PatientID: "p-2"}, {PatientID: "p-1"}},
			NextCursor: "next",
			UsedIndex:  "doctorId-name-index",
			SortKey:    entities.PatientSortByName,
			SortOrder:  entities.SortDescending,
		}, nil)

		res, _ := h.ListPatientsByDoctor(context.Background(), events.APIGatewayProxyRequest{
			PathParameters: map[string]string{"doctorId": "d-1"},
			QueryStringParameters: map[string]string{
				"sortKey": "name", "sortOrder": "desc", "pageSize": "2", "lastEvaluatedKey": "tok",
			},
		})
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", res.StatusCode)
		}
		body := decodeBody(t, res)
		if body["count"] != float64(2) || body["hasMore"] != true || body["lastEvaluatedKey"] != "next" {
			t.Fatalf("unexpected body %s", res.Body)
		}
		if body["usedIndex"] != "doctorId-name-index" || body["sortOrder"] != "desc" || body["doctorId"] != "d-1" {
			t.Fatalf("unexpected body %s", res.Body)
		}
	})

	t.Run("invalid page size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPatientHandler(mocks.NewMockIPatientUseCase(ctrl))

		res, _ := h.ListPatientsByDoctor(context.Background(), events.APIGatewayProxyRequest{
			PathParameters:        map[string]string{"doctorId": "d-1"},
			QueryStringParameters: map[string]string{"pageSize": "0"},
		})
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", res.StatusCode)
		}
	})

	cases := []struct {
		name string
		err  error
		code string
	}{
		{"invalid sort key", usecase.ErrInvalidSortKey, "INVALID_SORT_KEY"},
		{"invalid sort order", usecase.ErrInvalidSortOrder, "INVALID_SORT_ORDER"},
		{"invalid cursor", table.ErrInvalidCursor, "INVALID_LAST_EVALUATED_KEY"},
		{"missing doctor", usecase.ErrInvalidDoctorID, "INVALID_REQUEST"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPatientUseCase(ctrl)
			h := NewPatientHandler(uc)

			uc.EXPECT().ListByDoctor(gomock.Any(), gomock.Any()).Return(usecase.PatientList{}, c.err)

			res, _ := h.ListPatientsByDoctor(context.Background(), events.APIGatewayProxyRequest{
				PathParameters: map[string]string{"doctorId": "d-1"},
			})
			if res.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", res.StatusCode)
			}
			if decodeBody(t, res)["error"] != c.code {
				t.Fatalf("expected code %s, got %s", c.code, res.Body)
			}
		})
	}
}
