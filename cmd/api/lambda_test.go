package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"doctor_app/internal/adapter/http/handlers"
	"doctor_app/internal/adapter/http/handlers/mocks"
	"doctor_app/internal/adapter/http/routes"
	tablemocks "doctor_app/internal/adapter/persistence/table/mocks"
	"doctor_app/internal/domain/entities"
	"doctor_app/internal/infrastructure/config"
	"doctor_app/internal/usecase"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLambdaHandler_RoutesSignupTriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUserUseCase(ctrl)
	h := newLambdaHandler(routes.NewRouter(nil), handlers.NewSignupHandler(uc))

	uc.EXPECT().RegisterFromSignup(gomock.Any(), usecase.SignupAttributes{Email: "doc@example.com", Sub: "sub-1"}).
		Return(entities.User{UserID: "u-1"}, nil)

	payload := json.RawMessage(`{
		"version": "1",
		"triggerSource": "PostConfirmation_ConfirmSignUp",
		"userName": "doc",
		"request": {"userAttributes": {"email": "doc@example.com", "sub": "sub-1"}},
		"response": {}
	}`)

	out, err := h(context.Background(), payload)
	require.NoError(t, err)
	evt, ok := out.(events.CognitoEventUserPoolsPostConfirmation)
	require.True(t, ok, "expected the cognito event back, got %T", out)
	assert.Equal(t, "doc", evt.UserName)
}

func TestLambdaHandler_RoutesAPIRequests(t *testing.T) {
	router := routes.NewRouter([]routes.Route{{
		Resource: "/templates",
		Method:   http.MethodGet,
		Handler: func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return handlers.JSON(http.StatusOK, []string{"t-1"})
		},
	}})
	h := newLambdaHandler(router, handlers.NewSignupHandler(nil))

	out, err := h(context.Background(), json.RawMessage(`{"resource":"/templates","httpMethod":"GET","path":"/templates"}`))
	require.NoError(t, err)
	res, ok := out.(events.APIGatewayProxyResponse)
	require.True(t, ok, "expected an api gateway response, got %T", out)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `["t-1"]`, res.Body)

	out, err = h(context.Background(), json.RawMessage(`{"httpMethod":"GET"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, out.(events.APIGatewayProxyResponse).StatusCode)
}

func TestLambdaHandler_RejectsGarbage(t *testing.T) {
	h := newLambdaHandler(routes.NewRouter(nil), handlers.NewSignupHandler(nil))
	_, err := h(context.Background(), json.RawMessage(`not json`))
	assert.Error(t, err)
}

func TestWire_BuildsEveryRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		Tables:  config.TablesConfig{Patients: "p", Reports: "r", Users: "u", Templates: "t"},
		Users:   config.UsersConfig{DefaultTemplate: "default"},
		Reports: config.ReportsConfig{DefaultPageSize: 1000},
	}
	a := wire(cfg, tablemocks.NewMockDynamoAPI(ctrl))

	assert.Len(t, a.router.Routes(), 15)
	assert.NotNil(t, a.signup)
}

func TestWire_CreateReportEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := tablemocks.NewMockDynamoAPI(ctrl)

	cfg := &config.Config{
		Tables:  config.TablesConfig{Patients: "patients", Reports: "reports", Users: "users", Templates: "templates"},
		Reports: config.ReportsConfig{DefaultPageSize: 1000},
	}
	a := wire(cfg, api)

	api.EXPECT().PutItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "reports", aws.ToString(in.TableName))
			return &dynamodb.PutItemOutput{}, nil
		})
	api.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "patients", aws.ToString(in.TableName))
			return &dynamodb.UpdateItemOutput{}, nil
		})

	res, err := a.router.Dispatch(context.Background(), events.APIGatewayProxyRequest{
		Resource:   "/reports",
		HTTPMethod: http.MethodPost,
		Body:       `{"audioFile":"a.wav","patientId":"p1","doctorId":"d1"}`,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode, res.Body)

	var body struct {
		Message string          `json:"message"`
		Report  entities.Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Body), &body))
	assert.Equal(t, "Report saved successfully", body.Message)
	assert.Equal(t, entities.ReportStatusAwaitingTranscription, body.Report.CurrentStatus)
	assert.NotEmpty(t, body.Report.ReportID)
	assert.Equal(t, entities.DefaultReportType, body.Report.ReportType)
}
