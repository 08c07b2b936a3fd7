package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"doctor_app/internal/adapter/http/handlers"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(body string) handlers.HandlerFunc {
	return func(_ context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return handlers.JSON(http.StatusOK, map[string]string{"body": body, "id": req.PathParameters["id"]})
	}
}

func message(t *testing.T, res events.APIGatewayProxyResponse) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Body), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestRouter_Dispatch(t *testing.T) {
	router := NewRouter([]Route{
		{Resource: "/things/{id}", Method: http.MethodGet, Handler: okHandler("get")},
		{Resource: "/things", Method: http.MethodPost, Handler: func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return events.APIGatewayProxyResponse{}, errors.New("boom")
		}},
		{Resource: "/panic", Method: http.MethodGet, Handler: func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			panic("kaboom")
		}},
	})
	ctx := context.Background()

	t.Run("matched route", func(t *testing.T) {
		res, err := router.Dispatch(ctx, events.APIGatewayProxyRequest{
			Resource:       "/things/{id}",
			HTTPMethod:     "get",
			PathParameters: map[string]string{"id": "7"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"body":"get","id":"7"}`, res.Body)
	})

	t.Run("missing resource or method", func(t *testing.T) {
		res, err := router.Dispatch(ctx, events.APIGatewayProxyRequest{Resource: "/things"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "Invalid request. Resource or method missing.", message(t, res))
	})

	t.Run("unknown route", func(t *testing.T) {
		res, err := router.Dispatch(ctx, events.APIGatewayProxyRequest{Resource: "/things", HTTPMethod: http.MethodDelete})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "Route not found", message(t, res))
	})

	t.Run("handler error", func(t *testing.T) {
		res, err := router.Dispatch(ctx, events.APIGatewayProxyRequest{Resource: "/things", HTTPMethod: http.MethodPost})
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, "Internal server error.", message(t, res))
	})

	t.Run("handler panic", func(t *testing.T) {
		res, err := router.Dispatch(ctx, events.APIGatewayProxyRequest{Resource: "/panic", HTTPMethod: http.MethodGet})
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, "*", res.Headers["Access-Control-Allow-Origin"])
	})
}

func TestTable_CoversEveryRoute(t *testing.T) {
	routes := Table(Handlers{
		Users:     handlers.NewUserHandler(nil),
		Patients:  handlers.NewPatientHandler(nil),
		Reports:   handlers.NewReportHandler(nil),
		Templates: handlers.NewTemplateHandler(nil),
	})

	seen := map[string]bool{}
	for _, r := range routes {
		key := r.Method + " " + r.Resource
		assert.False(t, seen[key], "duplicate route %s", key)
		assert.NotNil(t, r.Handler, key)
		seen[key] = true
	}
	for _, key := range []string{
		"GET /user/{emailid}",
		"OPTIONS /user/{emailid}",
		"POST /user",
		"POST /patients",
		"GET /patients",
		"POST /patients/addpatient",
		"GET /patients/{doctorId}",
		"GET /patient/{patientId}",
		"GET /patient/{patientId}/reports",
		"POST /reports",
		"GET /reports/{reportId}",
		"GET /templates",
		"POST /templates/default",
		"GET /doctors/{doctorId}/reports",
		"GET /doctors/{doctorId}/reports/recent",
	} {
		assert.True(t, seen[key], "missing route %s", key)
	}
	assert.Len(t, routes, 15)
}
