package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"doctor_app/pkg"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// HandlerFunc serves one (resource, method) pair of the route table.
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

const (
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerContentType  = "Content-Type"
)

func baseHeaders() map[string]string {
	return map[string]string{
		headerAllowOrigin: "*",
		headerContentType: "application/json",
	}
}

// JSON renders body with the headers every response carries.
func JSON(status int, body any) (events.APIGatewayProxyResponse, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("marshal response: %w", err)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    baseHeaders(),
		Body:       string(raw),
	}, nil
}

func errorJSON(component string, appErr *pkg.AppError) (events.APIGatewayProxyResponse, error) {
	evt := log.Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(appErr.Err).
		Str("component", component).
		Str("code", appErr.Code).
		Int("status", appErr.HTTPStatus).
		Msg(appErr.Message)
	return JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requestBody returns the raw body, undoing API Gateway's base64 encoding of
// binary payloads.
func requestBody(req events.APIGatewayProxyRequest) (string, error) {
	if !req.IsBase64Encoded {
		return req.Body, nil
	}
	raw, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
