package handlers

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func decodeBody(t *testing.T, res events.APIGatewayProxyResponse) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal([]byte(res.Body), &body); err != nil {
		t.Fatalf("response body is not a JSON object: %v (%s)", err, res.Body)
	}
	return body
}

func assertCORS(t *testing.T, res events.APIGatewayProxyResponse) {
	t.Helper()
	if res.Headers[headerAllowOrigin] != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin *, got %q", res.Headers[headerAllowOrigin])
	}
	if res.Headers[headerContentType] != "application/json" {
		t.Fatalf("expected JSON content type, got %q", res.Headers[headerContentType])
	}
}
