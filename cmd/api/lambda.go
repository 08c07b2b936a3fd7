package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"doctor_app/internal/adapter/http/handlers"
	"doctor_app/internal/adapter/http/routes"

	"github.com/aws/aws-lambda-go/events"
)

// eventProbe reads just enough of an invocation payload to tell identity
// triggers from API Gateway requests.
type eventProbe struct {
	TriggerSource string `json:"triggerSource"`
}

type lambdaHandler func(ctx context.Context, payload json.RawMessage) (any, error)

// newLambdaHandler routes identity-provider triggers to the signup handler
// and everything else to the API router.
func newLambdaHandler(router *routes.Router, signup *handlers.SignupHandler) lambdaHandler {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var probe eventProbe
		if err := json.Unmarshal(payload, &probe); err != nil {
			return nil, fmt.Errorf("decode invocation payload: %w", err)
		}

		if strings.HasPrefix(probe.TriggerSource, "PostConfirmation_") {
			var evt events.CognitoEventUserPoolsPostConfirmation
			if err := json.Unmarshal(payload, &evt); err != nil {
				return nil, fmt.Errorf("decode post-confirmation event: %w", err)
			}
			return signup.Handle(ctx, evt)
		}

		var req events.APIGatewayProxyRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("decode api gateway request: %w", err)
		}
		return router.Dispatch(ctx, req)
	}
}
