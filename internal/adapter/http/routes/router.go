package routes

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	response "doctor_app/internal/adapter/http/dto/response"
	"doctor_app/internal/adapter/http/handlers"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

const component = "router"

type routeKey struct {
	resource string
	method   string
}

// Router dispatches structured requests by (resource, method).
type Router struct {
	routes []Route
	lookup map[routeKey]handlers.HandlerFunc
}

func NewRouter(routes []Route) *Router {
	lookup := make(map[routeKey]handlers.HandlerFunc, len(routes))
	for _, r := range routes {
		lookup[routeKey{r.Resource, strings.ToUpper(r.Method)}] = r.Handler
	}
	return &Router{routes: routes, lookup: lookup}
}

// Routes returns the table the router was built from, in order.
func (r *Router) Routes() []Route {
	return r.routes
}

// Dispatch never returns an error: handler errors and panics become a 500
// response.
func (r *Router) Dispatch(ctx context.Context, req events.APIGatewayProxyRequest) (res events.APIGatewayProxyResponse, err error) {
	logger := log.With().
		Str("component", component).
		Str("resource", req.Resource).
		Str("method", req.HTTPMethod).
		Logger()

	if req.Resource == "" || req.HTTPMethod == "" {
		logger.Warn().Msg("request without resource or method")
		return handlers.JSON(http.StatusBadRequest, response.MessageResponse{Message: "Invalid request. Resource or method missing."})
	}

	h, ok := r.lookup[routeKey{req.Resource, strings.ToUpper(req.HTTPMethod)}]
	if !ok {
		logger.Warn().Msg("route not found")
		return handlers.JSON(http.StatusNotFound, response.MessageResponse{Message: "Route not found"})
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Str("panic", fmt.Sprint(rec)).Msg("handler panicked")
			res, err = internalError()
		}
	}()

	res, err = h(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("handler failed")
		return internalError()
	}
	logger.Debug().Int("status", res.StatusCode).Msg("request served")
	return res, nil
}

func internalError() (events.APIGatewayProxyResponse, error) {
	return handlers.JSON(http.StatusInternalServerError, response.MessageResponse{Message: "Internal server error."})
}
