package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	request "doctor_app/internal/adapter/http/dto/request"
	response "doctor_app/internal/adapter/http/dto/response"
	"doctor_app/internal/usecase"
	"doctor_app/pkg"

	"github.com/aws/aws-lambda-go/events"
)

const (
	userComponent = "user.handler"

	preflightAllowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	preflightAllowMethods = "GET,OPTIONS"
)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// GetUser godoc
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        emailid  path      string  true  "Email (case-insensitive)"
// @Success      200      {object}  entities.User
// @Failure      404      {object}  map[string]any
// @Router       /user/{emailid} [get]
func (h *UserHandler) GetUser(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	email := req.PathParameters["emailid"]
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}

	u, err := h.usecase.GetByEmail(ctx, email)
	if err != nil {
		return errorJSON(userComponent, mapUserError(err))
	}
	return JSON(http.StatusOK, u)
}

// UserPreflight godoc
// @Summary      CORS preflight for the user lookup
// @Tags         users
// @Produce      json
// @Param        emailid  path      string  true  "Email"
// @Success      200      {object}  response.MessageResponse
// @Router       /user/{emailid} [options]
func (h *UserHandler) UserPreflight(_ context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	res, err := JSON(http.StatusOK, response.MessageResponse{Message: "OK"})
	if err != nil {
		return res, err
	}
	res.Headers[headerAllowHeaders] = preflightAllowHeaders
	res.Headers[headerAllowMethods] = preflightAllowMethods
	return res, nil
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      request.UserRequest  true  "User"
// @Success      200   {object}  entities.User
// @Failure      400   {object}  map[string]any
// @Router       /user [post]
func (h *UserHandler) CreateUser(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	raw, err := requestBody(req)
	if err != nil {
		return errorJSON(userComponent, errInvalidBody)
	}

	var payload request.UserRequest
	if _, err := request.Decode(raw, nil, &payload); err != nil {
		return errorJSON(userComponent, mapUserError(err))
	}

	u, err := h.usecase.CreateUser(ctx, payload.ToEntity())
	if err != nil {
		return errorJSON(userComponent, mapUserError(err))
	}
	return JSON(http.StatusOK, u)
}

// UpdateDefaultTemplate godoc
// @Summary      Set a user's default report template
// @Description  The update only applies when userId and email identify the same user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        preference  body      request.TemplatePreferenceRequest  true  "Preference"
// @Success      200         {object}  response.TemplateUpdatedResponse
// @Failure      400         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /templates/default [post]
func (h *UserHandler) UpdateDefaultTemplate(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	raw, err := requestBody(req)
	if err != nil {
		return errorJSON(userComponent, errInvalidBody)
	}

	var payload request.TemplatePreferenceRequest
	if _, err := request.Decode(raw, request.TemplatePreferenceFields, &payload); err != nil {
		return errorJSON(userComponent, mapUserError(err))
	}

	u, err := h.usecase.UpdateDefaultTemplate(ctx, payload.UserID, payload.Email, payload.DefaultTemplate)
	if err != nil {
		return errorJSON(userComponent, mapUserError(err))
	}
	return JSON(http.StatusOK, response.FromTemplateUpdate(u))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Email is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "User ID is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTemplate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Default template is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found.", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
