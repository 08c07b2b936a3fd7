package handlers

import (
	"context"
	"fmt"

	"doctor_app/internal/usecase"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

const (
	signupComponent = "signup.handler"

	// TriggerConfirmSignUp is the post-confirmation trigger fired once a new
	// account confirms its sign-up.
	TriggerConfirmSignUp = "PostConfirmation_ConfirmSignUp"
)

// SignupHandler creates the user record when the identity provider confirms
// a sign-up.
type SignupHandler struct {
	usecase usecase.IUserUseCase
}

func NewSignupHandler(uc usecase.IUserUseCase) *SignupHandler {
	return &SignupHandler{usecase: uc}
}

// Handle returns the event unchanged. Any error makes the trigger fail.
func (h *SignupHandler) Handle(ctx context.Context, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	if event.TriggerSource != TriggerConfirmSignUp {
		log.Debug().Str("component", signupComponent).Str("triggerSource", event.TriggerSource).Msg("trigger ignored")
		return event, nil
	}

	attrs := event.Request.UserAttributes
	u, err := h.usecase.RegisterFromSignup(ctx, usecase.SignupAttributes{
		Email:       attrs["email"],
		Sub:         attrs["sub"],
		Name:        attrs["name"],
		PhoneNumber: attrs["phone_number"],
	})
	if err != nil {
		log.Error().Err(err).Str("component", signupComponent).Str("userName", event.UserName).Msg("failed to add user after sign-up")
		return event, fmt.Errorf("add user after sign-up: %w", err)
	}

	log.Info().Str("component", signupComponent).Str("userId", u.UserID).Msg("user added after sign-up")
	return event, nil
}
