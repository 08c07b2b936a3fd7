package handlers

import (
	"context"
	"errors"
	"net/http"

	"doctor_app/internal/usecase"
	"doctor_app/pkg"

	"github.com/aws/aws-lambda-go/events"
)

const templateComponent = "template.handler"

type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
}

func NewTemplateHandler(uc usecase.ITemplateUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

// ListTemplates godoc
// @Summary      List report templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}   map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /templates [get]
func (h *TemplateHandler) ListTemplates(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	templates, err := h.usecase.ListAll(ctx)
	if err != nil {
		return errorJSON(templateComponent, mapTemplateError(err))
	}
	return JSON(http.StatusOK, templates)
}

func mapTemplateError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrTemplatesNotFound) {
		return pkg.NewDomainErrorSimple("TEMPLATES_NOT_FOUND", "No templates found", http.StatusNotFound)
	}
	return mapCommonError(err)
}
