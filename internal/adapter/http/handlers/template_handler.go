package handlers

import (
	"errors"
	"net/http"

	request "studioflow/internal/adapter/http/dto/request"
	response "studioflow/internal/adapter/http/dto/response"
	"studioflow/internal/usecase"
	"studioflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTemplatePayload = pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid template payload", http.StatusBadRequest)
)

// TemplateHandler handles HTTP requests for the phase/step template
// registry. The office is addressed by the office_id query parameter;
// every mutation stores a full per-office override.

type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
}

func NewTemplateHandler(uc usecase.ITemplateUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.usecase.Resolve(c.Request.Context(), c.Query("office_id"), c.Param("service_id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(tpl))
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var payload request.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	tpl, err := h.usecase.Update(c.Request.Context(), c.Query("office_id"), c.Param("service_id"), payload.ToPatch())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(tpl))
}

func (h *TemplateHandler) AddPhase(c *gin.Context) {
	var payload request.AddPhaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	tpl, err := h.usecase.AddPhase(c.Request.Context(), c.Query("office_id"), c.Param("service_id"), payload.Name, payload.Color, payload.Duration)
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTemplate(tpl))
}

func (h *TemplateHandler) EditPhase(c *gin.Context) {
	var payload request.EditPhaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	tpl, err := h.usecase.EditPhase(c.Request.Context(), c.Query("office_id"), c.Param("service_id"), c.Param("phase_id"), payload.ToPatch())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(tpl))
}

func (h *TemplateHandler) RemovePhase(c *gin.Context) {
	tpl, err := h.usecase.RemovePhase(c.Request.Context(), c.Query("office_id"), c.Param("service_id"), c.Param("phase_id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(tpl))
}

func (h *TemplateHandler) MovePhase(c *gin.Context) {
	var payload request.MovePhaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	tpl, err := h.usecase.MovePhase(c.Request.Context(), c.Query("office_id"), c.Param("service_id"), c.Param("phase_id"), payload.Offset)
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(tpl))
}

func (h *TemplateHandler) AddStep(c *gin.Context) {
	var payload request.AddStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	tpl, err := h.usecase.AddStep(c.Request.Context(), c.Query("office_id"), c.Param("service_id"), c.Param("phase_id"), payload.Name, payload.ExecTime, payload.Deliverable)
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTemplate(tpl))
}

func (h *TemplateHandler) EditStep(c *gin.Context) {
	var payload request.EditStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	tpl, err := h.usecase.EditStep(c.Request.Context(), c.Query("office_id"), c.Param("service_id"), c.Param("phase_id"), c.Param("step_id"), payload.ToPatch())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(tpl))
}

func (h *TemplateHandler) RemoveStep(c *gin.Context) {
	tpl, err := h.usecase.RemoveStep(c.Request.Context(), c.Query("office_id"), c.Param("service_id"), c.Param("phase_id"), c.Param("step_id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(tpl))
}

func mapTemplateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOfficeID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidPhaseMove),
		errors.Is(err, usecase.ErrDuplicatePhase):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReservedPhase):
		return pkg.NewDomainErrorSimple("RESERVED_PHASE", "The terminal phase cannot be changed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhaseNotFound):
		return pkg.NewDomainErrorSimple("PHASE_NOT_FOUND", "Phase not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepNotFound):
		return pkg.NewDomainErrorSimple("STEP_NOT_FOUND", "Step not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
