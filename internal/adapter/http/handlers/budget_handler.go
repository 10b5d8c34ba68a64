package handlers

import (
	"errors"
	"net/http"

	request "studioflow/internal/adapter/http/dto/request"
	response "studioflow/internal/adapter/http/dto/response"
	"studioflow/internal/domain/entities"
	"studioflow/internal/usecase"
	"studioflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for the budget lifecycle, from
// calculation commit to approval, plus proposal text generation.

type BudgetHandler struct {
	usecase  usecase.IBudgetUseCase
	proposal usecase.IProposalUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, proposal usecase.IProposalUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc, proposal: proposal}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.CreateFromCalculation(c.Request.Context(), usecase.CreateBudgetInput{
		OfficeID:     payload.OfficeID,
		Client:       payload.ResolveClient(),
		ServiceID:    payload.ServiceID,
		CalcMode:     entities.CalcMode(payload.CalcMode),
		Area:         payload.Area,
		Rooms:        payload.ResolveRooms(),
		ComplexityID: payload.ComplexityID,
		FinishID:     payload.FinishID,
		Scope:        payload.Scope,
		PaymentTerms: entities.PaymentTerms(payload.PaymentTerms),
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.ListByOfficeID(c.Request.Context(), c.Query("office_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) SendBudget(c *gin.Context) {
	budget, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	// The start-date body is optional; an absent or empty body means the
	// project starts today.
	var payload request.ApproveBudgetRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
			return
		}
	}
	startDate, err := payload.ResolveStartDate()
	if err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), startDate)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	var payload request.RejectBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) LogFollowup(c *gin.Context) {
	var payload request.FollowupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.LogFollowup(c.Request.Context(), c.Param("id"), payload.Note)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) GenerateProposal(c *gin.Context) {
	id := c.Param("id")
	text, err := h.proposal.GenerateProposal(c.Request.Context(), id)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ProposalResponse{BudgetID: id, Text: text})
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidOfficeID),
		errors.Is(err, usecase.ErrInvalidScope),
		errors.Is(err, usecase.ErrNotComputable),
		errors.Is(err, usecase.ErrMissingClientInfo),
		errors.Is(err, usecase.ErrEmptyScope):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfficeNotFound):
		return pkg.NewDomainErrorSimple("OFFICE_NOT_FOUND", "Office not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Budget status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrGeneratorNotConfigured):
		return pkg.NewDomainErrorSimple("GENERATOR_NOT_CONFIGURED", "Proposal generation is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
