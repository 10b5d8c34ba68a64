package handlers

import (
	"errors"
	"io"
	"net/http"

	response "studioflow/internal/adapter/http/dto/response"
	"studioflow/internal/usecase"
	"studioflow/pkg"

	"github.com/gin-gonic/gin"
)

// FinanceHandler handles HTTP requests for installment listing and
// settlement. The settle body is passed through to the payment gateway
// untouched except for the pinned amount and reference.

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) ListProjectFinance(c *gin.Context) {
	entries, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinanceEntries(entries))
}

func (h *FinanceHandler) SettleEntry(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	entry, err := h.usecase.Settle(c.Request.Context(), c.Param("entry_id"), payload)
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinanceEntry(entry))
}

func mapFinanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEntryID), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Finance entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEntryAlreadyPaid):
		return pkg.NewDomainErrorSimple("ENTRY_ALREADY_PAID", "Finance entry is already paid", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
