package handlers

import (
	"errors"
	"net/http"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FinanceHandler holds the finance service.
type FinanceHandler struct {
	financeService services.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(fs services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: fs}
}

func respondFinanceError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, services.ErrMemberNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
	case errors.Is(err, services.ErrFinanceValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
	case errors.Is(err, services.ErrDateFormat):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
	default:
		utils.LogError(err, context)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Finance operation failed.", "Internal error"))
	}
}

// AddPayment records a member payment attributed to the session user.
func (h *FinanceHandler) AddPayment(c *gin.Context) {
	var req services.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
		return
	}

	id, err := h.financeService.AddPayment(req, userID)
	if err != nil {
		respondFinanceError(c, err, "AddPayment: Error from financeService.AddPayment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// AddExpense records an outgoing entry attributed to the session user.
func (h *FinanceHandler) AddExpense(c *gin.Context) {
	var req services.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
		return
	}

	id, err := h.financeService.AddExpense(req, userID)
	if err != nil {
		respondFinanceError(c, err, "AddExpense: Error from financeService.AddExpense")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetPayments lists payments for one day, defaulting to today.
func (h *FinanceHandler) GetPayments(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(models.DateLayout))

	payments, err := h.financeService.GetPaymentsByDate(date)
	if err != nil {
		respondFinanceError(c, err, "GetPayments: Error from financeService.GetPaymentsByDate")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetExpenses lists non-payment entries for one day, defaulting to today.
func (h *FinanceHandler) GetExpenses(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(models.DateLayout))

	expenses, err := h.financeService.GetExpensesByDate(date)
	if err != nil {
		respondFinanceError(c, err, "GetExpenses: Error from financeService.GetExpensesByDate")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GetUnmatchedPayments lists payment rows with no member or a non-positive
// amount.
func (h *FinanceHandler) GetUnmatchedPayments(c *gin.Context) {
	payments, err := h.financeService.GetUnmatchedPayments()
	if err != nil {
		respondFinanceError(c, err, "GetUnmatchedPayments: Error from financeService.GetUnmatchedPayments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetDailyPayments lists the session user's own payments for one day.
func (h *FinanceHandler) GetDailyPayments(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(models.DateLayout))

	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
		return
	}

	payments, err := h.financeService.GetDailyPaymentsByUser(userID, date)
	if err != nil {
		respondFinanceError(c, err, "GetDailyPayments: Error from financeService.GetDailyPaymentsByUser")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetAll lists every finance entry, newest first.
func (h *FinanceHandler) GetAll(c *gin.Context) {
	entries, err := h.financeService.GetAll()
	if err != nil {
		respondFinanceError(c, err, "GetAll: Error from financeService.GetAll")
		return
	}
	c.JSON(http.StatusOK, entries)
}
