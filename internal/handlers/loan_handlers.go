package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LoanHandler holds the loan service.
type LoanHandler struct {
	loanService services.LoanService
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(ls services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: ls}
}

// AddLoan records a signed loan entry for a member. Positive amounts
// borrow, negative amounts repay.
func (h *LoanHandler) AddLoan(c *gin.Context) {
	var req services.AddLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	loan, err := h.loanService.AddLoan(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
		case errors.Is(err, services.ErrLoanValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		default:
			utils.LogError(err, "AddLoan: Error from loanService.AddLoan")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record loan.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, loan)
}

// GetLoans lists every loan entry, newest first.
func (h *LoanHandler) GetLoans(c *gin.Context) {
	loans, err := h.loanService.GetAll()
	if err != nil {
		utils.LogError(err, "GetLoans: Error from loanService.GetAll")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch loans.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, loans)
}

// GetBalance returns just the running balance for one member.
func (h *LoanHandler) GetBalance(c *gin.Context) {
	code := c.Param("code")

	balance, err := h.loanService.GetRunningBalance(code)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetBalance: Error from loanService.GetRunningBalance for "+code)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch loan balance.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_code": code, "running_balance": balance})
}

// GetByMember returns one member's loan history with the running balance.
func (h *LoanHandler) GetByMember(c *gin.Context) {
	code := c.Param("code")

	loans, err := h.loanService.GetByMember(code)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetByMember: Error from loanService.GetByMember for "+code)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch loans.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, loans)
}
