package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gym_crm_backend/internal/export"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetDashboardSummary returns the live dashboard counters.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.reportService.GetDashboardSummary()
	if err != nil {
		utils.LogError(err, "GetDashboardSummary: Error from reportService.GetDashboardSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDailyCashier returns the session user's cashier total for today.
func (h *ReportHandler) GetDailyCashier(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
		return
	}

	summary, err := h.reportService.GetDailyCashier(userID)
	if err != nil {
		utils.LogError(err, "GetDailyCashier: Error from reportService.GetDailyCashier")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute daily cashier total.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_cashier": summary.DailyCashier})
}

// GetMonthlySummary rolls one YYYY-MM month up into revenue, expenses and
// net profit. Defaults to the current month.
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	summary, err := h.reportService.GetMonthlySummary(month)
	if err != nil {
		if errors.Is(err, services.ErrMonthFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.LogError(err, "GetMonthlySummary: Error from reportService.GetMonthlySummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute monthly summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetRegisteredToday lists members created today.
func (h *ReportHandler) GetRegisteredToday(c *gin.Context) {
	members, err := h.reportService.GetRegisteredToday()
	if err != nil {
		utils.LogError(err, "GetRegisteredToday: Error from reportService.GetRegisteredToday")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch today's registrations.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetPaidToday lists today's payment entries.
func (h *ReportHandler) GetPaidToday(c *gin.Context) {
	entries, err := h.reportService.GetPaidToday()
	if err != nil {
		utils.LogError(err, "GetPaidToday: Error from reportService.GetPaidToday")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch today's payments.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetAttendedToday lists today's check-ins.
func (h *ReportHandler) GetAttendedToday(c *gin.Context) {
	checkins, err := h.reportService.GetAttendedToday()
	if err != nil {
		utils.LogError(err, "GetAttendedToday: Error from reportService.GetAttendedToday")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch today's attendance.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, checkins)
}

// GetMonthlyFinancials lists the raw finance entries for one YYYY-MM month.
func (h *ReportHandler) GetMonthlyFinancials(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	entries, err := h.reportService.GetMonthlyFinancials(month)
	if err != nil {
		if errors.Is(err, services.ErrMonthFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.LogError(err, "GetMonthlyFinancials: Error from reportService.GetMonthlyFinancials")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch monthly financials.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetMissingPayments lists members with an outstanding remaining balance.
func (h *ReportHandler) GetMissingPayments(c *gin.Context) {
	rows, err := h.reportService.GetMissingPayments()
	if err != nil {
		utils.LogError(err, "GetMissingPayments: Error from reportService.GetMissingPayments")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch missing payments.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ExportMissingPayments streams the missing-payments report as CSV.
func (h *ReportHandler) ExportMissingPayments(c *gin.Context) {
	table, err := h.reportService.MissingPaymentsTable()
	if err != nil {
		utils.LogError(err, "ExportMissingPayments: Error from reportService.MissingPaymentsTable")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build report.", "Internal error"))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="missing_payments.csv"`)
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, table); err != nil {
		utils.LogError(err, "ExportMissingPayments: Error writing CSV")
	}
}

// ExportMonthlyFinancials streams one month's finance entries as CSV.
func (h *ReportHandler) ExportMonthlyFinancials(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	table, err := h.reportService.MonthlyFinancialsTable(month)
	if err != nil {
		if errors.Is(err, services.ErrMonthFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.LogError(err, "ExportMonthlyFinancials: Error from reportService.MonthlyFinancialsTable")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build report.", "Internal error"))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "financials_"+month+".csv"))
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, table); err != nil {
		utils.LogError(err, "ExportMonthlyFinancials: Error writing CSV")
	}
}
