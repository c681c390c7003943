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

// AttendanceHandler holds the attendance service.
type AttendanceHandler struct {
	attendanceService services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(as services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: as}
}

// LogCheckIn records one check-in for a member; the recording user comes
// from the session.
func (h *AttendanceHandler) LogCheckIn(c *gin.Context) {
	var req services.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
		return
	}

	id, err := h.attendanceService.LogCheckIn(req, userID)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
			return
		}
		utils.LogError(err, "LogCheckIn: Error from attendanceService.LogCheckIn")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to log check-in.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetByDate lists check-ins for one calendar day; defaults to today.
func (h *AttendanceHandler) GetByDate(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(models.DateLayout))

	checkins, err := h.attendanceService.GetByDate(date)
	if err != nil {
		if errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.LogError(err, "GetByDate: Error from attendanceService.GetByDate")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch attendance.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, checkins)
}

// GetByMember lists every check-in of one member.
func (h *AttendanceHandler) GetByMember(c *gin.Context) {
	code := c.Param("code")

	checkins, err := h.attendanceService.GetByMember(code)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetByMember: Error from attendanceService.GetByMember for "+code)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch attendance.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, checkins)
}
