package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler holds the private training session service.
type SessionHandler struct {
	sessionService services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(ss services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: ss}
}

// AddSession records one private training session.
func (h *SessionHandler) AddSession(c *gin.Context) {
	var req services.AddSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	session, err := h.sessionService.AddSession(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
		case errors.Is(err, services.ErrSessionValidation), errors.Is(err, services.ErrDateFormat):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		default:
			utils.LogError(err, "AddSession: Error from sessionService.AddSession")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record session.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSessions lists sessions, optionally filtered by ?trainer= name.
func (h *SessionHandler) GetSessions(c *gin.Context) {
	trainer := c.Query("trainer")

	var err error
	var sessions interface{}
	if trainer != "" {
		sessions, err = h.sessionService.GetByTrainer(trainer)
	} else {
		sessions, err = h.sessionService.GetAll()
	}
	if err != nil {
		utils.LogError(err, "GetSessions: Error listing sessions")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sessions.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetByMember lists one member's sessions.
func (h *SessionHandler) GetByMember(c *gin.Context) {
	code := c.Param("code")

	sessions, err := h.sessionService.GetByMember(code)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetByMember: Error from sessionService.GetByMember for "+code)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sessions.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, sessions)
}
