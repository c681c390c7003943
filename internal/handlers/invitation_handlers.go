package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InvitationHandler holds the referral invitation service.
type InvitationHandler struct {
	invitationService services.InvitationService
}

// NewInvitationHandler creates a new InvitationHandler.
func NewInvitationHandler(is services.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: is}
}

// AddInvitation records a guest invitation made by a member.
func (h *InvitationHandler) AddInvitation(c *gin.Context) {
	var req services.AddInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	invitation, err := h.invitationService.AddInvitation(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
		case errors.Is(err, services.ErrInvitationValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		default:
			utils.LogError(err, "AddInvitation: Error from invitationService.AddInvitation")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record invitation.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

// GetInvitations lists every invitation, newest first.
func (h *InvitationHandler) GetInvitations(c *gin.Context) {
	invitations, err := h.invitationService.GetAll()
	if err != nil {
		utils.LogError(err, "GetInvitations: Error from invitationService.GetAll")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch invitations.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// GetByMember lists one member's invitations.
func (h *InvitationHandler) GetByMember(c *gin.Context) {
	code := c.Param("code")

	invitations, err := h.invitationService.GetByMember(code)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetByMember: Error from invitationService.GetByMember for "+code)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch invitations.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// TagInvitation flips the converted mark on one invitation.
func (h *InvitationHandler) TagInvitation(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid invitation ID.", err.Error()))
		return
	}

	var req services.TagInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.invitationService.TagInvitation(id, req.Tagged); err != nil {
		if errors.Is(err, services.ErrInvitationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Invitation not found.", err.Error()))
			return
		}
		utils.LogError(err, "TagInvitation: Error from invitationService.TagInvitation")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to tag invitation.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitation updated"})
}

// GetStats returns the invitation totals and the N/M conversion string.
func (h *InvitationHandler) GetStats(c *gin.Context) {
	stats, err := h.invitationService.GetStats()
	if err != nil {
		utils.LogError(err, "GetStats: Error from invitationService.GetStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch invitation stats.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":      stats.Total,
		"tagged":     stats.Tagged,
		"conversion": stats.Conversion(),
	})
}
