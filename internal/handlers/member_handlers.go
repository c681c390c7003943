package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MemberHandler holds the member service.
type MemberHandler struct {
	memberService services.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(ms services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: ms}
}

func respondMemberError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrMemberNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
	case errors.Is(err, services.ErrMemberCodeExists):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Client code already exists.", err.Error()))
	case errors.Is(err, services.ErrMemberValidation), errors.Is(err, services.ErrDateFormat):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	default:
		utils.LogError(err, action)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal error.", "Internal error"))
	}
}

// CreateMember handles the creation of a new member.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req services.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	member, err := h.memberService.CreateMember(req)
	if err != nil {
		respondMemberError(c, err, "CreateMember: Error from memberService.CreateMember")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GetMembers handles fetching all members, optionally filtered by a search keyword.
func (h *MemberHandler) GetMembers(c *gin.Context) {
	keyword := c.Query("search")

	var err error
	var members interface{}
	if keyword != "" {
		members, err = h.memberService.SearchMembers(keyword)
	} else {
		members, err = h.memberService.GetMembers()
	}
	if err != nil {
		respondMemberError(c, err, "GetMembers: Error from memberService")
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMemberByCode handles fetching a single member by their client code.
func (h *MemberHandler) GetMemberByCode(c *gin.Context) {
	code := c.Param("code")

	member, err := h.memberService.GetMemberByCode(code)
	if err != nil {
		respondMemberError(c, err, "GetMemberByCode: Error from memberService.GetMemberByCode for "+code)
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateMember handles replacing all mutable fields of a member.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	code := c.Param("code")

	var req services.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	member, err := h.memberService.UpdateMember(code, req)
	if err != nil {
		respondMemberError(c, err, "UpdateMember: Error from memberService.UpdateMember for "+code)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember handles deleting a member by their client code.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	code := c.Param("code")

	if err := h.memberService.DeleteMember(code); err != nil {
		respondMemberError(c, err, "DeleteMember: Error from memberService.DeleteMember for "+code)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
