package handlers

import (
	"errors"
	"strconv"

	"harvestworld/helper"
	"harvestworld/models"
	"harvestworld/services"

	"github.com/gin-gonic/gin"
)

// ModerationHandler serves the admin review endpoints. The routes are
// already behind RequireRole(admin); the services re-check regardless.
type ModerationHandler struct {
	moderationService services.ModerationService
	Helper            *helper.HTTPHelper
}

func NewModerationHandler(moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
		Helper:            &helper.HTTPHelper{},
	}
}

func (h *ModerationHandler) sendModerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		h.Helper.SendForbiddenError(c, err.Error(), h.Helper.EmptyJsonMap())
	case errors.Is(err, services.ErrReasonRequired), errors.Is(err, services.ErrSelfRoleChange):
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
	default:
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
	}
}

func (h *ModerationHandler) ApproveArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.moderationService.ApproveArticle(uint(id), currentRole(c)); err != nil {
		h.sendModerationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article approved", h.Helper.EmptyJsonMap())
}

func (h *ModerationHandler) RejectArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.moderationService.RejectArticle(uint(id), req.Reason, currentRole(c)); err != nil {
		h.sendModerationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article rejected", h.Helper.EmptyJsonMap())
}

func (h *ModerationHandler) GetExpertRequests(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	requests, total, err := h.moderationService.GetExpertRequests(status, page, limit, currentRole(c))
	if err != nil {
		h.sendModerationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"expert_requests": requests,
		"pagination":      h.Helper.GeneratePaging(c, limit, page, total),
	})
}

func (h *ModerationHandler) ApproveExpertRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid request ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.moderationService.ApproveExpertRequest(uint(id), currentRole(c)); err != nil {
		h.sendModerationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Expert request approved", h.Helper.EmptyJsonMap())
}

func (h *ModerationHandler) RejectExpertRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid request ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.moderationService.RejectExpertRequest(uint(id), req.Reason, currentRole(c)); err != nil {
		h.sendModerationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Expert request rejected", h.Helper.EmptyJsonMap())
}

func (h *ModerationHandler) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	users, total, err := h.moderationService.GetUsers(page, limit, currentRole(c))
	if err != nil {
		h.sendModerationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"users":      users,
		"pagination": h.Helper.GeneratePaging(c, limit, page, total),
	})
}

func (h *ModerationHandler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.moderationService.UpdateUserRole(uint(id), req.Role, currentUserID(c), currentRole(c)); err != nil {
		h.sendModerationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User role updated", h.Helper.EmptyJsonMap())
}
