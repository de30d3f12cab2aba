package handlers

import (
	"harvestworld/helper"
	"harvestworld/models"
	"harvestworld/services"

	"github.com/gin-gonic/gin"
)

type ExpertRequestHandler struct {
	expertRequestService services.ExpertRequestService
	Helper               *helper.HTTPHelper
}

func NewExpertRequestHandler(expertRequestService services.ExpertRequestService) *ExpertRequestHandler {
	return &ExpertRequestHandler{
		expertRequestService: expertRequestService,
		Helper:               &helper.HTTPHelper{},
	}
}

func (h *ExpertRequestHandler) CreateRequest(c *gin.Context) {
	var req models.CreateExpertRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	request, err := h.expertRequestService.CreateRequest(req, currentUserID(c))
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendCreated(c, "Expert request submitted", request)
}

func (h *ExpertRequestHandler) GetMyRequests(c *gin.Context) {
	requests, err := h.expertRequestService.GetMyRequests(currentUserID(c))
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", requests)
}
