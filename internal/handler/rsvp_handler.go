package handler

import (
	"net/http"
	"strconv"

	"EventPulse/internal/model"
	"EventPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type RSVPHandler struct {
	svc *service.RSVPService
}

type RSVPSubmitReq struct {
	Status string `json:"status"` // 缺省按CONFIRMED
}

func NewRSVPHandler(svc *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{svc: svc}
}

func (h *RSVPHandler) Submit(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req RSVPSubmitReq
	// body可以为空
	_ = c.ShouldBindJSON(&req)

	rsvp, err := h.svc.Submit(c.Request.Context(), eventID, callerID(c), model.RSVPStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rsvp)
}

func (h *RSVPHandler) Cancel(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Cancel(c.Request.Context(), eventID, callerID(c)); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "RSVP cancelled successfully"})
}

func (h *RSVPHandler) List(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	list, err := h.svc.List(eventID, callerID(c), callerRole(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": list})
}
