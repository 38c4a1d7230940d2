package handler

import (
	"net/http"
	"strconv"

	"EventPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	svc *service.CheckInService
}

type WalkInReq struct {
	Email string `json:"email" binding:"required,email"`
}

func NewCheckInHandler(svc *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{svc: svc}
}

func (h *CheckInHandler) SelfCheckIn(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	rsvp, err := h.svc.SelfCheckIn(c.Request.Context(), eventID, callerID(c))
	if err != nil {
		fail(c, err)
		return
	}

	// 主办方本人没有RSVP行
	if rsvp == nil {
		c.JSON(http.StatusOK, gin.H{"msg": "host check-in successful"})
		return
	}

	c.JSON(http.StatusOK, rsvp)
}

// WalkIn 主办方现场补录
func (h *CheckInHandler) WalkIn(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req WalkInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	rsvp, err := h.svc.WalkIn(c.Request.Context(), eventID, callerID(c), req.Email)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rsvp)
}
