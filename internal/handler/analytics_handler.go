package handler

import (
	"net/http"
	"strconv"

	"EventPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) EventAnalytics(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	result, err := h.svc.EventAnalytics(c.Request.Context(), eventID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
