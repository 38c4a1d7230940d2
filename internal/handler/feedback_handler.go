package handler

import (
	"net/http"
	"strconv"

	"EventPulse/internal/model"
	"EventPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	svc *service.FeedbackService
}

type FeedbackSubmitReq struct {
	Comment  string `json:"comment"`
	Reaction string `json:"reaction"`
	Emoji    string `json:"emoji"`
}

type ModerateReq struct {
	FeedbackID uint64 `json:"feedbackId" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req FeedbackSubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	fb, err := h.svc.Submit(c.Request.Context(), eventID, callerID(c), req.Comment, model.Reaction(req.Reaction), req.Emoji)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, fb)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	list, err := h.svc.List(eventID, boolQuery(c, "pinned"), boolQuery(c, "flagged"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *FeedbackHandler) Moderate(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req ModerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	fb, err := h.svc.Moderate(c.Request.Context(), eventID, callerID(c), callerRole(c),
		req.FeedbackID, service.ModerationAction(req.Action))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, fb)
}

// boolQuery 没传返回nil，不参与过滤
func boolQuery(c *gin.Context, name string) *bool {
	val, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	b := val == "true"
	return &b
}
