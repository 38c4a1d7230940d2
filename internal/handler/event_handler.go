package handler

import (
	"net/http"
	"strconv"
	"time"

	"EventPulse/internal/model"
	"EventPulse/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

type EventCreateReq struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DateTime     time.Time `json:"dateTime"`
	Timezone     string    `json:"timezone"`
	Location     string    `json:"location"`
	RSVPDeadline time.Time `json:"rsvpDeadline"`
	MaxAttendees *int      `json:"maxAttendees"`
}

type EventStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	event, err := h.svc.CreateEvent(callerID(c), callerRole(c), service.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		DateTime:     req.DateTime,
		Timezone:     req.Timezone,
		Location:     req.Location,
		RSVPDeadline: req.RSVPDeadline,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) List(c *gin.Context) {
	status := model.EventStatus(c.Query("status"))
	hostID, _ := strconv.ParseUint(c.Query("hostId"), 10, 64)

	list, err := h.svc.ListEvents(callerID(c), callerRole(c), status, hostID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *EventHandler) Get(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	event, err := h.svc.GetEvent(eventID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) UpdateStatus(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req EventStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	event, err := h.svc.UpdateStatus(eventID, callerID(c), callerRole(c), model.EventStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}
