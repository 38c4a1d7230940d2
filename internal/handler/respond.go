package handler

import (
	"errors"
	"net/http"

	"EventPulse/internal/middleware"
	"EventPulse/internal/model"
	"EventPulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// statusOf 错误分类统一在这里映射，调用方按状态码分支
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDeadlinePassed),
		errors.Is(err, service.ErrAtCapacity),
		errors.Is(err, service.ErrEventNotLive),
		errors.Is(err, service.ErrWrongDay),
		errors.Is(err, service.ErrNoRSVP),
		errors.Is(err, service.ErrAlreadyCheckedIn),
		errors.Is(err, service.ErrNotRSVPed),
		errors.Is(err, service.ErrDuplicateFeedback),
		errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func callerID(c *gin.Context) uint64 {
	v, _ := c.Get(middleware.ContextUserIDKey)
	id, _ := v.(uint64)
	return id
}

func callerRole(c *gin.Context) model.Role {
	v, _ := c.Get(middleware.ContextRoleKey)
	role, _ := v.(model.Role)
	return role
}
