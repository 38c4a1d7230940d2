package router

import (
	"EventPulse/internal/handler"
	"EventPulse/internal/middleware"
	"EventPulse/internal/repository/redis"
	"EventPulse/internal/service"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, rdb *goredis.Client) *gin.Engine {
	r := gin.Default()

	sessions := &redis.SessionRepository{RDB: rdb}

	user := handler.NewUserHandler(service.NewUserService(db, rdb))
	event := handler.NewEventHandler(service.NewEventService(db))
	rsvp := handler.NewRSVPHandler(service.NewRSVPService(db, rdb))
	checkin := handler.NewCheckInHandler(service.NewCheckInService(db, rdb))
	feedback := handler.NewFeedbackHandler(service.NewFeedbackService(db, rdb))
	analytics := handler.NewAnalyticsHandler(service.NewAnalyticsService(db, rdb))

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	authGroup := r.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(sessions))
	{
		authGroup.POST("/user/logout", user.Logout)
		authGroup.POST("/user/change-password", user.ChangePassword)

		authGroup.POST("/events", event.Create)
		authGroup.GET("/events", event.List)
		authGroup.GET("/events/:id", event.Get)
		authGroup.PATCH("/events/:id/status", event.UpdateStatus)

		authGroup.POST("/events/:id/rsvp", rsvp.Submit)
		authGroup.GET("/events/:id/rsvp", rsvp.List)
		authGroup.DELETE("/events/:id/rsvp", rsvp.Cancel)

		authGroup.POST("/events/:id/check-in", checkin.SelfCheckIn)
		authGroup.PUT("/events/:id/check-in", checkin.WalkIn)

		authGroup.POST("/events/:id/feedback", feedback.Submit)
		authGroup.GET("/events/:id/feedback", feedback.List)
		authGroup.PATCH("/events/:id/feedback", feedback.Moderate)

		authGroup.GET("/events/:id/analytics", analytics.EventAnalytics)
	}

	return r
}
