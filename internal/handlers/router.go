package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/quiz-session-service/internal/services"
	"github.com/SAP-F-2025/quiz-session-service/internal/utils"
	"github.com/SAP-F-2025/quiz-session-service/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	sessionHandler *SessionHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		sessionHandler: NewSessionHandler(serviceManager.Session(), serviceManager.Export(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", hm.sessionHandler.StartSession)
			sessions.GET("/:id", hm.sessionHandler.GetSession)
			sessions.DELETE("/:id", hm.sessionHandler.DeleteSession)

			// Navigation and answering
			sessions.POST("/:id/answer", hm.sessionHandler.SelectAnswer)
			sessions.POST("/:id/advance", hm.sessionHandler.Advance)
			sessions.POST("/:id/retreat", hm.sessionHandler.Retreat)
			sessions.POST("/:id/jump", hm.sessionHandler.JumpTo)
			sessions.POST("/:id/finish", hm.sessionHandler.Finish)
			sessions.POST("/:id/reset", hm.sessionHandler.Reset)

			// Results
			sessions.GET("/:id/result", hm.sessionHandler.GetResult)
			sessions.GET("/:id/result/export", hm.sessionHandler.ExportResult)
		}
	}
}

// HealthCheck reports liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "quiz-session-service",
	})
}
