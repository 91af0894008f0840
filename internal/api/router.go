// Package api wires the gin router for the MesseCall service.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lukasbehr/messecall/internal/api/admin"
	"github.com/lukasbehr/messecall/internal/api/planning"
	publicapi "github.com/lukasbehr/messecall/internal/api/public"
)

// HealthChecker reports backend liveness for /healthz.
type HealthChecker interface {
	Health() error
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(
	adminHandler *admin.Handler,
	planningHandler *planning.Handler,
	publicHandler *publicapi.Handler,
	health HealthChecker,
	environment string,
) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		if err := health.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/churches", adminHandler.CreateChurch)
		v1.GET("/churches", adminHandler.ListChurches)
		v1.POST("/users", adminHandler.CreateUser)
		v1.GET("/users", adminHandler.ListUsers)
		v1.POST("/events", adminHandler.CreateEvent)
		v1.GET("/events", adminHandler.ListEvents)
		v1.POST("/assignments", adminHandler.CreateAssignment)
		v1.GET("/assignments", adminHandler.ListAssignments)
		v1.POST("/preferences", adminHandler.CreatePreference)
		v1.POST("/availability", adminHandler.CreateAvailability)
		v1.POST("/volunteer-interests", adminHandler.CreateVolunteerInterest)
		v1.POST("/backup-pool", adminHandler.CreateBackupPoolEntry)
		v1.POST("/gamification", adminHandler.CreateGamification)
		v1.GET("/gamification/:user_id", adminHandler.GetGamification)
		v1.GET("/notifications/:user_id", adminHandler.ListNotifications)

		v1.POST("/events/:id/suggestions", planningHandler.SuggestPlan)
		v1.POST("/events/:id/proposals", planningHandler.ProposePlan)
		v1.POST("/assignments/:id/approve", planningHandler.ApproveAssignment)
		v1.POST("/swap-requests", planningHandler.CreateSwapRequest)
		v1.POST("/swap-requests/:id/accept", planningHandler.AcceptSwapRequest)
		v1.GET("/backup-pool/suggestions", planningHandler.BackupSuggestions)
	}

	public := router.Group("/public")
	{
		public.GET("/churches/:id/events", publicHandler.ListPublicEvents)
		public.GET("/churches/:id/events.ics", publicHandler.ExportPublicEventsICS)
	}

	return router
}
