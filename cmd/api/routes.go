package main

import (
	"grace-voice/internal/activity"
	"grace-voice/internal/auth"
	"grace-voice/internal/config"
	"grace-voice/internal/httpapi"
	"grace-voice/internal/rbac"
	"grace-voice/internal/telephony"
	"grace-voice/internal/tenant"
	"grace-voice/internal/voice"

	"github.com/gin-gonic/gin"
)

type routeDeps struct {
	cfg        config.Config
	auth       *auth.Manager
	churches   tenant.Store
	activities *activity.Service
	turns      *voice.TurnHandler
}

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers delegate to internal modules.
func registerRoutes(r *gin.Engine, deps routeDeps) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Provider voice webhooks (public, signature-checked).
	{
		h := telephony.VoiceWebhookHandler{
			Tenants:         deps.churches,
			Turns:           deps.turns,
			Activities:      deps.activities,
			DefaultGreeting: deps.cfg.Voice.DefaultGreeting,
		}
		sig := telephony.RequireSignature(deps.cfg.Twilio.AuthToken, deps.cfg.Twilio.PublicBaseURL)

		voiceGroup := r.Group("/voice")
		voiceGroup.Use(sig)
		{
			voiceGroup.POST("/incoming", h.HandleIncomingCall)
			voiceGroup.POST("/turn", h.HandleTurn)
			voiceGroup.POST("/status", h.HandleStatus)
		}
	}

	// Dashboard-facing API.
	v1 := r.Group("/v1")
	{
		api := httpapi.Handlers{
			Auth:       deps.auth,
			Activities: deps.activities,
		}

		v1.POST("/auth/login", api.Login)

		protected := v1.Group("")
		protected.Use(auth.RequireAccessToken(deps.auth))
		protected.Use(rbac.RequireChurch())
		{
			activities := protected.Group("/activities")
			activities.Use(rbac.RequireAnyRole(rbac.RoleAdmin, rbac.RolePastor, rbac.RoleStaff))
			{
				activities.GET("", api.ListActivities)
			}
		}
	}
}
