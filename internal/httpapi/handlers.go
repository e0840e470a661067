package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"grace-voice/internal/activity"
	"grace-voice/internal/auth"
	"grace-voice/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.
type Handlers struct {
	Auth       *auth.Manager
	Activities *activity.Service
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	ChurchID string `json:"church_id"`
	Role     string `json:"role"`
}

// Login issues a JWT token pair.
//
// NOTE: This is a skeleton-only endpoint. Real systems must validate credentials.
func (h Handlers) Login(c *gin.Context) {
	if h.Auth == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.UserID == "" || req.ChurchID == "" || req.Role == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id, church_id, role required"})
		return
	}
	pair, err := h.Auth.IssuePair(time.Now(), req.UserID, req.ChurchID, req.Role)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// ListActivities returns the caller's church activity feed, newest first.
func (h Handlers) ListActivities(c *gin.Context) {
	if h.Activities == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "activities not configured"})
		return
	}
	churchID, err := auth.ChurchID(c.Request.Context())
	if err != nil || churchID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "church_id required"})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	entries, err := h.Activities.ListRecent(c.Request.Context(), churchID, limit)
	if err != nil {
		logger.FromGin(c).Error("activity list failed", "church_id", churchID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "activity lookup failed"})
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"activities": entries})
}
