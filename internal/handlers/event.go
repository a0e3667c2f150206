package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PratikDhanave/fb-app-events-adapter/internal/auth"
	"github.com/PratikDhanave/fb-app-events-adapter/internal/facebook"
	"github.com/PratikDhanave/fb-app-events-adapter/internal/models"
)

// Integrations hands out the integration of an authenticated tenant.
type Integrations interface {
	For(tenantID string) (*facebook.Integration, error)
}

// messageID picks the id a message is acknowledged with:
// 1) Idempotency-Key header
// 2) messageId in payload
// 3) generated UUID
func messageID(c *gin.Context, fromBody string) string {
	if id := c.GetHeader("Idempotency-Key"); id != "" {
		return id
	}
	if fromBody != "" {
		return fromBody
	}
	return uuid.New().String()
}

// integrationFor resolves the tenant's integration or writes the error
// response and returns nil.
func integrationFor(c *gin.Context, reg Integrations) *facebook.Integration {
	tenantID := auth.TenantID(c)
	if tenantID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}

	i, err := reg.For(tenantID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "destination unavailable"})
		return nil
	}
	return i
}

// RegisterEventRoutes registers the host client entry points.
//
// POST /v1/identify, /v1/track, /v1/screen
// - Requires X-API-Key (tenant context)
// - 202 once the integration has handled the message; messages the
//   integration drops (empty event or screen name) are acknowledged with
//   dropped=true
//
// POST /v1/reset clears the user; PUT /v1/destination-config re-applies the
// destination config.
func RegisterEventRoutes(r gin.IRoutes, reg Integrations) {
	r.POST("/v1/identify", func(c *gin.Context) {
		var req models.IdentifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		i := integrationFor(c, reg)
		if i == nil {
			return
		}

		i.Identify(facebook.IdentifyEvent{UserID: req.UserID, Traits: req.Traits})

		c.JSON(http.StatusAccepted, models.MessageResponse{MessageID: messageID(c, req.MessageID)})
	})

	r.POST("/v1/track", func(c *gin.Context) {
		var req models.TrackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		i := integrationFor(c, reg)
		if i == nil {
			return
		}

		i.Track(facebook.TrackEvent{Event: req.Event, Properties: req.Properties})

		c.JSON(http.StatusAccepted, models.MessageResponse{
			MessageID: messageID(c, req.MessageID),
			Dropped:   req.Event == "",
		})
	})

	r.POST("/v1/screen", func(c *gin.Context) {
		var req models.ScreenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		i := integrationFor(c, reg)
		if i == nil {
			return
		}

		i.Screen(facebook.NewScreenEvent(req.Name, req.Category, req.Properties))

		c.JSON(http.StatusAccepted, models.MessageResponse{
			MessageID: messageID(c, req.MessageID),
			Dropped:   req.Name == "",
		})
	})

	r.POST("/v1/reset", func(c *gin.Context) {
		i := integrationFor(c, reg)
		if i == nil {
			return
		}
		i.Reset()
		c.Status(http.StatusNoContent)
	})

	r.PUT("/v1/destination-config", func(c *gin.Context) {
		var config map[string]any
		if err := c.ShouldBindJSON(&config); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		i := integrationFor(c, reg)
		if i == nil {
			return
		}

		if err := i.Update(config); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "destination config update failed"})
			return
		}

		cc := i.Compliance()
		c.JSON(http.StatusOK, gin.H{
			"limitedDataUse": cc.LimitedDataUse,
			"dpoState":       cc.DPOState,
			"dpoCountry":     cc.DPOCountry,
		})
	})
}
