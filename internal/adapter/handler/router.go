package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haiminhdev/meeting-relay/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	webhookHandler *WebhookHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, webhookHandler *WebhookHandler) *Router {
	return &Router{
		cfg:            cfg,
		webhookHandler: webhookHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)
	e.POST("/webhook", rt.webhookHandler.HandleMeetingEnd)
}

// root returns service info
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "online",
		"service": "Meeting Relay",
		"endpoints": map[string]string{
			"/webhook": "POST - Receives meeting-end webhooks",
			"/health":  "GET - Health check",
		},
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
