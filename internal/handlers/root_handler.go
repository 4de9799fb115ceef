package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Booking Services API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": gin.H{
			"users":    "/users",
			"services": "/services",
			"bookings": "/bookings",
			"stats":    "/stats",
		},
	})
}

func (h *RootHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
