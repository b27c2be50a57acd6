package handlers

import (
	"context"
	"net/http"
	"time"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Version is overridden at build time with -ldflags
var Version = "1.0.0"

var startTime = time.Now()

// HealthCheck reports process and database health
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		status := "healthy"
		code := http.StatusOK

		start := time.Now()
		dbCheck := models.HealthCheck{Status: "healthy"}
		if err := services.Ping(ctx); err != nil {
			services.GetLogger().Error("Database health check failed: %v", err)
			dbCheck = models.HealthCheck{Status: "unhealthy", Message: "database unreachable"}
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		dbCheck.Latency = time.Since(start).String()

		c.JSON(code, models.HealthCheckResponse{
			Status:    status,
			Timestamp: time.Now().Unix(),
			Version:   Version,
			Uptime:    int64(time.Since(startTime).Seconds()),
			Checks:    map[string]models.HealthCheck{"database": dbCheck},
		})
	}
}

// Ping answers liveness probes without touching dependencies
func Ping() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "timestamp": time.Now().Unix()})
	}
}
