package handlers

import (
	"net/http"
	"time"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/auth"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns aggregate statistics for admins and leaders
func GetDashboard(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requirePermission(c, services, auth.OpViewDashboard); !ok {
			return
		}

		stats, err := services.DashboardRepository().Stats(c.Request.Context(), time.Now())
		if err != nil {
			respondStoreError(c, services, err, "dashboard stats")
			return
		}
		respondOK(c, http.StatusOK, stats, "")
	}
}
