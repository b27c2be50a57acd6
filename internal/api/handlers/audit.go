package handlers

import (
	"net/http"
	"strconv"
	"time"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/auth"
	"church-portal/internal/database/repositories"

	"github.com/gin-gonic/gin"
)

// GetAuditLogs retrieves audit logs with filtering and pagination. Admin only.
func GetAuditLogs(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requirePermission(c, services, auth.OpViewAudit); !ok {
			return
		}

		filter := repositories.AuditFilter{
			Action:   c.Query("action"),
			UserID:   c.Query("user_id"),
			Resource: c.Query("resource"),
			Limit:    50,
		}

		// Parse limit and offset
		if limitStr := c.Query("limit"); limitStr != "" {
			if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
				filter.Limit = l
			}
		}
		if offsetStr := c.Query("offset"); offsetStr != "" {
			if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
				filter.Offset = o
			}
		}

		// Parse time range
		if t, err := time.Parse(time.RFC3339, c.Query("start_time")); err == nil {
			filter.StartTime = &t
		}
		if t, err := time.Parse(time.RFC3339, c.Query("end_time")); err == nil {
			filter.EndTime = &t
		}

		logs, err := services.AuditLogRepository().GetAuditLogs(c.Request.Context(), filter)
		if err != nil {
			respondStoreError(c, services, err, "list audit logs")
			return
		}

		respondOK(c, http.StatusOK, gin.H{
			"logs":   logs,
			"limit":  filter.Limit,
			"offset": filter.Offset,
			"total":  len(logs),
		}, "Audit logs retrieved successfully")
	}
}
