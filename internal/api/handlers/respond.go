package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/middlewares"
	"church-portal/internal/api/models"
	"church-portal/internal/auth"
	"church-portal/internal/database"
	"church-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, models.BaseResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Unix(),
		RequestID: c.GetString("request_id"),
	})
}

func respondError(c *gin.Context, apiErr *models.APIError) {
	middlewares.AbortWithError(c, apiErr)
}

func requestLogger(c *gin.Context, services interfaces.Services) *logger.Logger {
	return logger.GetLoggerFromContext(c, services.GetLogger())
}

// currentSession re-validates the session cookie. The routing guard's
// decision is never trusted for data access.
func currentSession(c *gin.Context, services interfaces.Services) *auth.Claim {
	return services.Sessions().GetSession(middlewares.CookieJar(c))
}

// requirePermission resolves the session and checks op against the role
// policy, writing 401 or 403 when it fails.
func requirePermission(c *gin.Context, services interfaces.Services, op auth.Operation) (*auth.Claim, bool) {
	claim := currentSession(c, services)
	err := auth.Require(claim, op)
	if err == nil {
		c.Set("user_id", claim.UserID)
		return claim, true
	}

	if errors.Is(err, auth.ErrUnauthorized) {
		respondError(c, models.NewAPIError(models.ErrCodeUnauthorized,
			"Authentication required", http.StatusUnauthorized))
		return nil, false
	}

	requestLogger(c, services).SecurityLogger("permission_denied", claim.UserID,
		string(claim.Role)+" "+string(op)+" "+c.Request.Method+" "+c.FullPath())
	respondError(c, models.NewAPIError(models.ErrCodeForbidden,
		"Insufficient permissions", http.StatusForbidden))
	return nil, false
}

// respondStoreError maps repository errors onto the API envelope
func respondStoreError(c *gin.Context, services interfaces.Services, err error, op string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(c, models.NewAPIError(models.ErrCodeNotFound, "Record not found", http.StatusNotFound))
	case errors.Is(err, database.ErrDuplicate):
		respondError(c, models.NewAPIError(models.ErrCodeConflict, "Record already exists", http.StatusConflict))
	case errors.Is(err, context.DeadlineExceeded):
		requestLogger(c, services).Warning("%s timed out", op)
		respondError(c, models.NewAPIError(models.ErrCodeServiceUnavailable,
			"Request timed out", http.StatusServiceUnavailable))
	default:
		requestLogger(c, services).StructuredError(err, map[string]interface{}{
			"operation": op,
			"path":      c.Request.URL.Path,
		})
		respondError(c, models.NewAPIError(models.ErrCodeInternalError,
			"Internal server error", http.StatusInternalServerError))
	}
}

// recordAudit persists a mutation and mirrors it to the audit log stream.
// A failed insert is logged but does not fail the request.
func recordAudit(c *gin.Context, services interfaces.Services, claim *auth.Claim, action, resource, resourceID string) {
	entry := &database.AuditLog{
		Action:     action,
		UserID:     claim.UserID,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    c.Request.Method + " " + c.Request.URL.Path,
		IPAddress:  c.ClientIP(),
	}
	log := requestLogger(c, services)
	if err := services.AuditLogRepository().InsertAuditLog(c.Request.Context(), entry); err != nil {
		log.Warning("failed to store audit log: %v", err)
	}
	log.AuditLogger(action, claim.UserID, resource, resourceID)
}
