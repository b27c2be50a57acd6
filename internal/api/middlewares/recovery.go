package middlewares

import (
	"fmt"
	"net/http"

	"church-portal/internal/api/models"
	"church-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery middleware recovers from panics. The panic value is logged, never
// returned to the client.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprint(recovered),
		}).Error("Recovered from panic")

		AbortWithError(c, models.NewAPIError(models.ErrCodeInternalError,
			"Internal server error", http.StatusInternalServerError))
	})
}
