package middlewares

import (
	"net/http"
	"strings"
	"time"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/models"
	"church-portal/internal/auth"
	"church-portal/pkg/config"

	"github.com/gin-gonic/gin"
)

const sessionClaimKey = "session_claim"

// RouteGuard redirects on session presence. For every request, first match wins:
// no valid session under the protected prefix goes to the login page, a valid
// session on the login page goes to the panel, anything else passes through.
// Roles are not considered here.
func RouteGuard(validator interfaces.TokenValidator, guard config.GuardConfig) gin.HandlerFunc {
	prefix := strings.TrimRight(guard.ProtectedPrefix, "/")
	home := guard.HomePath
	if home == "" {
		home = prefix
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		var claim *auth.Claim
		if cookie, ok := CookieJar(c).Get(auth.SessionCookieName); ok && cookie.Value != "" {
			claim = validator.Validate(cookie.Value)
		}

		if claim == nil && isUnder(path, prefix) {
			c.Redirect(http.StatusTemporaryRedirect, guard.LoginPath)
			c.Abort()
			return
		}

		if claim != nil && path == guard.LoginPath {
			c.Redirect(http.StatusTemporaryRedirect, home)
			c.Abort()
			return
		}

		if claim != nil {
			c.Set(sessionClaimKey, claim)
			c.Set("user_id", claim.UserID)
			c.Set("user_role", string(claim.Role))
		}
		c.Next()
	}
}

func isUnder(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// GuardClaim returns the claim the guard validated for this request, if any.
func GuardClaim(c *gin.Context) *auth.Claim {
	if v, ok := c.Get(sessionClaimKey); ok {
		if claim, ok := v.(*auth.Claim); ok {
			return claim
		}
	}
	return nil
}

// AbortWithError writes the JSON error envelope and stops the chain
func AbortWithError(c *gin.Context, apiErr *models.APIError) {
	c.JSON(apiErr.StatusCode, models.BaseResponse{
		Success:   false,
		Error:     apiErr.Info(),
		Timestamp: time.Now().Unix(),
		RequestID: c.GetString("request_id"),
	})
	c.Abort()
}
