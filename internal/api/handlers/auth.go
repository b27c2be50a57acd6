package handlers

import (
	"errors"
	"net/http"
	"strings"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/middlewares"
	"church-portal/internal/api/models"
	"church-portal/internal/auth"
	"church-portal/internal/database"

	"github.com/gin-gonic/gin"
)

// isFormPost reports whether the request came from the HTML login form
func isFormPost(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == gin.MIMEPOSTForm || ct == gin.MIMEMultipartPOSTForm
}

// Login verifies email and password and starts a session. Form posts are
// answered with redirects, JSON requests with the user profile.
func Login(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := requestLogger(c, services)
		form := isFormPost(c)
		loginPath := services.GetConfig().Guard.LoginPath

		fail := func(apiErr *models.APIError) {
			if form {
				c.Redirect(http.StatusSeeOther, loginPath+"?error="+strings.ToLower(apiErr.Code))
				c.Abort()
				return
			}
			respondError(c, apiErr)
		}

		var req models.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			fail(models.NewAPIError(models.ErrCodeInvalidRequest,
				"Email and password are required", http.StatusBadRequest))
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		invalid := models.NewAPIError(models.ErrCodeInvalidCredentials,
			"Invalid email or password", http.StatusUnauthorized)

		user, err := services.UserRepository().GetByEmail(c.Request.Context(), email)
		if errors.Is(err, database.ErrNotFound) {
			services.Passwords().VerifyMissing(req.Password)
			log.SecurityLogger("login_failed", "", "unknown email from "+c.ClientIP())
			fail(invalid)
			return
		}
		if err != nil {
			log.StructuredError(err, map[string]interface{}{"operation": "login"})
			fail(models.NewAPIError(models.ErrCodeInternalError,
				"Internal server error", http.StatusInternalServerError))
			return
		}

		if !services.Passwords().Verify(user.PasswordHash, req.Password) {
			log.SecurityLogger("login_failed", user.ID, "wrong password from "+c.ClientIP())
			fail(invalid)
			return
		}

		role, err := auth.ParseRole(user.Role)
		if err != nil {
			log.SecurityLogger("login_failed", user.ID, "stored role is invalid")
			fail(invalid)
			return
		}

		claim := auth.Claim{UserID: user.ID, Email: user.Email, Name: user.Name, Role: role}
		if err := services.Sessions().CreateSession(middlewares.CookieJar(c), claim); err != nil {
			log.StructuredError(err, map[string]interface{}{"operation": "create session"})
			if errors.Is(err, auth.ErrConfiguration) {
				fail(models.NewAPIError(models.ErrCodeConfiguration,
					"Session signing is not configured", http.StatusInternalServerError))
				return
			}
			fail(models.NewAPIError(models.ErrCodeInternalError,
				"Internal server error", http.StatusInternalServerError))
			return
		}

		if err := services.UserRepository().UpdateLastLogin(c.Request.Context(), user.ID); err != nil {
			log.Warning("failed to update last login: %v", err)
		}
		c.Set("user_id", user.ID)
		recordAudit(c, services, &claim, "login", "user", user.ID)

		if form {
			c.Redirect(http.StatusSeeOther, services.GetConfig().Guard.HomePath)
			return
		}
		respondOK(c, http.StatusOK, models.AuthResponse{
			User:      userResponse(&claim),
			ExpiresIn: int64(auth.SessionTTL.Seconds()),
		}, "Login successful")
	}
}

// Logout clears the session cookie. It succeeds without a session.
func Logout(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		jar := middlewares.CookieJar(c)
		if claim := services.Sessions().GetSession(jar); claim != nil {
			requestLogger(c, services).SecurityLogger("logout", claim.UserID, "")
		}
		services.Sessions().DestroySession(jar)

		if isFormPost(c) {
			c.Redirect(http.StatusSeeOther, services.GetConfig().Guard.LoginPath)
			return
		}
		respondOK(c, http.StatusOK, nil, "Logged out")
	}
}

// Me returns the identity carried by the current session
func Me(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		claim := currentSession(c, services)
		if claim == nil {
			respondError(c, models.NewAPIError(models.ErrCodeUnauthorized,
				"Authentication required", http.StatusUnauthorized))
			return
		}
		respondOK(c, http.StatusOK, userResponse(claim), "")
	}
}

func userResponse(claim *auth.Claim) models.UserResponse {
	return models.UserResponse{
		ID:    claim.UserID,
		Email: claim.Email,
		Name:  claim.Name,
		Role:  string(claim.Role),
	}
}
