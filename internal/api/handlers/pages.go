package handlers

import (
	"net/http"
	"strings"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/models"
	"church-portal/internal/auth"

	"github.com/gin-gonic/gin"
)

// panelSections maps each panel section to the API endpoint it reads and
// the operation needed to see it.
var panelSections = []struct {
	name     string
	endpoint string
	op       auth.Operation
}{
	{"dashboard", "/api/dashboard", auth.OpViewDashboard},
	{"donations", "/api/donations", auth.OpRead},
	{"members", "/api/members", auth.OpRead},
	{"visitors", "/api/visitors", auth.OpRead},
	{"events", "/api/events", auth.OpRead},
	{"streams", "/api/streams", auth.OpRead},
}

var loginErrors = map[string]string{
	"invalid_credentials": "Correo o contraseña incorrectos.",
	"invalid_request":     "Introduzca su correo y contraseña.",
	"configuration_error": "El servicio de acceso no está disponible.",
	"internal_error":      "Se produjo un error. Inténtelo de nuevo.",
}

// HomePage renders the public landing page
func HomePage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{
			"Title": "Inicio",
			"User":  currentSession(c, services),
			"Home":  loadHomeData(c.Request.Context(), services),
		})
	}
}

// PrivacyPolicyPage renders the privacy policy
func PrivacyPolicyPage(services interfaces.Services) gin.HandlerFunc {
	return policyPage(services, "privacy", "Política de privacidad")
}

// CookiePolicyPage renders the cookie policy
func CookiePolicyPage(services interfaces.Services) gin.HandlerFunc {
	return policyPage(services, "cookies", "Política de cookies")
}

func policyPage(services interfaces.Services, policy, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "policy.html", gin.H{
			"Title":  title,
			"Policy": policy,
			"User":   currentSession(c, services),
		})
	}
}

// LoginPage renders the login form. Signed-in users never reach it; the
// routing guard sends them to the panel.
func LoginPage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title": "Acceso",
			"Error": loginErrors[c.Query("error")],
		})
	}
}

// PanelPage renders the panel shell for the requested section. Data is
// fetched from the API, which applies the role policy itself.
func PanelPage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		claim := currentSession(c, services)
		if claim == nil {
			c.Redirect(http.StatusTemporaryRedirect, services.GetConfig().Guard.LoginPath)
			c.Abort()
			return
		}

		section := c.Param("section")
		if section == "" {
			section = "donations"
			if auth.Authorize(claim.Role, auth.OpViewDashboard) == nil {
				section = "dashboard"
			}
		}

		var names []string
		var endpoint string
		var op auth.Operation
		for _, s := range panelSections {
			if auth.Authorize(claim.Role, s.op) == nil {
				names = append(names, s.name)
			}
			if s.name == section {
				endpoint, op = s.endpoint, s.op
			}
		}

		if endpoint == "" {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Title": "No encontrado", "User": claim})
			return
		}

		status := http.StatusOK
		forbidden := auth.Authorize(claim.Role, op) != nil
		if forbidden {
			status = http.StatusForbidden
		}
		c.HTML(status, "panel.html", gin.H{
			"Title":     "Panel",
			"User":      claim,
			"Sections":  names,
			"Section":   section,
			"Endpoint":  endpoint,
			"Forbidden": forbidden,
		})
	}
}

// NotFoundPage renders 404 for pages and the JSON envelope for the API
func NotFoundPage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			respondError(c, models.NewAPIError(models.ErrCodeNotFound, "Endpoint not found", http.StatusNotFound))
			return
		}
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{
			"Title": "No encontrado",
			"User":  currentSession(c, services),
		})
	}
}
