package api

import (
	"fmt"

	"church-portal/internal/api/handlers"
	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/middlewares"
	"church-portal/internal/web"

	"github.com/gin-gonic/gin"
)

// Router bundles the engine with the limiters it owns
type Router struct {
	Engine   *gin.Engine
	limiters []*middlewares.RateLimiter
}

// Close stops the rate limiter cleanup goroutines
func (r *Router) Close() {
	for _, l := range r.limiters {
		l.Stop()
	}
}

// NewRouter builds the gin engine with every route and middleware
func NewRouter(services interfaces.Services) (*Router, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	engine := gin.New()
	// unmatched paths must reach the routing guard through NoRoute
	engine.RedirectTrailingSlash = false
	engine.SetHTMLTemplate(templates)

	r := &Router{Engine: engine}
	SetupRoutes(r, services)
	return r, nil
}

// SetupRoutes configures all routes with proper middleware
func SetupRoutes(r *Router, services interfaces.Services) {
	cfg := services.GetConfig()
	router := r.Engine

	apiLimiter := middlewares.NewRateLimiter(cfg.API.RateLimit)
	loginLimiter := middlewares.NewRateLimiter(cfg.API.LoginRateLimit)
	r.limiters = append(r.limiters, apiLimiter, loginLimiter)

	// Global middleware
	router.Use(middlewares.RequestLogging(services.GetLogger()))
	router.Use(middlewares.Recovery(services.GetLogger()))
	router.Use(middlewares.Security())
	router.Use(middlewares.CORS(cfg.API.CORS))
	router.Use(middlewares.RouteGuard(services.AuthService(), cfg.Guard))

	// Health check (no auth required)
	router.GET("/health", handlers.HealthCheck(services))
	router.GET("/ping", handlers.Ping())

	setupAPIRoutes(router.Group("/api"), services, apiLimiter, loginLimiter)
	setupWebRoutes(router, services)

	router.NoRoute(handlers.NotFoundPage(services))
}

func setupAPIRoutes(rg *gin.RouterGroup, services interfaces.Services, apiLimiter, loginLimiter *middlewares.RateLimiter) {
	rg.Use(middlewares.RateLimit(apiLimiter))
	rg.Use(middlewares.RequestTimeout(services.GetConfig().API.Timeout))

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", middlewares.RateLimit(loginLimiter), handlers.Login(services))
		authGroup.POST("/logout", handlers.Logout(services))
		authGroup.GET("/me", handlers.Me(services))
	}

	public := rg.Group("/public")
	{
		public.GET("/home", handlers.GetPublicHome(services))
		public.GET("/events", handlers.GetPublicEvents(services))
		public.GET("/streams", handlers.GetPublicStreams(services))
	}

	rg.GET("/dashboard", handlers.GetDashboard(services))
	rg.GET("/audit-logs", handlers.GetAuditLogs(services))
	rg.GET("/ws/dashboard", handlers.DashboardWebSocket(services))

	donations := rg.Group("/donations")
	{
		donations.GET("", handlers.ListDonations(services))
		donations.GET("/:id", handlers.GetDonation(services))
		donations.POST("", handlers.CreateDonation(services))
		donations.PATCH("/:id", handlers.UpdateDonation(services))
		donations.DELETE("/:id", handlers.DeleteDonation(services))
	}

	members := rg.Group("/members")
	{
		members.GET("", handlers.ListMembers(services))
		members.GET("/:id", handlers.GetMember(services))
		members.POST("", handlers.CreateMember(services))
		members.PATCH("/:id", handlers.UpdateMember(services))
		members.DELETE("/:id", handlers.DeleteMember(services))
	}

	visitors := rg.Group("/visitors")
	{
		visitors.GET("", handlers.ListVisitors(services))
		visitors.GET("/:id", handlers.GetVisitor(services))
		visitors.POST("", handlers.CreateVisitor(services))
		visitors.PATCH("/:id", handlers.UpdateVisitor(services))
		visitors.DELETE("/:id", handlers.DeleteVisitor(services))
	}

	events := rg.Group("/events")
	{
		events.GET("", handlers.ListEvents(services))
		events.GET("/:id", handlers.GetEvent(services))
		events.POST("", handlers.CreateEvent(services))
		events.PATCH("/:id", handlers.UpdateEvent(services))
		events.DELETE("/:id", handlers.DeleteEvent(services))
	}

	streams := rg.Group("/streams")
	{
		streams.GET("", handlers.ListStreams(services))
		streams.GET("/:id", handlers.GetStream(services))
		streams.POST("", handlers.CreateStream(services))
		streams.PATCH("/:id", handlers.UpdateStream(services))
		streams.DELETE("/:id", handlers.DeleteStream(services))
	}
}

// setupWebRoutes configures the server-rendered pages. The routing guard
// has already run for all of them.
func setupWebRoutes(router *gin.Engine, services interfaces.Services) {
	guard := services.GetConfig().Guard

	router.GET("/", handlers.HomePage(services))
	router.GET("/politica-de-privacidad", handlers.PrivacyPolicyPage(services))
	router.GET("/politica-de-cookies", handlers.CookiePolicyPage(services))
	router.GET(guard.LoginPath, handlers.LoginPage(services))

	panel := router.Group(guard.ProtectedPrefix)
	{
		panel.GET("", handlers.PanelPage(services))
		panel.GET("/:section", handlers.PanelPage(services))
	}
}
