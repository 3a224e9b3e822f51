package router

import (
	"github.com/gin-gonic/gin"

	"printflow/internal/domain"
	"printflow/internal/handler"
	"printflow/internal/middleware"
	"printflow/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	dossierSvc service.DossierService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	dossierH *handler.DossierHandler,
	fileH *handler.FileHandler,
	devisH *handler.DevisHandler,
	paymentH *handler.PaymentHandler,
	activityH *handler.ActivityHandler,
	statsH *handler.StatsHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", authH.Me)

	// Dossier routes. IDs are resolved by the DossierAccess middleware,
	// which applies per-role scoping and picks 403 vs 404 on a miss.
	dossiers := protected.Group("/dossiers")
	dossiers.POST("", dossierH.Create)
	dossiers.GET("", dossierH.List)
	dossiers.GET("/export", statsH.ExportDossiers)
	dossiers.POST("/import", middleware.RequireRole(domain.RoleAdmin), dossierH.Import)

	scoped := dossiers.Group("/:id")
	scoped.Use(middleware.DossierAccess(dossierSvc))
	scoped.GET("", dossierH.Get)
	scoped.PUT("", dossierH.Update)
	scoped.DELETE("", dossierH.Delete)
	scoped.POST("/status", dossierH.ChangeStatus)
	scoped.GET("/actions", dossierH.Actions)
	scoped.POST("/machine", middleware.RequireRole(domain.RoleAdmin), dossierH.AssignMachine)
	scoped.GET("/activity", activityH.ListByDossier)

	scoped.POST("/files", fileH.Upload)
	scoped.GET("/files", fileH.List)
	scoped.GET("/files/:fileId/download", fileH.Download)
	scoped.DELETE("/files/:fileId", fileH.Delete)

	scoped.POST("/payments", paymentH.Record)
	scoped.GET("/payments", paymentH.List)

	// Quotes
	devis := protected.Group("/devis")
	devis.Use(middleware.RequireRole(domain.RoleAdmin, domain.RolePreparateur))
	devis.POST("", devisH.Create)
	devis.GET("", devisH.List)
	devis.GET("/:id", devisH.Get)
	devis.POST("/:id/accept", devisH.Accept)
	devis.POST("/:id/reject", devisH.Reject)

	// Admin dashboard and activity feed
	stats := protected.Group("/stats")
	stats.Use(middleware.RequireRole(domain.RoleAdmin))
	stats.GET("/dashboard", statsH.Dashboard)
	stats.GET("/dashboard/export", statsH.ExportDashboard)
	stats.GET("/preparateurs", statsH.PreparerLoad)

	protected.GET("/activity", middleware.RequireRole(domain.RoleAdmin), activityH.ListRecent)

	// User management
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(domain.RoleAdmin))
	users.POST("", userH.Create)
	users.GET("", userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", userH.Update)
	users.DELETE("/:id", userH.Delete)

	return r
}
