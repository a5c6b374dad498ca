package router

import (
	"github.com/gin-gonic/gin"

	"gestdoc/internal/domain"
	"gestdoc/internal/handler"
	"gestdoc/internal/middleware"
	"gestdoc/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	extractionH *handler.ExtractionHandler,
	documentH *handler.DocumentHandler,
	companyH *handler.CompanyHandler,
	representativeH *handler.RepresentativeHandler,
	templateH *handler.TemplateHandler,
	placeholderH *handler.PlaceholderHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

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

	// OCR extraction routes
	extraction := protected.Group("/extraction")
	extraction.POST("/ocr", extractionH.ExtractFromImage)
	extraction.POST("/text", extractionH.ExtractFromText)

	// Document generation and registry routes
	documents := protected.Group("/documents")
	documents.POST("/generate", documentH.Generate)
	documents.POST("/process", documentH.Process)
	documents.GET("", documentH.List)
	documents.GET("/export", documentH.Export)
	documents.GET("/:id", documentH.GetByID)
	documents.GET("/:id/download", documentH.Download)
	documents.PATCH("/:id/status", documentH.UpdateStatus)
	documents.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), documentH.Delete)

	// Company routes
	companies := protected.Group("/companies")
	companies.POST("", companyH.Create)
	companies.GET("", companyH.List)
	companies.GET("/:id", companyH.GetByID)
	companies.PUT("/:id", companyH.Update)
	companies.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), companyH.Delete)
	companies.GET("/:id/representatives", companyH.ListRepresentatives)

	// Legal representative routes
	representatives := protected.Group("/representatives")
	representatives.POST("", representativeH.Create)
	representatives.GET("/:id", representativeH.GetByID)
	representatives.PUT("/:id", representativeH.Update)
	representatives.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), representativeH.Delete)

	// Template routes
	templates := protected.Group("/templates")
	templates.POST("", middleware.RequireRole(domain.RoleAdmin), templateH.Upload)
	templates.GET("", templateH.List)
	templates.GET("/:id", templateH.GetByID)
	templates.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), templateH.Update)
	templates.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), templateH.Delete)
	templates.GET("/:id/download", templateH.Download)

	// Placeholder catalog
	protected.GET("/placeholders", placeholderH.List)

	// Admin routes - user management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/users", userH.Create)
	admin.GET("/users", userH.List)
	admin.GET("/users/:id", userH.GetByID)
	admin.PUT("/users/:id", userH.Update)
	admin.DELETE("/users/:id", userH.Delete)

	return r
}
