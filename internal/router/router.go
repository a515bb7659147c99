package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "autopolicy/docs" // registers the swagger spec
	"autopolicy/internal/handler"
	"autopolicy/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Analysis   *handler.AnalysisHandler
	Comparison *handler.ComparisonHandler
	Reference  *handler.ReferenceHandler
	Page       *handler.PageHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(logger *zap.Logger, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	r.SetHTMLTemplate(handler.Templates())

	// Health checks and operations
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Browser pages
	r.GET("/", h.Page.Index)
	r.POST("/analyze/document", h.Page.AnalyzeDocument)
	r.POST("/analyze/manual", h.Page.AnalyzeManual)
	r.POST("/analyze/manual/export", h.Page.ExportManual)

	v1 := r.Group("/api/v1")

	analyses := v1.Group("/analyses")
	analyses.POST("/document", h.Analysis.AnalyzeDocument)
	analyses.POST("/manual", h.Analysis.AnalyzeManual)
	analyses.POST("/manual/export", h.Analysis.ExportManual)

	comparisons := v1.Group("/comparisons")
	comparisons.POST("", h.Comparison.Compare)
	comparisons.POST("/export", h.Comparison.Export)

	ref := v1.Group("/reference")
	ref.GET("", h.Reference.Get)
	ref.GET("/states", h.Reference.States)

	return r
}
