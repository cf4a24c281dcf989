package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/search-server/internal/analytics"
	internalErrors "github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/internal/metrics"
	"github.com/gcbaptista/search-server/services"
)

// API holds dependencies for API handlers, primarily the search engine manager.
type API struct {
	engine    services.IndexManager
	analytics *analytics.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.IndexManager) *API {
	return &API{
		engine:    engine,
		analytics: analytics.NewService(engine),
	}
}

// RouterOptions configures the middleware chain built by NewRouter.
type RouterOptions struct {
	MaxBodyBytes      int64
	RequestsPerSecond float64
	Burst             int
	Metrics           *metrics.Metrics // nil disables HTTP metrics
}

// NewRouter builds a gin engine with the full middleware chain and all routes.
func NewRouter(engine services.IndexManager, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggerMiddleware(),
		CORSMiddleware(),
		RequestSizeLimitMiddleware(opts.MaxBodyBytes),
		RateLimitMiddleware(opts.RequestsPerSecond, opts.Burst),
	)
	if opts.Metrics != nil {
		router.Use(MetricsMiddleware(opts.Metrics))
	}

	SetupRoutes(router, engine)
	return router
}

// SetupRoutes defines all the API routes for the search server.
func SetupRoutes(router *gin.Engine, engine services.IndexManager) {
	apiHandler := NewAPI(engine)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Request statistics across all indexes
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Index management routes
	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("", apiHandler.CreateIndexHandler)                   // Create a new index
		indexRoutes.GET("", apiHandler.ListIndexesHandler)                    // List all indexes
		indexRoutes.GET("/:indexName", apiHandler.GetIndexHandler)            // Get index settings and size
		indexRoutes.DELETE("/:indexName", apiHandler.DeleteIndexHandler)      // Delete an index
		indexRoutes.GET("/:indexName/stats", apiHandler.GetIndexStatsHandler) // Document count and request statistics

		// Document management routes per index
		docRoutes := indexRoutes.Group("/:indexName/documents")
		{
			docRoutes.PUT("", apiHandler.AddDocumentsHandler)               // Add one document or a batch
			docRoutes.GET("/count", apiHandler.GetDocumentCountHandler)     // Number of documents
			docRoutes.GET("/at/:position", apiHandler.GetDocumentIDHandler) // Document ID by insertion position
		}

		indexRoutes.POST("/:indexName/_search", apiHandler.SearchHandler)
		indexRoutes.POST("/:indexName/_match", apiHandler.MatchHandler)
	}
}

// indexFromPath resolves the :indexName parameter, writing the error response itself.
func (api *API) indexFromPath(c *gin.Context) (services.IndexAccessor, bool) {
	indexName := c.Param("indexName")

	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return nil, false
	}

	accessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return nil, false
		}
		SendInternalError(c, "get index", err)
		return nil, false
	}
	return accessor, true
}
