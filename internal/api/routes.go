package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupServiceRoutes configures service-specific API routes. Health
// routes are registered by the server builder.
func SetupServiceRoutes(router *gin.Engine, handler *Handler, metrics http.Handler) {
	v1 := router.Group("/api/v1")

	// Classification endpoints
	classify := v1.Group("/classify")
	classify.POST("", handler.Classify)            // POST /api/v1/classify
	classify.POST("/batch", handler.ClassifyBatch) // POST /api/v1/classify/batch

	// Routing and combined analysis
	v1.POST("/route", handler.Route)     // POST /api/v1/route
	v1.POST("/analyze", handler.Analyze) // POST /api/v1/analyze

	// Location endpoints
	locations := v1.Group("/locations")
	locations.POST("/extract", handler.ExtractLocation) // POST /api/v1/locations/extract
	locations.POST("/fuse", handler.FuseLocation)       // POST /api/v1/locations/fuse

	// Department directory
	departments := v1.Group("/departments")
	departments.GET("", handler.ListDepartments)          // GET /api/v1/departments
	departments.GET("/search", handler.SearchDepartments) // GET /api/v1/departments/search
	departments.GET("/:code", handler.GetDepartment)      // GET /api/v1/departments/:code

	// Category directory
	categories := v1.Group("/categories")
	categories.GET("", handler.ListCategories)                         // GET /api/v1/categories
	categories.GET("/:category/template", handler.GetCategoryTemplate) // GET /api/v1/categories/:category/template

	// Readiness probe
	router.GET("/ready", handler.ReadyCheck)

	// Prometheus metrics
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}
}
