package v1

import (
	"github.com/gin-gonic/gin"
)

// ServerInterface is implemented by the HTTP handlers.
type ServerInterface interface {
	// (POST /networks/search)
	SearchNetworks(c *gin.Context)
	// (POST /networks/geospatial)
	GetGeospatial(c *gin.Context)
	// (POST /networks/analytics)
	GetAnalytics(c *gin.Context)
	// (POST /filters/explain)
	ExplainFilters(c *gin.Context)
	// (GET /filters/schema)
	GetFilterSchema(c *gin.Context)
}

// RegisterHandlers mounts every API route on router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.POST("/networks/search", si.SearchNetworks)
	router.POST("/networks/geospatial", si.GetGeospatial)
	router.POST("/networks/analytics", si.GetAnalytics)
	router.POST("/filters/explain", si.ExplainFilters)
	router.GET("/filters/schema", si.GetFilterSchema)
}
