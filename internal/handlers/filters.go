package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/cyclonite69/shadowcheck-static-sub002/api/v1"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/filters"
)

// ExplainFilters compiles a query without running it
// (POST /filters/explain)
func (h *Handler) ExplainFilters(c *gin.Context) {
	var req v1.ExplainRequest
	if !decode(c, &req) {
		return
	}

	result, err := h.networkSrv.Explain(req.ToParams())
	if err != nil {
		fail(c, err, "explain filters")
		return
	}

	c.JSON(http.StatusOK, v1.NewExplainResponse(result))
}

// GetFilterSchema lists every filter key with its dimension and kind
// (GET /filters/schema)
func (h *Handler) GetFilterSchema(c *gin.Context) {
	c.JSON(http.StatusOK, v1.FilterSchemaResponse{Filters: filters.Specs()})
}
