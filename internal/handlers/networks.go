package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/cyclonite69/shadowcheck-static-sub002/api/v1"
)

// SearchNetworks returns one page of networks matching the filters
// (POST /networks/search)
func (h *Handler) SearchNetworks(c *gin.Context) {
	var req v1.NetworkSearchRequest
	if !decode(c, &req) {
		return
	}

	result, err := h.networkSrv.List(c.Request.Context(), req.ToParams())
	if err != nil {
		fail(c, err, "list networks")
		return
	}

	c.JSON(http.StatusOK, v1.NewNetworkSearchResponse(result))
}

// GetGeospatial returns observation points for the map
// (POST /networks/geospatial)
func (h *Handler) GetGeospatial(c *gin.Context) {
	var req v1.GeospatialRequest
	if !decode(c, &req) {
		return
	}

	result, err := h.networkSrv.Geospatial(c.Request.Context(), req.ToParams())
	if err != nil {
		fail(c, err, "load observation points")
		return
	}

	c.JSON(http.StatusOK, v1.NewGeospatialResponse(result))
}

// GetAnalytics returns every dashboard aggregate
// (POST /networks/analytics)
func (h *Handler) GetAnalytics(c *gin.Context) {
	var req v1.FilterPayload
	if !decode(c, &req) {
		return
	}

	result, err := h.networkSrv.Analytics(c.Request.Context(), req.ToRequest())
	if err != nil {
		fail(c, err, "compute analytics")
		return
	}

	c.JSON(http.StatusOK, v1.NewAnalyticsResponse(result))
}
