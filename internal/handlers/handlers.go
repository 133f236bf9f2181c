package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	v1 "github.com/cyclonite69/shadowcheck-static-sub002/api/v1"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/services"
	srvErrors "github.com/cyclonite69/shadowcheck-static-sub002/pkg/errors"
)

// NetworkService is the service behind the network endpoints.
type NetworkService interface {
	List(ctx context.Context, params services.ListParams) (*services.ListResult, error)
	Geospatial(ctx context.Context, params services.GeospatialParams) (*services.GeospatialResult, error)
	Analytics(ctx context.Context, req services.FilterRequest) (*services.AnalyticsResult, error)
	Explain(params services.ExplainParams) (*models.QueryResult, error)
}

type Handler struct {
	networkSrv NetworkService
}

func New(networkSrv NetworkService) *Handler {
	return &Handler{networkSrv: networkSrv}
}

// decode reads a JSON body. An empty body decodes to the zero request.
func decode(c *gin.Context, dst any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "invalid request body: " + err.Error(), RequestID: RequestIDFrom(c)})
		return false
	}
	return true
}

// fail maps service errors onto HTTP responses.
func fail(c *gin.Context, err error, action string) {
	switch {
	case srvErrors.IsValidationFailedError(err):
		c.JSON(http.StatusBadRequest, v1.ValidationErrorResponse{Errors: srvErrors.ValidationErrors(err)})
	case srvErrors.IsUnsupportedShapeError(err):
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error(), RequestID: RequestIDFrom(c)})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, v1.ErrorResponse{Error: "request cancelled", RequestID: RequestIDFrom(c)})
	default:
		zap.S().Named("network_handler").Errorw("failed to "+action, "error", err, "request_id", RequestIDFrom(c))
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to " + action, RequestID: RequestIDFrom(c)})
	}
}
