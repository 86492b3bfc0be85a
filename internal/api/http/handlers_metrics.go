package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/WebDesk/backend/internal/infrastructure/monitoring"
)

// MetricsHandlers serves metrics in both exposition and JSON form
type MetricsHandlers struct {
	metrics *monitoring.Metrics
}

// NewMetricsHandlers creates metrics handlers
func NewMetricsHandlers(metrics *monitoring.Metrics) *MetricsHandlers {
	return &MetricsHandlers{metrics: metrics}
}

// Register mounts /metrics and /metrics/json
func (mh *MetricsHandlers) Register(r gin.IRouter) {
	r.GET("/metrics", gin.WrapH(mh.metrics.Handler()))
	r.GET("/metrics/json", mh.JSON)
}

// JSON returns the dashboard snapshot
func (mh *MetricsHandlers) JSON(c *gin.Context) {
	c.JSON(http.StatusOK, mh.metrics.Snapshot())
}
