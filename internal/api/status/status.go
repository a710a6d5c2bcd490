package status

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/namada-indexer/internal/ingest"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/store"
)

const HEALTH_CHECK_TIMEOUT = 2 * time.Second

// Handler serves the operational endpoints of an indexer process
type Handler interface {
	// HealthCheck reports store connectivity
	// GET /health
	HealthCheck(c *gin.Context)

	// GetStatus returns a snapshot of every loop of the process
	// GET /status
	GetStatus(c *gin.Context)
}

type handler struct {
	service string
	store   store.Store
	loops   []ingest.Loop
}

// NewHandler creates the status handler of an indexer process
func NewHandler(service string, st store.Store, loops []ingest.Loop) Handler {
	return &handler{
		service: service,
		store:   st,
		loops:   loops,
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), HEALTH_CHECK_TIMEOUT)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.WarnCtx(ctx, "Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unavailable",
			"service": h.service,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.service,
	})
}

func (h *handler) GetStatus(c *gin.Context) {
	statuses := make([]ingest.Status, 0, len(h.loops))
	for _, l := range h.loops {
		statuses = append(statuses, l.Status())
	}

	c.JSON(http.StatusOK, gin.H{
		"service": h.service,
		"loops":   statuses,
	})
}

// SetupRoutes configures the status routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/status", handler.GetStatus)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
