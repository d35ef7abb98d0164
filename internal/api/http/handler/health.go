package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/model"
)

const healthPingTimeout = 2 * time.Second

type databaseHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string         `json:"status"`
	Uptime      float64        `json:"uptime"`
	Environment string         `json:"environment"`
	Database    databaseHealth `json:"database"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Health reports liveness and database reachability.
type Health struct {
	db          model.Pinger
	environment string
	started     time.Time
	now         func() time.Time
	logger      *logger.Logger
}

func NewHealth(db model.Pinger, environment string, logger *logger.Logger) *Health {
	return &Health{
		db:          db,
		environment: environment,
		started:     time.Now(),
		now:         time.Now,
		logger:      logger,
	}
}

// Check answers 200 when the database responds and 503 otherwise.
func (h *Health) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	now := h.now()
	resp := healthResponse{
		Status:      "OK",
		Uptime:      now.Sub(h.started).Seconds(),
		Environment: h.environment,
		Database:    databaseHealth{Status: "connected"},
		Timestamp:   now.UTC(),
	}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("HTTP: health check failed",
			"error", err.Error())
		resp.Status = "DEGRADED"
		resp.Database = databaseHealth{Status: "disconnected", Error: err.Error()}
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, resp)
}
