// Package health keeps the gRPC health service in step with the user store.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/model"
)

// ServiceName is reported alongside the overall ("") status.
const ServiceName = "wedwisely.UserStore"

// Monitor pings the store on an interval and publishes the result.
type Monitor struct {
	db       model.Pinger
	server   *health.Server
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger
}

func NewMonitor(db model.Pinger, server *health.Server, interval time.Duration, logger *logger.Logger) *Monitor {
	timeout := interval / 2
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &Monitor{
		db:       db,
		server:   server,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Check pings once and updates both service entries.
func (m *Monitor) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := m.db.Ping(ctx); err != nil {
		m.logger.Warn("Health monitor: store ping failed",
			"error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	m.server.SetServingStatus("", status)
	m.server.SetServingStatus(ServiceName, status)
	return status
}

// Run checks immediately, then every interval until ctx is done. On exit all
// services are marked NOT_SERVING.
func (m *Monitor) Run(ctx context.Context) {
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.server.Shutdown()
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
