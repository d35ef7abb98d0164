package router

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/wedwisely-server/internal/api/grpc/middleware"
	"github.com/dtroode/wedwisely-server/internal/logger"
)

// Router assembles the ops gRPC server: the standard health service and
// server reflection behind logging and panic recovery.
type Router struct {
	health *health.Server
	logger *logger.Logger
}

// New creates a Router publishing statuses held by healthServer.
func New(healthServer *health.Server, logger *logger.Logger) *Router {
	return &Router{
		health: healthServer,
		logger: logger,
	}
}

// Register builds the gRPC server with interceptors and services attached.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recovery := middleware.NewRecovery(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.Unary(),
		),
		grpc.ChainStreamInterceptor(
			logging.HandleGRPCStream,
			recovery.Stream(),
		),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}
