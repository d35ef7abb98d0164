package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/health"

	grpchealth "github.com/dtroode/wedwisely-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/wedwisely-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/wedwisely-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/wedwisely-server/internal/api/http/context"
	"github.com/dtroode/wedwisely-server/internal/api/http/middleware"
	httprouter "github.com/dtroode/wedwisely-server/internal/api/http/router"
	"github.com/dtroode/wedwisely-server/internal/config"
	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/metrics"
	"github.com/dtroode/wedwisely-server/internal/model"
	"github.com/dtroode/wedwisely-server/internal/password"
	"github.com/dtroode/wedwisely-server/internal/ratelimit"
	"github.com/dtroode/wedwisely-server/internal/repository"
	"github.com/dtroode/wedwisely-server/internal/server"
	"github.com/dtroode/wedwisely-server/internal/service"
	"github.com/dtroode/wedwisely-server/internal/storage/minio"
	"github.com/dtroode/wedwisely-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

type listener struct {
	server model.Server
	sl     model.SecurityLayer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat).With("env", cfg.Env)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	users, closeStore, err := repository.Open(ctx, cfg.StoreDriver, cfg.Mongo, cfg.Postgres)
	if err != nil {
		logger.Fatal("failed to initialize user store", "error", err, "driver", cfg.StoreDriver)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := closeStore(closeCtx); err != nil {
			logger.Error("failed to close user store", "error", err)
		}
	}()
	logger.Info("user store ready", "driver", cfg.StoreDriver)

	hasher, err := password.NewBcrypt(cfg.BcryptCost)
	if err != nil {
		logger.Fatal("failed to initialize password hasher", "error", err)
	}
	tokenManager := token.NewJWT(token.Options{
		AccessSecret:  cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.ExpiresIn.Duration,
		RefreshTTL:    cfg.JWT.RefreshExpiresIn.Duration,
		ExpiresIn:     cfg.JWT.ExpiresIn.Text,
		Issuer:        cfg.JWT.Issuer,
		Audience:      cfg.JWT.Audience,
	})
	m := metrics.New()

	var avatars model.Storage
	if cfg.Storage.Enabled {
		storageClient, err := minio.Dial(ctx, minio.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize avatar storage", "error", err)
		}
		avatars = storageClient
	}

	var limiter middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rl := ratelimit.NewRedis(ratelimit.NewClient(ratelimit.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.RateLimit.Max, cfg.RateLimit.Window)
		if err := rl.Ping(ctx); err != nil {
			logger.Warn("rate limiter store unreachable, requests will be allowed until it recovers", "error", err)
		}
		limiter = rl
	}

	authService := service.NewAuth(users, hasher, tokenManager, logger, service.WithAuthEvents(m))
	userService := service.NewUser(users, avatars, logger)

	httpRouter := httprouter.New(authService, userService, users, httpctx.NewManager(), m, limiter, httprouter.Options{
		Environment:    string(cfg.Env),
		ExposeDetails:  cfg.IsDevelopment(),
		AllowOrigins:   cfg.CORS.AllowOrigins,
		BodyLimit:      cfg.HTTP.BodyLimit,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	}, logger)

	servers := []listener{{
		server: server.NewHTTPServer(httpRouter.Register(), fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port), server.HTTPTimeouts{
			Read:  cfg.HTTP.ReadTimeout,
			Write: cfg.HTTP.WriteTimeout,
			Idle:  cfg.HTTP.IdleTimeout,
		}),
		sl: server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
	}}

	var wg sync.WaitGroup
	if cfg.GRPC.Enabled {
		healthServer := health.NewServer()
		monitor := grpchealth.NewMonitor(users, healthServer, cfg.GRPC.HealthInterval, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			monitor.Run(ctx)
		}()

		servers = append(servers, listener{
			server: grpcserver.NewGRPCServer(grpcrouter.New(healthServer, logger).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)),
			sl:     server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		})
	}

	for _, l := range servers {
		wg.Add(1)
		go func(l listener) {
			defer wg.Done()
			logger.Info("Starting server on", "address", l.server.Address())
			if err := l.server.Start(l.sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", l.server.Address())
				stop()
			}
		}(l)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, l := range servers {
		if err := l.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", l.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
