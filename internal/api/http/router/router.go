package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/api/http/handler"
	"github.com/dtroode/wedwisely-server/internal/api/http/middleware"
	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/logger"
	"github.com/dtroode/wedwisely-server/internal/metrics"
	"github.com/dtroode/wedwisely-server/internal/model"
)

// AuthAPI is the account service; it also authenticates bearer tokens.
type AuthAPI interface {
	handler.AuthService
	middleware.Authenticator
}

// Options tune the HTTP surface.
type Options struct {
	Environment    string
	ExposeDetails  bool
	AllowOrigins   []string
	BodyLimit      int64
	RequestTimeout time.Duration
}

// Router represents the HTTP router for the wedwisely API.
// It wires handlers and middleware onto a gin engine.
type Router struct {
	authService    AuthAPI
	userService    handler.UserService
	db             model.Pinger
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	limiter        middleware.RateLimiter
	opts           Options
	logger         *logger.Logger
}

// New creates new Router instance. limiter may be nil to disable rate
// limiting.
func New(
	authService AuthAPI,
	userService handler.UserService,
	db model.Pinger,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	limiter middleware.RateLimiter,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		db:             db,
		contextManager: contextManager,
		metrics:        metrics,
		limiter:        limiter,
		opts:           opts,
		logger:         logger,
	}
}

// Register builds the engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	responder := respond.New(r.opts.ExposeDetails, r.logger)
	logging := middleware.NewLogging(r.logger)

	e := gin.New()
	e.Use(
		middleware.Recovery(responder, r.logger),
		logging.HandleHTTP(),
		middleware.Metrics(r.metrics),
		cors.New(r.corsConfig()),
		middleware.BodyLimit(r.opts.BodyLimit),
		middleware.Timeout(r.opts.RequestTimeout),
	)

	e.NoRoute(func(c *gin.Context) {
		responder.Error(c, apierrors.NewErrRouteNotFound(c.Request.URL.Path))
	})

	e.GET("/health", handler.NewHealth(r.db, r.opts.Environment, r.logger).Check)
	e.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	api := e.Group("/api")
	if r.limiter != nil {
		api.Use(middleware.NewRateLimit(r.limiter, responder, r.logger).Handle())
	}

	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, responder, r.logger)
	guard := middleware.NewGuard(r.contextManager, responder)

	r.registerAuthRoutes(api.Group("/auth"), authenticate, guard, responder)
	r.registerUserRoutes(api.Group("/users"), authenticate, guard, responder)

	return e
}

func (r *Router) registerAuthRoutes(g *gin.RouterGroup, authenticate *middleware.Authenticate, guard *middleware.Guard, responder *respond.Responder) {
	h := handler.NewAuth(r.authService, r.contextManager, responder)

	g.POST("/register", authenticate.Optional(), h.Register)
	g.POST("/create-admin", authenticate.Required(), guard.Authorize(model.RoleAdmin), h.CreateAdmin)
	g.POST("/login", h.Login)
	g.POST("/refresh-token", h.RefreshToken)

	g.GET("/me", authenticate.Required(), h.Me)
	g.PUT("/profile", authenticate.Required(), h.UpdateProfile)
	g.PUT("/change-password", authenticate.Required(), h.ChangePassword)
	g.POST("/logout", authenticate.Required(), h.Logout)

	if r.userService.AvatarsEnabled() {
		avatar := handler.NewAvatar(r.userService, r.contextManager, responder)
		g.PUT("/avatar", authenticate.Required(), avatar.Upload)
		g.DELETE("/avatar", authenticate.Required(), avatar.Delete)
	}
}

func (r *Router) registerUserRoutes(g *gin.RouterGroup, authenticate *middleware.Authenticate, guard *middleware.Guard, responder *respond.Responder) {
	h := handler.NewUser(r.userService, r.contextManager, responder)

	g.Use(authenticate.Required())

	g.GET("/all", guard.Authorize(model.RoleAdmin), h.List)
	g.GET("/stats", guard.Authorize(model.RoleAdmin), h.Stats)
	g.DELETE("/:id", guard.Authorize(model.RoleAdmin), h.Deactivate)

	g.GET("/:id", guard.CanAccessUserData(), h.Get)
	g.PUT("/:id", guard.CanModifyUserData(), h.Update)

	if r.userService.AvatarsEnabled() {
		avatar := handler.NewAvatar(r.userService, r.contextManager, responder)
		g.GET("/:id/avatar", guard.CanAccessUserData(), avatar.Get)
	}
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(r.opts.AllowOrigins) == 0 || slices.Contains(r.opts.AllowOrigins, "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = r.opts.AllowOrigins
	}
	return cfg
}
