package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/logger"
)

// RateLimiter counts a hit for key and reports whether it is allowed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit limits requests per client IP. Limiter failures let the request
// through.
type RateLimit struct {
	limiter   RateLimiter
	responder *respond.Responder
	logger    *logger.Logger
}

func NewRateLimit(limiter RateLimiter, responder *respond.Responder, logger *logger.Logger) *RateLimit {
	return &RateLimit{limiter: limiter, responder: responder, logger: logger}
}

func (m *RateLimit) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			m.logger.Error("HTTP: rate limiter failed",
				"key", key,
				"error", err.Error())
			c.Next()
			return
		}

		if !allowed {
			m.logger.Warn("HTTP: rate limit exceeded",
				"key", key)
			m.responder.Error(c, apierrors.NewErrTooManyRequests())
			return
		}

		c.Next()
	}
}
