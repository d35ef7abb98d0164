// Package respond writes the JSON envelopes every HTTP endpoint returns.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/logger"
)

// Success is the envelope of every 2xx JSON response.
type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Failure is the envelope of every error response.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Responder renders envelopes. With exposeDetails set, error causes are sent
// to the client, which is only acceptable in development.
type Responder struct {
	exposeDetails bool
	logger        *logger.Logger
}

func New(exposeDetails bool, logger *logger.Logger) *Responder {
	return &Responder{
		exposeDetails: exposeDetails,
		logger:        logger,
	}
}

func (r *Responder) OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Success{Success: true, Message: message, Data: data})
}

func (r *Responder) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Success{Success: true, Message: message, Data: data})
}

// Error maps err to its APIError and aborts the chain. Unknown errors become
// 500 and are logged with their cause.
func (r *Responder) Error(c *gin.Context, err error) {
	apiErr := apierrors.FromError(err)

	if apiErr.Status >= http.StatusInternalServerError {
		r.logger.Error("HTTP: request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error())
	}

	body := Failure{Error: apiErr.Message}
	if r.exposeDetails && apiErr.Err != nil {
		body.Details = apiErr.Err.Error()
	}

	c.AbortWithStatusJSON(apiErr.Status, body)
}
