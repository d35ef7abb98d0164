package testutil

import (
	"io"
	"log/slog"

	"github.com/dtroode/wedwisely-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, slog.LevelDebug, "text")
}
