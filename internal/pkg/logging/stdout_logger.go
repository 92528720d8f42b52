package logging

import (
	"log/slog"
	"os"
)

//go:generate mockgen -destination=../../../gen/mocks/logging/logger.go -package=logging . Logger

// Logger is satisfied by *slog.Logger and by ZapLogger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var StdoutLogger Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
