package logging

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. LOG_LEVEL=debug switches to development
// output; anything else gets production JSON.
func New(service string) *zap.Logger {
	var logger *zap.Logger
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger = zap.Must(zap.NewDevelopment())
	} else {
		logger = zap.Must(zap.NewProduction())
	}
	return logger.With(zap.String("service", service))
}
