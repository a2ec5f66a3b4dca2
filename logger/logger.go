// Package logger provides the shared zap logger.
package logger

import "go.uber.org/zap"

// New builds a production sugared logger.
func New() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}
