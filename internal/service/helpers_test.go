package service

import "rso-assistant-be/internal/pkg/logger"

func newTestLogger() logger.ILogger {
	return logger.NewNopLogger()
}
