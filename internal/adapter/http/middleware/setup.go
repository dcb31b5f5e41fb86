package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the global middleware on the Echo instance.
// Order matters:
//  1. RequestID, so every later log line carries the ID
//  2. RequestLogger, which logs after the rest of the chain returns
//  3. Recover, innermost, so a panic still produces a logged 500
//
// Call it before registering routes. ProxyCORS is applied per route group.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	for _, mw := range chain(log, recoveryConfig) {
		e.Use(mw)
	}
}

// Chain returns the global middleware as a slice for use with route groups.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return chain(log, DefaultRecoveryConfig())
}

func chain(log zerolog.Logger, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, recoveryConfig),
	}
}
