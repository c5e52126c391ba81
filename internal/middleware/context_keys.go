package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	principalKey = contextKey("principal")
)

// GetLoggerFromCtx returns the request-scoped logger, or slog.Default when
// the logging middleware did not run.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// WithPrincipal stores the authenticated principal in ctx.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipalFromCtx returns the authenticated principal, if any.
func GetPrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

// GetUserIDFromContext retrieves the authenticated user ID from the request.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	p, ok := GetPrincipalFromCtx(c.Request.Context())
	if !ok || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}
