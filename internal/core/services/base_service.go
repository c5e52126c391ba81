package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks that the caller holds the accounting capability and
// returns the caller for audit fields. The error is the same whatever the
// operation so callers cannot probe which capability is missing.
func (s *BaseService) AuthorizeUser(ctx context.Context) (domain.Principal, error) {
	principal, ok := middleware.GetPrincipalFromCtx(ctx)
	if !ok {
		return domain.Principal{}, apperrors.ErrUnauthorized
	}
	if !principal.Can(domain.PermManageAccounting) {
		s.LogDebug(ctx, "Principal lacks accounting capability", slog.String("user_id", principal.UserID))
		return domain.Principal{}, fmt.Errorf("%w: accounting capability required", apperrors.ErrForbidden)
	}
	return principal, nil
}
