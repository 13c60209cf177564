package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	cache portssvc.ViewCache
	now   func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the service clock, defaulting to UTC wall time.
func (s *BaseService) Now() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

// InvalidateViews drops cached views. Failures are logged; a stale view expires on its own TTL.
func (s *BaseService) InvalidateViews(ctx context.Context, views ...string) {
	if s.cache == nil || len(views) == 0 {
		return
	}
	if err := s.cache.Invalidate(ctx, views...); err != nil {
		s.LogWarn(ctx, "Failed to invalidate cached views",
			slog.String("error", err.Error()),
			slog.Any("views", views))
	}
}
