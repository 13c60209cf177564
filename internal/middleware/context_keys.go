package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	userIDKey     = contextKey("userID")
	authMethodKey = contextKey("authMethod")
)

// Auth methods recorded on the request.
const (
	AuthMethodJWT    = "jwt"
	AuthMethodAPIKey = "api_key"
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// setAuthenticatedUser stores the actor on the request context and tags the logger with it.
func setAuthenticatedUser(c *gin.Context, userID, method string) {
	ctx := c.Request.Context()
	logger := GetLoggerFromCtx(ctx).With(slog.String("user_id", userID))
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, authMethodKey, method)
	ctx = WithLogger(ctx, logger)
	c.Request = c.Request.WithContext(ctx)
}
