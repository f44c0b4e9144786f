package middlewares

import (
	"context"

	"medsafe-service/internal/app/config"
	"medsafe-service/internal/app/models"

	"go.uber.org/zap"
)

type contextKey string

const (
	contextCallerKey            contextKey = "caller"
	contextRequestIDKey         contextKey = "request_id"
	contextIsClientRequestIDKey contextKey = "is_client_request_id"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

// ContextWithCaller attaches the authenticated caller to the context.
func ContextWithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, contextCallerKey, caller)
}

// CallerFromContext returns the authenticated caller placed in the request
// context by the authentication middleware.
func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(contextCallerKey).(models.Caller)
	return caller, ok
}
