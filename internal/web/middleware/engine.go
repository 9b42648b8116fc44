package middleware

import (
	"context"
	"net/http"

	"github.com/UsmanZaka51/emotion-api/internal/engine"
)

type contextKey string

const engineContextKey contextKey = "engine"

// WithEngine is middleware that adds the shared engine client to the request
// context. The client is stateless, so a single instance serves all requests.
func WithEngine(eng *engine.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetEngineInContext(r.Context(), eng)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetEngineInContext returns a context carrying the engine client.
func SetEngineInContext(ctx context.Context, eng *engine.Engine) context.Context {
	return context.WithValue(ctx, engineContextKey, eng)
}

// GetEngineFromContext retrieves the engine client from the request context.
// Returns nil if no client is available.
func GetEngineFromContext(ctx context.Context) *engine.Engine {
	eng, ok := ctx.Value(engineContextKey).(*engine.Engine)
	if !ok {
		return nil
	}
	return eng
}

// MustGetEngine retrieves the engine client from context.
// If not available, writes an error response and returns nil.
// Handlers should return immediately after receiving nil.
func MustGetEngine(ctx context.Context, w http.ResponseWriter) *engine.Engine {
	eng := GetEngineFromContext(ctx)
	if eng == nil {
		http.Error(w, `{"error": "engine client not available"}`, http.StatusInternalServerError)
		return nil
	}
	return eng
}
