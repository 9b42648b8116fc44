package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UsmanZaka51/emotion-api/internal/engine"
)

func TestEngineContext_RoundTrip(t *testing.T) {
	eng, err := engine.New("http://localhost:5000", "")
	if err != nil {
		t.Fatalf("failed to create engine client: %v", err)
	}

	ctx := SetEngineInContext(context.Background(), eng)

	if got := GetEngineFromContext(ctx); got != eng {
		t.Error("expected the same engine client back from context")
	}
}

func TestGetEngineFromContext_Missing(t *testing.T) {
	if got := GetEngineFromContext(context.Background()); got != nil {
		t.Errorf("expected nil for empty context, got %v", got)
	}
}

func TestMustGetEngine_Missing(t *testing.T) {
	recorder := httptest.NewRecorder()

	eng := MustGetEngine(context.Background(), recorder)

	if eng != nil {
		t.Error("expected nil engine for empty context")
	}
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", recorder.Code)
	}
}

func TestWithEngine_InjectsClient(t *testing.T) {
	eng, err := engine.New("http://localhost:5000", "")
	if err != nil {
		t.Fatalf("failed to create engine client: %v", err)
	}

	var seen *engine.Engine
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetEngineFromContext(r.Context())
	})

	handler := WithEngine(eng)(next)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/v1/faces", nil))

	if seen != eng {
		t.Error("expected handler to receive the injected engine client")
	}
}
