// Package engine implements a typed HTTP client for the face and
// emotion analysis engine. The engine keeps the face gallery and does
// all the vision work; this service only talks to it.
package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/UsmanZaka51/emotion-api/internal/constants"
)

// Engine represents a client for the analysis engine API.
type Engine struct {
	Url       string
	parsedURL *url.URL
	apiKey    string

	// client has no timeout since video processing calls run for
	// minutes; cancellation comes from the request context.
	client *http.Client

	// metaClient serves quick metadata calls (health, face listing).
	metaClient *http.Client
}

// New creates a new engine client. The API key may be empty when the
// engine runs without authentication.
func New(rawURL, apiKey string) (*Engine, error) {
	rawURL = strings.TrimRight(rawURL, "/")
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid engine URL: %w", err)
	}

	return &Engine{
		Url:        rawURL,
		parsedURL:  parsed,
		apiKey:     apiKey,
		client:     &http.Client{},
		metaClient: &http.Client{Timeout: constants.MetadataRequestTimeout},
	}, nil
}

// resolveURL builds a full URL from the base URL and the given path segments.
// If the last segment contains a query string (e.g. "faces?count=10"), it is
// split so JoinPath only receives the path portion and the query is appended.
func (e *Engine) resolveURL(pathSegments ...string) string {
	if len(pathSegments) == 0 {
		return e.parsedURL.String()
	}
	last := pathSegments[len(pathSegments)-1]
	if pathPart, query, ok := strings.Cut(last, "?"); ok {
		pathSegments[len(pathSegments)-1] = pathPart
		result := e.parsedURL.JoinPath(pathSegments...)
		result.RawQuery = query
		return result.String()
	}
	return e.parsedURL.JoinPath(pathSegments...).String()
}

// authorize attaches the bearer token when one is configured.
func (e *Engine) authorize(req *http.Request) {
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}
}

type healthStatus struct {
	Status string `json:"status"`
}

// Health pings the engine. Returns nil when the engine reports itself
// healthy.
func (e *Engine) Health(ctx context.Context) error {
	status, err := doGetJSON[healthStatus](ctx, e, "health")
	if err != nil {
		return err
	}

	if status.Status != "ok" {
		return fmt.Errorf("engine unhealthy: %s", status.Status)
	}

	return nil
}
