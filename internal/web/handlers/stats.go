package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/web/middleware"
)

const statsCacheTTL = 10 * time.Minute

// statsCache holds a cached registered-face count with expiry. Job counters
// are in-memory and always computed live.
type statsCache struct {
	mu        sync.RWMutex
	faces     int
	fresh     bool
	expiresAt time.Time
}

func (c *statsCache) get() (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.fresh || time.Now().After(c.expiresAt) {
		return 0, false
	}
	return c.faces, true
}

func (c *statsCache) set(faces int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.faces = faces
	c.fresh = true
	c.expiresAt = time.Now().Add(statsCacheTTL)
}

func (c *statsCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fresh = false
}

// StatsHandler handles statistics endpoints
type StatsHandler struct {
	config     *config.Config
	jobManager *JobManager
	cache      statsCache
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(cfg *config.Config, jm *JobManager) *StatsHandler {
	return &StatsHandler{
		config:     cfg,
		jobManager: jm,
	}
}

// InvalidateCache clears the cached face count so the next request fetches fresh data
func (h *StatsHandler) InvalidateCache() {
	h.cache.invalidate()
}

// StatsResponse represents the statistics response
type StatsResponse struct {
	RegisteredFaces   int `json:"registered_faces"`
	AnalysesTotal     int `json:"analyses_total"`
	AnalysesRunning   int `json:"analyses_running"`
	AnalysesCompleted int `json:"analyses_completed"`
	AnalysesFailed    int `json:"analyses_failed"`
}

// Get returns service statistics.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	faces, ok := h.cache.get()
	if !ok {
		eng := middleware.MustGetEngine(r.Context(), w)
		if eng == nil {
			return
		}

		list, err := eng.ListFaces(r.Context())
		if err != nil {
			relayEngineError(w, err, "failed to fetch face stats")
			return
		}
		faces = len(list)
		h.cache.set(faces)
	}

	counts := h.jobManager.CountByStatus()
	respondJSON(w, http.StatusOK, StatsResponse{
		RegisteredFaces:   faces,
		AnalysesTotal:     h.jobManager.Count(),
		AnalysesRunning:   counts[JobStatusRunning],
		AnalysesCompleted: counts[JobStatusCompleted],
		AnalysesFailed:    counts[JobStatusFailed],
	})
}
