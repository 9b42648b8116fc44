package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFacesHandler_List_Success(t *testing.T) {
	server := setupMockEngineServer(t, map[string]http.HandlerFunc{
		"/admin/faces": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"faces": [
				{"person_id": "alice", "registered_at": "2026-08-01T10:00:00Z"},
				{"person_id": "bob", "registered_at": "2026-08-02T11:30:00Z"}
			]}`))
		},
	})
	defer server.Close()

	eng := createEngineClient(t, server)
	handler := NewFacesHandler(testConfig())

	req := httptest.NewRequest("GET", "/api/v1/faces", nil)
	req = requestWithEngine(req, eng)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var result struct {
		Faces []map[string]any `json:"faces"`
		Count int              `json:"count"`
	}
	parseJSONResponse(t, recorder, &result)

	if result.Count != 2 {
		t.Errorf("expected count 2, got %d", result.Count)
	}
	if len(result.Faces) != 2 || result.Faces[0]["person_id"] != "alice" {
		t.Errorf("unexpected faces payload: %v", result.Faces)
	}
}

func TestFacesHandler_List_EngineErrorRelayed(t *testing.T) {
	server := setupMockEngineServer(t, map[string]http.HandlerFunc{
		"/admin/faces": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error": "gallery unavailable"}`))
		},
	})
	defer server.Close()

	eng := createEngineClient(t, server)
	handler := NewFacesHandler(testConfig())

	req := httptest.NewRequest("GET", "/api/v1/faces", nil)
	req = requestWithEngine(req, eng)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusServiceUnavailable)
	assertJSONError(t, recorder, "gallery unavailable")
}

func TestFacesHandler_List_NoEngineClient(t *testing.T) {
	handler := NewFacesHandler(testConfig())

	req := httptest.NewRequest("GET", "/api/v1/faces", nil)
	recorder := httptest.NewRecorder()

	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusInternalServerError)
}
