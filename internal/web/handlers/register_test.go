package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newRegisterHandler() *RegisterHandler {
	cfg := testConfig()
	stats := NewStatsHandler(cfg, NewJobManager())
	return NewRegisterHandler(cfg, stats)
}

func TestRegisterHandler_AddFace_Success(t *testing.T) {
	server := setupMockEngineServer(t, map[string]http.HandlerFunc{
		"/admin/add-face": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != "POST" {
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
				return
			}
			if err := r.ParseMultipartForm(32 << 20); err != nil {
				http.Error(w, "bad multipart", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{
				"person_id": r.FormValue("person_id"),
				"message":   "face registered",
			})
		},
	})
	defer server.Close()

	eng := createEngineClient(t, server)
	handler := newRegisterHandler()

	body, contentType := multipartBody(t,
		map[string]string{"person_id": "alice"},
		"face_image", "alice.jpg", createTestJPEG(t),
	)
	req := httptest.NewRequest("POST", "/admin/add-face", body)
	req.Header.Set("Content-Type", contentType)
	req = requestWithEngine(req, eng)

	recorder := httptest.NewRecorder()

	handler.AddFace(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)
	assertContentType(t, recorder, "application/json")

	var result map[string]string
	parseJSONResponse(t, recorder, &result)

	if result["person_id"] != "alice" {
		t.Errorf("expected person_id 'alice', got '%s'", result["person_id"])
	}
}

func TestRegisterHandler_AddFace_NormalizesPersonID(t *testing.T) {
	server := setupMockEngineServer(t, map[string]http.HandlerFunc{
		"/admin/add-face": func(w http.ResponseWriter, r *http.Request) {
			r.ParseMultipartForm(32 << 20)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"person_id": r.FormValue("person_id")})
		},
	})
	defer server.Close()

	eng := createEngineClient(t, server)
	handler := newRegisterHandler()

	// Surrounding whitespace is stripped before the id reaches the engine.
	body, contentType := multipartBody(t,
		map[string]string{"person_id": "  alice  "},
		"face_image", "alice.jpg", createTestJPEG(t),
	)
	req := httptest.NewRequest("POST", "/admin/add-face", body)
	req.Header.Set("Content-Type", contentType)
	req = requestWithEngine(req, eng)

	recorder := httptest.NewRecorder()

	handler.AddFace(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var result map[string]string
	parseJSONResponse(t, recorder, &result)

	if result["person_id"] != "alice" {
		t.Errorf("expected normalized person_id 'alice', got '%s'", result["person_id"])
	}
}

func TestRegisterHandler_AddFace_MissingPersonID(t *testing.T) {
	handler := newRegisterHandler()

	body, contentType := multipartBody(t, nil, "face_image", "alice.jpg", createTestJPEG(t))
	req := httptest.NewRequest("POST", "/admin/add-face", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()

	handler.AddFace(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "person id must not be empty")
}

func TestRegisterHandler_AddFace_MissingImage(t *testing.T) {
	handler := newRegisterHandler()

	body, contentType := multipartBody(t, map[string]string{"person_id": "alice"}, "", "", nil)
	req := httptest.NewRequest("POST", "/admin/add-face", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()

	handler.AddFace(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "no face image provided")
}

func TestRegisterHandler_AddFace_InvalidImage(t *testing.T) {
	handler := newRegisterHandler()

	body, contentType := multipartBody(t,
		map[string]string{"person_id": "alice"},
		"face_image", "alice.jpg", []byte("not an image at all"),
	)
	req := httptest.NewRequest("POST", "/admin/add-face", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()

	handler.AddFace(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "unsupported image format")
}

func TestRegisterHandler_AddFace_DuplicateRelayed(t *testing.T) {
	server := setupMockEngineServer(t, map[string]http.HandlerFunc{
		"/admin/add-face": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"error": "duplicate"})
		},
	})
	defer server.Close()

	eng := createEngineClient(t, server)
	handler := newRegisterHandler()

	body, contentType := multipartBody(t,
		map[string]string{"person_id": "alice"},
		"face_image", "alice.jpg", createTestJPEG(t),
	)
	req := httptest.NewRequest("POST", "/admin/add-face", body)
	req.Header.Set("Content-Type", contentType)
	req = requestWithEngine(req, eng)

	recorder := httptest.NewRecorder()

	handler.AddFace(recorder, req)

	// The engine's status and message come back verbatim, so the page
	// renders "Error: duplicate".
	assertStatusCode(t, recorder, http.StatusConflict)
	assertJSONError(t, recorder, "duplicate")
}

func TestRegisterHandler_AddFace_NoEngineClient(t *testing.T) {
	handler := newRegisterHandler()

	body, contentType := multipartBody(t,
		map[string]string{"person_id": "alice"},
		"face_image", "alice.jpg", createTestJPEG(t),
	)
	req := httptest.NewRequest("POST", "/admin/add-face", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()

	handler.AddFace(recorder, req)

	assertStatusCode(t, recorder, http.StatusInternalServerError)
}

func TestRegisterHandler_AddFace_InvalidMultipart(t *testing.T) {
	handler := newRegisterHandler()

	req := httptest.NewRequest("POST", "/admin/add-face", nil)
	req.Header.Set("Content-Type", "text/plain")

	recorder := httptest.NewRecorder()

	handler.AddFace(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "failed to parse multipart form")
}
