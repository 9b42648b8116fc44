package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigHandler_Get(t *testing.T) {
	handler := NewConfigHandler(testConfig())

	req := httptest.NewRequest("GET", "/api/v1/config", nil)
	recorder := httptest.NewRecorder()

	handler.Get(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)
	assertContentType(t, recorder, "application/json")

	var result ConfigResponse
	parseJSONResponse(t, recorder, &result)

	if len(result.Providers) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(result.Providers))
	}

	byName := make(map[string]bool)
	for _, p := range result.Providers {
		byName[p.Name] = p.Available
	}

	// No tokens in the test config, so only the local provider is usable.
	if byName["openai"] || byName["gemini"] {
		t.Errorf("expected cloud providers unavailable without credentials: %v", byName)
	}
	if !byName["ollama"] {
		t.Error("expected ollama to always be available")
	}

	if len(result.Emotions) != 3 {
		t.Errorf("expected 3 emotion labels, got %d", len(result.Emotions))
	}
	if result.Emotions[0].Name != "happy" || result.Emotions[0].Color != "#f1c40f" {
		t.Errorf("unexpected first emotion label: %+v", result.Emotions[0])
	}

	if result.MaxUploadMB != 64 {
		t.Errorf("expected max_upload_mb 64, got %d", result.MaxUploadMB)
	}
}

func TestConfigHandler_Get_DefaultUploadLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Web.MaxVideoUploadMB = 0
	handler := NewConfigHandler(cfg)

	req := httptest.NewRequest("GET", "/api/v1/config", nil)
	recorder := httptest.NewRecorder()

	handler.Get(recorder, req)

	var result ConfigResponse
	parseJSONResponse(t, recorder, &result)

	if result.MaxUploadMB != 512 {
		t.Errorf("expected default upload limit 512, got %d", result.MaxUploadMB)
	}
}
