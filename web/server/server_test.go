package server

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/df07/go-cpu-pathtracer/pkg/renderer"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer(0, renderer.Config{NumWorkers: 2})
	t.Cleanup(func() {
		if err := s.Shutdown(context.Background()); err != nil {
			t.Errorf("Shutdown failed: %v", err)
		}
	})
	return s
}

func get(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(t), http.MethodGet, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected CORS header on every response")
	}
}

func TestHandleOptions(t *testing.T) {
	rec := get(t, newTestServer(t), http.MethodOptions, "/api/frame")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected preflight 200, got %d", rec.Code)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(t), http.MethodGet, "/api/scenes")

	var scenes []scene.SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) == 0 || scenes[0].ID != "default" {
		t.Errorf("Expected default scene first, got %+v", scenes)
	}
}

func TestHandleSceneConfig(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, http.MethodGet, "/api/scene-config?scene=glass")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		VFov float64 `json:"vfov"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.VFov != 40 {
		t.Errorf("Expected glass scene vfov 40, got %v", body.VFov)
	}

	if rec := get(t, s, http.MethodGet, "/api/scene-config?scene=nowhere"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown scene, got %d", rec.Code)
	}
}

func TestHandleFrame(t *testing.T) {
	rec := get(t, newTestServer(t), http.MethodGet, "/api/frame?scene=default&width=4&height=2&samples=1")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if rec.Header().Get("X-Render-Samples") != "8" {
		t.Errorf("Expected 8 samples, got %q", rec.Header().Get("X-Render-Samples"))
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("Expected 4x2 image, got %v", b)
	}
}

func TestHandleFrameRejectsBadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"zero width", "/api/frame?width=0", http.StatusBadRequest},
		{"huge height", "/api/frame?height=5000", http.StatusBadRequest},
		{"non-numeric samples", "/api/frame?samples=lots", http.StatusBadRequest},
		{"bad fixed flag", "/api/frame?fixed=maybe", http.StatusBadRequest},
		{"unknown scene", "/api/frame?scene=cornell-box&width=2&height=2", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, http.MethodGet, tt.target)
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
				t.Errorf("Expected a JSON error body, got %q", rec.Body.String())
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, http.MethodGet, "/api/inspect?scene=default&fixed=true&width=3&height=3&x=1&y=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var hit InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &hit); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !hit.Hit || hit.GeometryType != "sphere" || hit.MaterialType != "lambertian" {
		t.Errorf("Expected the center ray to hit the lambertian sphere, got %+v", hit)
	}
	if hit.Distance != 0.5 || hit.Point != [3]float64{0, 0, -0.5} {
		t.Errorf("Expected hit at distance 0.5 on the sphere front, got %+v", hit)
	}

	rec = get(t, s, http.MethodGet, "/api/inspect?scene=default&fixed=true&width=3&height=3&x=1&y=0")
	var miss InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &miss); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if miss.Hit {
		t.Errorf("Expected the upper ray to reach the sky, got %+v", miss)
	}

	if rec := get(t, s, http.MethodGet, "/api/inspect?width=3&height=3&x=3"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for out of range pixel, got %d", rec.Code)
	}
}
