package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer() *httptest.Server {
	return httptest.NewServer(NewServer(0, "", nil).Handler())
}

func getJSON(t *testing.T, url string, target interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	var body map[string]string
	if status := getJSON(t, ts.URL+"/api/health", &body); status != http.StatusOK {
		t.Errorf("Expected 200, got %d", status)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestScenes(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	var body map[string][]string
	getJSON(t, ts.URL+"/api/scenes", &body)

	found := false
	for _, name := range body["scenes"] {
		if name == "cornell-smoke" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected cornell-smoke in scene list, got %v", body["scenes"])
	}
}

func TestRender(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/render?scene=perlin&width=16&samples=1&maxDepth=2")
	if err != nil {
		t.Fatalf("Render request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	// 16 wide at 16:9
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("Expected 16x9 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderBadRequests(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	tests := []struct {
		name  string
		query string
	}{
		{"Unknown scene", "?scene=teapot"},
		{"Width out of range", "?scene=perlin&width=5"},
		{"Non-numeric samples", "?scene=perlin&samples=lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			if status := getJSON(t, ts.URL+"/api/render"+tt.query, &body); status != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", status)
			}
			if body["error"] == "" {
				t.Error("Expected an error message")
			}
		})
	}
}

func TestInspect(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	t.Run("Center pixel hits the scene", func(t *testing.T) {
		var body InspectResponse
		status := getJSON(t, ts.URL+"/api/inspect?scene=random-spheres&width=64&x=32&y=18", &body)
		if status != http.StatusOK {
			t.Fatalf("Expected 200, got %d", status)
		}
		if !body.Hit || body.MaterialType == "" || body.Distance <= 0 {
			t.Errorf("Expected a hit with material, got %+v", body)
		}
		if body.Time != 0.5 {
			t.Errorf("Expected mid-shutter time 0.5, got %f", body.Time)
		}
	})

	t.Run("Missing coordinates", func(t *testing.T) {
		var body map[string]string
		if status := getJSON(t, ts.URL+"/api/inspect?scene=perlin&width=64", &body); status != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", status)
		}
	})

	t.Run("Coordinates out of bounds", func(t *testing.T) {
		var body map[string]string
		if status := getJSON(t, ts.URL+"/api/inspect?scene=perlin&width=64&x=10&y=500", &body); status != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", status)
		}
	})
}
