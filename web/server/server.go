package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port         int
	earthTexture string
	logger       core.Logger
}

// NewServer creates a new web server. earthTexture is the image used by
// scenes that need one; a nil logger discards output.
func NewServer(port int, earthTexture string, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Server{port: port, earthTexture: earthTexture, logger: logger}
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the available scene presets
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"scenes": scene.Names()})
}

// SceneRequest holds the parameters shared by render and inspect requests
type SceneRequest struct {
	Scene string // Scene preset name
	Width int    // Image width; height follows the scene's aspect ratio
	Seed  int64  // Seed for scene construction and sampling
}

// parseSceneParams parses the scene parameters common to all scene endpoints
func parseSceneParams(values url.Values) (SceneRequest, error) {
	req := SceneRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "random-spheres"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, 16, 2000); err != nil {
		return req, err
	}
	seed, err := parseIntParam(values, "seed", scene.DefaultSeed, 0, 1<<30)
	if err != nil {
		return req, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// buildScene creates the requested preset, resized to the requested width
func (s *Server) buildScene(req SceneRequest) (*scene.Scene, error) {
	sceneObj, err := scene.ByName(req.Scene, scene.Options{
		Sampler:      core.NewSeededSampler(req.Seed),
		EarthTexture: s.earthTexture,
		Logger:       s.logger,
	})
	if err != nil {
		return nil, err
	}

	sceneObj.SamplingConfig.Width = req.Width
	sceneObj.SamplingConfig.Height = max(1, int(float64(req.Width)/sceneObj.CameraConfig.AspectRatio))
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
