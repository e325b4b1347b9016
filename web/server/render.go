package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-motion-raytracer/pkg/renderer"
	"github.com/df07/go-motion-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	SceneRequest
	Samples  int // Samples per pixel
	MaxDepth int // Maximum ray bounce depth
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()

	sceneReq, err := parseSceneParams(values)
	if err != nil {
		return nil, err
	}
	req := &RenderRequest{SceneRequest: sceneReq}

	if req.Samples, err = parseIntParam(values, "samples", 16, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", 50, 1, 1000); err != nil {
		return nil, err
	}

	return req, nil
}

// handleRender renders one pass of the requested scene and responds with a PNG.
// The render is cancelled when the client disconnects.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.buildScene(req.SceneRequest)
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config := sceneObj.SamplingConfig
	config.SamplesPerPixel = req.Samples
	config.MaxDepth = req.MaxDepth

	options := renderer.DefaultRenderOptions()
	options.Seed = req.Seed

	raytracer := renderer.NewRaytracer(sceneObj, config, options, s.logger)
	img, stats, err := raytracer.RenderPass(r.Context())
	if err != nil {
		s.logger.Printf("Render of %s failed: %v\n", req.Scene, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
