package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/material"
	"github.com/df07/go-motion-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Time         float64                `json:"time"`
	Properties   map[string]interface{} `json:"properties"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo describes a material for the inspector. Textured
// colors are evaluated at the hit.
func extractMaterialInfo(mat material.Material, hit *material.HitRecord) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	case *material.Isotropic:
		albedo := m.Albedo.Evaluate(hit.UV, hit.Point)
		properties["albedo"] = vecArray(albedo)
		properties["color"] = hexColor(albedo)
		return "isotropic", properties

	case material.Emitter:
		emission := m.Emit(core.Ray{}, *hit)
		properties["emission"] = vecArray(emission)
		properties["color"] = hexColor(emission)
		return "emissive", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts a ray through the center of pixel (x, y) at mid-shutter
// and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	req, err := parseSceneParams(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	sceneObj, err := s.buildScene(req)
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	width := sceneObj.SamplingConfig.Width
	height := sceneObj.SamplingConfig.Height
	pixelX, err := parseIntParam(values, "x", -1, 0, width-1)
	if err != nil || pixelX < 0 {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := parseIntParam(values, "y", -1, 0, height-1)
	if err != nil || pixelY < 0 {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY, req.Seed))
}

// inspectPixel traces the center ray of a pixel. A constant 0.5 sampler puts
// the ray on the lens center at mid-shutter; media sample from seed.
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int, seed int64) InspectResponse {
	width := float64(sceneObj.SamplingConfig.Width)
	height := float64(sceneObj.SamplingConfig.Height)
	s := (float64(pixelX) + 0.5) / width
	t := (height - float64(pixelY) - 0.5) / height

	ray := sceneObj.Camera.GetRay(s, t, core.NewSequenceSampler(0.5))
	hit, isHit := sceneObj.World.Hit(ray, 0.001, math.Inf(1), core.NewSeededSampler(seed))
	if !isHit {
		return InspectResponse{Hit: false, Time: ray.Time}
	}

	materialType, properties := extractMaterialInfo(hit.Material, hit)
	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Time:         ray.Time,
		Properties:   properties,
	}
}
