package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/imageio"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// Request limits
const (
	maxWidth   = 2000
	maxSamples = 10000
	maxDepth   = 1000
)

// RenderRequest represents a render request from the client.
// Zero values keep the scene's defaults.
type RenderRequest struct {
	Scene    string  // Scene name (e.g., "basic")
	Width    int     // Image width
	Samples  int     // Samples per pixel
	Depth    int     // Maximum bounce depth
	Gamma    float64 // Output gamma
	Seed     int64   // Random seed
	Format   string  // Output image format
	NoJitter bool    // Sample pixel centers only
}

// handleRender renders a scene synchronously and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestLogger := NewRequestLogger(fmt.Sprintf("render-%s-%d", req.Scene, req.Seed), s.logger)
	raytracer, err := renderer.NewRaytracer(sceneObj, requestLogger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, stats := raytracer.Render()
	requestLogger.Infof("frame statistics\n%s", stats.Table())

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, img, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", imageio.ContentType(req.Format))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time", stats.RenderTime.String())
	w.Header().Set("X-Render-Samples", fmt.Sprintf("%d", stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:  query.Get("scene"),
		Format: query.Get("format"),
	}
	if req.Scene == "" {
		req.Scene = "basic"
	}
	if req.Format == "" {
		req.Format = imageio.FormatPNG
	}
	if !slices.Contains(imageio.Formats(), req.Format) {
		return nil, fmt.Errorf("format must be one of %s, got: %s", strings.Join(imageio.Formats(), ", "), req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxWidth); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "spp", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", 0, 0.1, 10); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(query, "seed", 1); err != nil {
		return nil, err
	}
	req.NoJitter = query.Get("nojitter") == "true"

	// Performance warning
	if req.Width*req.Width > 800*800 && req.Samples > 100 {
		s.logger.Warningf("render warning: large image with high samples may render slowly")
	}

	return req, nil
}

// createScene builds the requested scene with the request's overrides applied
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.New(req.Scene, req.Seed, geometry.CameraConfig{
		Width:         req.Width,
		DisableJitter: req.NoJitter,
	})
	if errors.Is(err, scene.ErrUnknownScene) {
		return nil, fmt.Errorf("unknown scene: %s", req.Scene)
	}
	if err != nil {
		return nil, err
	}

	sceneObj.SamplingConfig = scene.MergeSamplingConfig(sceneObj.SamplingConfig, scene.SamplingConfig{
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.Depth,
		Gamma:           req.Gamma,
	})
	return sceneObj, nil
}
