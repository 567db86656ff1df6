package renderer

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// ErrNoScene is returned when a raytracer is created without a scene
var ErrNoScene = errors.New("renderer: no scene defined")

// Raytracer drives a full-frame render: it fans rows out to a worker pool
// and collects them into one frame buffer in raster order
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     scene.SamplingConfig
	logger     core.Logger
}

// NewRaytracer validates the scene and builds its camera. Configuration
// problems are reported here, before any pixel is computed.
func NewRaytracer(s *scene.Scene, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, ErrNoScene
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	camera, err := geometry.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(s.SamplingConfig),
		config:     s.SamplingConfig,
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Camera returns the camera built for the scene
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// Render computes the whole frame. Pixel (x, y) of the returned image is
// row y, column x with row 0 at the top.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	width, height := rt.camera.Width(), rt.camera.Height()
	numWorkers := min(rt.config.EffectiveWorkers(), height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := newRenderStats(width, height, rt.config.SamplesPerPixel, numWorkers)

	rt.logger.Debugf("rendering %q: %dx%d, %d spp, max depth %d, %d workers",
		rt.scene.Name, width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, numWorkers)

	start := time.Now()
	pool := NewWorkerPool(NewRowRenderer(rt.scene, rt.camera, rt.integrator), rt.config.Seed, height, numWorkers)
	pool.Start()

	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row, Image: img})
	}

	for remaining := height; remaining > 0; remaining-- {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.addRow(result)
		rt.logger.Infof("scanlines remaining: %d", remaining-1)
	}
	pool.Stop()

	stats.RenderTime = time.Since(start)
	rt.logger.Noticef("rendered %q in %s", rt.scene.Name, stats.RenderTime)

	return img, stats
}
