package renderer

import (
	"image"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

// RowRenderer renders complete scanlines using an integrator. It holds only
// read-only state and may be shared by all workers.
type RowRenderer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	samples    int
	gamma      float64
}

// NewRowRenderer creates a row renderer for a validated scene and camera
func NewRowRenderer(s *scene.Scene, camera *geometry.Camera, integratorInst integrator.Integrator) *RowRenderer {
	return &RowRenderer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
		samples:    s.SamplingConfig.SamplesPerPixel,
		gamma:      s.SamplingConfig.EffectiveGamma(),
	}
}

// RenderRow computes every pixel of row left to right and writes it into img.
// It touches no pixels outside the row. Returns the number of samples taken.
func (rr *RowRenderer) RenderRow(row int, img *image.RGBA, sampler core.Sampler) int {
	width := rr.camera.Width()
	for col := 0; col < width; col++ {
		img.SetRGBA(col, row, ToRGBA(rr.samplePixel(row, col, sampler), rr.gamma))
	}
	return width * rr.samples
}

// samplePixel returns the mean radiance of the pixel's samples
func (rr *RowRenderer) samplePixel(row, col int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{}
	for s := 0; s < rr.samples; s++ {
		ray := rr.camera.GetRay(row, col, sampler)
		colorAccum = colorAccum.Add(rr.integrator.RayColor(ray, rr.scene, sampler))
	}
	return colorAccum.Multiply(1.0 / float64(rr.samples))
}
