package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Material interface for surfaces that respond to incoming rays
type Material interface {
	// Scatter returns the outgoing ray and its attenuation.
	// false means the material absorbed the ray.
	Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}
