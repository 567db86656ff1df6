package scene

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidSampling is returned for sampling parameters that cannot produce an image
	ErrInvalidSampling = errors.New("scene: invalid sampling configuration")
	// ErrInvalidScene is returned for a scene without a world or material library
	ErrInvalidScene = errors.New("scene: invalid scene")
	// ErrUnknownScene is returned when a scene name is not registered
	ErrUnknownScene = errors.New("scene: unknown scene")
)

// DefaultGamma is the square-root transfer function
const DefaultGamma = 2.0

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Gamma           float64 // Output transfer exponent, 0 = DefaultGamma, 1 = linear
	Workers         int     // Render workers, 0 = runtime.NumCPU()
	Seed            int64   // Base seed for per-row random streams
}

// Validate fails fast on configurations that would produce garbage output
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel must be at least 1, got %d", ErrInvalidSampling, c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth must be at least 1, got %d", ErrInvalidSampling, c.MaxDepth)
	}
	if c.Gamma < 0 {
		return fmt.Errorf("%w: gamma must not be negative, got %g", ErrInvalidSampling, c.Gamma)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidSampling, c.Workers)
	}
	return nil
}

// EffectiveGamma resolves the zero value to DefaultGamma
func (c SamplingConfig) EffectiveGamma() float64 {
	if c.Gamma == 0 {
		return DefaultGamma
	}
	return c.Gamma
}

// EffectiveWorkers resolves the zero value to the number of CPUs
func (c SamplingConfig) EffectiveWorkers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// MergeSamplingConfig overlays the non-zero fields of override onto base
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Gamma != 0 {
		result.Gamma = override.Gamma
	}
	if override.Workers != 0 {
		result.Workers = override.Workers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}
