package scene

import (
	"fmt"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

var (
	// DefaultTopColor is the sky color straight up
	DefaultTopColor = core.NewVec3(0.5, 0.7, 1.0)
	// DefaultBottomColor is the sky color at the horizon and below
	DefaultBottomColor = core.NewVec3(1.0, 1.0, 1.0)
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.ShapeList // Objects in the scene
	Materials      *material.Library   // Materials referenced by the objects
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
	TopColor       core.Vec3 // Background gradient at the zenith
	BottomColor    core.Vec3 // Background gradient at the horizon
}

// NewScene creates an empty scene with the default sky gradient
func NewScene(name string, cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		World:          geometry.NewShapeList(),
		Materials:      material.NewLibrary(),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		TopColor:       DefaultTopColor,
		BottomColor:    DefaultBottomColor,
	}
}

// AddSphere registers the material and adds a sphere using it
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	handle := s.Materials.Add(mat)
	return s.AddSphereWithHandle(center, radius, handle)
}

// AddSphereWithHandle adds a sphere that shares an already registered material
func (s *Scene) AddSphereWithHandle(center core.Vec3, radius float64, handle core.MaterialHandle) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, handle)
	s.World.Add(sphere)
	return sphere
}

// GetBackgroundColors returns the top and bottom colors of the sky gradient
func (s *Scene) GetBackgroundColors() (top, bottom core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.World == nil || s.Materials == nil {
		return fmt.Errorf("%w: scene %q has no world or material library", ErrInvalidScene, s.Name)
	}
	return s.SamplingConfig.Validate()
}
