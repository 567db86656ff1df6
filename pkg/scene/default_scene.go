package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// NewBasicScene creates the three-sphere scene with a hollow glass ball, a
// metal ball high in the sky, and a huge ground sphere
func NewBasicScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          30.0,
		DefocusAngle:  10.0,
		FocusDistance: 3.4,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := SamplingConfig{
		SamplesPerPixel: 20,
		MaxDepth:        10,
	}

	s := NewScene("basic", cameraConfig, samplingConfig)

	center := s.Materials.Add(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	ground := s.Materials.Add(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	glass := s.Materials.Add(material.NewDielectric(1.5))
	gold := s.Materials.Add(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1))
	silver := s.Materials.Add(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.1))

	s.AddSphereWithHandle(core.NewVec3(0, 0, -1), 0.5, center)

	// Hollow glass: the negative radius flips the normals of the inner wall
	s.AddSphereWithHandle(core.NewVec3(-1, 0, -1), -0.4, glass)
	s.AddSphereWithHandle(core.NewVec3(-1, 0, -1), 0.5, glass)

	s.AddSphereWithHandle(core.NewVec3(1, 0, -1), 0.5, gold)
	s.AddSphereWithHandle(core.NewVec3(3, 3, -5), 1.0, silver)
	s.AddSphereWithHandle(core.NewVec3(0, -100.5, -1), 100.0, ground)

	return s
}
