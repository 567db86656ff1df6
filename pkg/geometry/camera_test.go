package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func pinholeConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   2.0,
		VFov:          90.0,
		FocusDistance: 1.0,
	}
}

func TestNewCamera_Dimensions(t *testing.T) {
	camera, err := NewCamera(pinholeConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if camera.Width() != 400 || camera.Height() != 200 {
		t.Errorf("Expected 400x200 image, got %dx%d", camera.Width(), camera.Height())
	}
}

func TestNewCamera_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *CameraConfig)
	}{
		{"zero width", func(c *CameraConfig) { c.Width = 0 }},
		{"negative width", func(c *CameraConfig) { c.Width = -10 }},
		{"zero aspect ratio", func(c *CameraConfig) { c.AspectRatio = 0 }},
		{"empty image height", func(c *CameraConfig) { c.Width = 1; c.AspectRatio = 4 }},
		{"zero field of view", func(c *CameraConfig) { c.VFov = 0 }},
		{"straight angle field of view", func(c *CameraConfig) { c.VFov = 180 }},
		{"negative focus distance", func(c *CameraConfig) { c.FocusDistance = -1 }},
		{"look-at equals center", func(c *CameraConfig) { c.LookAt = c.Center }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := pinholeConfig()
			tt.modify(&config)

			camera, err := NewCamera(config)
			if err == nil {
				t.Fatalf("Expected error, got camera %+v", camera)
			}
			if !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}

func TestCamera_PixelGrid(t *testing.T) {
	// vfov 90 at focus distance 1 gives a viewport 2 units high and 4 wide
	camera, err := NewCamera(pinholeConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	delta := 4.0 / 400.0
	expected00 := core.NewVec3(-2+delta/2, 1-delta/2, -1)
	if got := camera.PixelCenter(0, 0); got.Subtract(expected00).Length() > 1e-9 {
		t.Errorf("Expected pixel (0,0) at %v, got %v", expected00, got)
	}

	expectedLast := core.NewVec3(2-delta/2, -1+delta/2, -1)
	if got := camera.PixelCenter(199, 399); got.Subtract(expectedLast).Length() > 1e-9 {
		t.Errorf("Expected last pixel at %v, got %v", expectedLast, got)
	}
}

func TestCamera_Basis(t *testing.T) {
	config := pinholeConfig()
	config.Center = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for name, basis := range map[string]core.Vec3{"u": camera.u, "v": camera.v, "w": camera.w} {
		if math.Abs(basis.Length()-1.0) > 1e-9 {
			t.Errorf("Basis vector %s should be unit length, got %f", name, basis.Length())
		}
	}
	if math.Abs(camera.u.Dot(camera.v)) > 1e-9 || math.Abs(camera.u.Dot(camera.w)) > 1e-9 || math.Abs(camera.v.Dot(camera.w)) > 1e-9 {
		t.Error("Camera basis is not orthogonal")
	}

	forward := camera.GetCameraForward()
	expected := core.NewVec3(-13, -2, -3).Normalize()
	if forward.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward %v, got %v", expected, forward)
	}
}

func TestCamera_GetRay_Jitter(t *testing.T) {
	camera, err := NewCamera(pinholeConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sampler := core.NewSeededSampler(42)

	center := camera.PixelCenter(50, 100)
	halfPixel := 0.5 * 4.0 / 400.0
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(50, 100, sampler)
		if !ray.Origin.Equals(camera.Center()) {
			t.Fatalf("Pinhole ray should start at the camera center, got %v", ray.Origin)
		}
		target := ray.Origin.Add(ray.Direction)
		if math.Abs(target.X-center.X) > halfPixel || math.Abs(target.Y-center.Y) > halfPixel {
			t.Fatalf("Jittered sample %v escaped pixel centered at %v", target, center)
		}
	}
}

func TestCamera_GetRay_NoJitterIsDeterministic(t *testing.T) {
	config := pinholeConfig()
	config.DisableJitter = true
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	a := camera.GetRay(10, 20, core.NewSeededSampler(1))
	b := camera.GetRay(10, 20, core.NewSeededSampler(2))
	if !a.Origin.Equals(b.Origin) || !a.Direction.Equals(b.Direction) {
		t.Errorf("Rays without jitter should not depend on the sampler: %v vs %v", a, b)
	}
	if !a.Origin.Add(a.Direction).Equals(camera.PixelCenter(10, 20)) {
		t.Errorf("Ray should pass through the pixel center")
	}
}

func TestCamera_GetRay_Defocus(t *testing.T) {
	config := pinholeConfig()
	config.DefocusAngle = 10.0
	config.FocusDistance = 3.0
	config.DisableJitter = true
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sampler := core.NewSeededSampler(7)

	radius := 3.0 * math.Tan(5.0*math.Pi/180)
	focusPoint := camera.PixelCenter(100, 200)
	moved := false
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(100, 200, sampler)
		offset := ray.Origin.Subtract(camera.Center())
		if offset.Length() > radius+1e-9 {
			t.Fatalf("Ray origin %v outside defocus disk of radius %f", ray.Origin, radius)
		}
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Defocus disk should lie in the camera plane, got offset %v", offset)
		}
		if offset.Length() > 1e-6 {
			moved = true
		}
		// All rays converge on the focus plane
		if !vecNear(ray.Origin.Add(ray.Direction), focusPoint, 1e-9) {
			t.Fatalf("Ray does not pass through the in-focus pixel center")
		}
	}
	if !moved {
		t.Error("Expected defocus to move ray origins off the camera center")
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := pinholeConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 64, DefocusAngle: 2})

	if merged.Width != 64 || merged.DefocusAngle != 2 {
		t.Errorf("Overrides not applied: %+v", merged)
	}
	if merged.VFov != base.VFov || !merged.LookAt.Equals(base.LookAt) {
		t.Errorf("Zero override fields should keep base values: %+v", merged)
	}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
