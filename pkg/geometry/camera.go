package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera cannot be built from its configuration
var ErrInvalidCamera = errors.New("geometry: invalid camera configuration")

// CameraConfig contains the placement and image parameters of a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // World up direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Cone angle of rays through each pixel in degrees, <= 0 disables depth of field
	FocusDistance float64   // Distance to the plane of perfect focus, 0 = distance to LookAt
	DisableJitter bool      // Sample pixel centers only (no antialiasing)
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if !override.Center.Equals(zero) {
		result.Center = override.Center
	}
	if !override.LookAt.Equals(zero) {
		result.LookAt = override.LookAt
	}
	if !override.Up.Equals(zero) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.DisableJitter {
		result.DisableJitter = true
	}

	return result
}

// Camera generates primary rays. It is immutable after construction and
// safe to share between render workers.
type Camera struct {
	config CameraConfig

	imageWidth  int
	imageHeight int

	center      core.Vec3 // Camera center
	pixel00     core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below

	u, v, w core.Vec3 // Camera frame basis vectors

	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width < 1 {
		return nil, fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidCamera, config.Width)
	}
	if config.AspectRatio <= 0 || math.IsNaN(config.AspectRatio) || math.IsInf(config.AspectRatio, 0) {
		return nil, fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidCamera, config.AspectRatio)
	}
	imageHeight := int(float64(config.Width) / config.AspectRatio)
	if imageHeight < 1 {
		return nil, fmt.Errorf("%w: width %d and aspect ratio %g give an empty image", ErrInvalidCamera, config.Width, config.AspectRatio)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("%w: vertical field of view must be in (0, 180), got %g", ErrInvalidCamera, config.VFov)
	}

	view := config.Center.Subtract(config.LookAt)
	if view.NearZero() {
		return nil, fmt.Errorf("%w: camera center and look-at point coincide", ErrInvalidCamera)
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = view.Length()
	}
	if focusDistance < 0 {
		return nil, fmt.Errorf("%w: focus distance must be positive, got %g", ErrInvalidCamera, config.FocusDistance)
	}

	// Camera frame: w points backwards, u right, v up
	w := view.Normalize()
	right := config.Up.Cross(w)
	if right.NearZero() {
		return nil, fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, config.Up)
	}
	u := right.Normalize()
	v := w.Cross(u)

	// Viewport dimensions at the focus plane
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	camera := &Camera{
		config:      config,
		imageWidth:  config.Width,
		imageHeight: imageHeight,
		center:      config.Center,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
	}

	if config.DefocusAngle > 0 {
		defocusRadius := focusDistance * math.Tan(config.DefocusAngle*math.Pi/180/2)
		camera.defocusDiskU = u.Multiply(defocusRadius)
		camera.defocusDiskV = v.Multiply(defocusRadius)
	}

	return camera, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.imageWidth
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Center returns the camera position
func (c *Camera) Center() core.Vec3 {
	return c.center
}

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// PixelCenter returns the world position of the center of pixel (row, col)
func (c *Camera) PixelCenter(row, col int) core.Vec3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(col))).
		Add(c.pixelDeltaV.Multiply(float64(row)))
}

// GetRay returns a ray through a random point in the square around pixel
// (row, col). With depth of field the origin is sampled from the defocus disk.
func (c *Camera) GetRay(row, col int, sampler core.Sampler) core.Ray {
	pixelSample := c.PixelCenter(row, col)
	if !c.config.DisableJitter {
		offset := sampler.Get2D()
		pixelSample = pixelSample.
			Add(c.pixelDeltaU.Multiply(offset.X - 0.5)).
			Add(c.pixelDeltaV.Multiply(offset.Y - 0.5))
	}

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
