package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// channelRange keeps scaled channels below 256 so truncation maps [0,1) onto 0..255 evenly
var channelRange = core.NewInterval(0.0, 0.999)

// ToRGBA converts a linear color to an opaque 8-bit pixel: gamma transfer,
// clamp to [0, 0.999], scale by 256 and truncate
func ToRGBA(c core.Vec3, gamma float64) color.RGBA {
	if gamma != 1.0 {
		c = c.GammaCorrect(gamma)
	}
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

func quantize(v float64) uint8 {
	// NaN fails every comparison in Clamp
	if math.IsNaN(v) {
		return 0
	}
	return uint8(256 * channelRange.Clamp(v))
}
