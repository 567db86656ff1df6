package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection whose t lies strictly inside rayT.
type Shape interface {
	Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool)
}
