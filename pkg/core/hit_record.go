package core

// MaterialHandle indexes a material in a material library.
// Primitives store a handle instead of owning the material.
type MaterialHandle uint32

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3           // Point of intersection
	Normal    Vec3           // Unit normal, always facing against the incoming ray
	T         float64        // Parameter t along the ray
	FrontFace bool           // Whether ray hit the outward-facing side
	Material  MaterialHandle // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
