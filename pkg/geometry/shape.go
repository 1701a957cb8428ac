package geometry

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/huris/RayTracing/pkg/core"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3     // Point of intersection
	Normal    core.Vec3     // Unit normal, always facing against the ray
	T         float64       // Parameter t along the ray
	Material  core.Material // Shared handle, never owned by the record
	FrontFace bool          // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length and point away from the surface interior.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = vec3.Dot(&ray.Direction, &outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = core.Negate(outwardNormal)
	}
}
