package geometry

import "github.com/huris/RayTracing/pkg/core"

// Hittable is implemented by any surface that can be intersected by a ray.
//
// Hit reports whether the ray meets the surface with a parameter in the closed
// interval [tMin, tMax]. On success rec holds the nearest such intersection; on a
// miss rec is left untouched. Each caller must supply its own rec.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool
}
