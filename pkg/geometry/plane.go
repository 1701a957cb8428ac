package geometry

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/huris/RayTracing/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Unit normal; its side is the front face
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane. normal must be non-zero.
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Scaled(1.0 / core.Length(normal)),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	denominator := vec3.Dot(&ray.Direction, &p.Normal)

	// Parallel rays never cross the plane
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	toPlane := vec3.Sub(&p.Point, &ray.Origin)
	t := vec3.Dot(&toPlane, &p.Normal) / denominator
	if t < tMin || t > tMax {
		return false
	}

	rec.T = t
	rec.Point = ray.At(t)
	rec.SetFaceNormal(ray, p.Normal)
	rec.Material = p.Material

	return true
}
