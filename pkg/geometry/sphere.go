package geometry

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/huris/RayTracing/pkg/core"
)

// Sphere represents a sphere shape. A negative radius keeps the same surface
// but turns the normals inward, which is how hollow glass is modelled.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	// Vector from sphere center to ray origin
	oc := vec3.Sub(&ray.Origin, &s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := vec3.Dot(&ray.Direction, &ray.Direction)
	halfB := vec3.Dot(&oc, &ray.Direction)
	c := vec3.Dot(&oc, &oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)

	// Signed radius: negative spheres get inward normals
	offset := vec3.Sub(&rec.Point, &s.Center)
	rec.SetFaceNormal(ray, offset.Scaled(1.0/s.Radius))
	rec.Material = s.Material

	return true
}
