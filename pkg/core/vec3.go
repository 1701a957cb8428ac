package core

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Vec3 is the point/vector value type used throughout the tracer.
type Vec3 = vec3.T

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Negate returns the negative of the vector
func Negate(v Vec3) Vec3 {
	return v.Scaled(-1)
}

// LengthSquared returns the squared magnitude of the vector
func LengthSquared(v Vec3) float64 {
	return vec3.Dot(&v, &v)
}

// Length returns the magnitude of the vector
func Length(v Vec3) float64 {
	return math.Sqrt(LengthSquared(v))
}
