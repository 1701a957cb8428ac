package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Material is an opaque handle to a surface material owned by the scene.
// Geometry copies it into hit records and never calls through it, so many
// shapes may share one material.
type Material interface{}
