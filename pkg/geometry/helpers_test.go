package geometry

import (
	"math"

	"github.com/huris/RayTracing/pkg/core"
)

const tolerance = 1e-9

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func vec3Equal(a, b core.Vec3) bool {
	return floatEqual(a[0], b[0]) && floatEqual(a[1], b[1]) && floatEqual(a[2], b[2])
}

// testMaterial stands in for a scene material; only its identity matters here
type testMaterial struct {
	name string
}
