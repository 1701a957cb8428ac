package core

import (
	"math"
	"math/rand"
)

// Infinity is the default upper bound for ray parameters
var Infinity = math.Inf(1)

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Clamp returns x limited to [minVal, maxVal]
func Clamp(x, minVal, maxVal float64) float64 {
	if x < minVal {
		return minVal
	}
	if x > maxVal {
		return maxVal
	}
	return x
}

// RandomDouble returns a random real in [0, 1).
// The generator is passed in so callers control seeding.
func RandomDouble(random *rand.Rand) float64 {
	return random.Float64()
}

// RandomDoubleRange returns a random real in [minVal, maxVal)
func RandomDoubleRange(random *rand.Rand, minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*random.Float64()
}
