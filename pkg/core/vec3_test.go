package core

import (
	"math"
	"testing"
)

func TestVec3_Helpers(t *testing.T) {
	tests := []struct {
		name          string
		vector        Vec3
		expectedNeg   Vec3
		expectedLenSq float64
	}{
		{"zero vector", NewVec3(0, 0, 0), NewVec3(0, 0, 0), 0},
		{"unit x", NewVec3(1, 0, 0), NewVec3(-1, 0, 0), 1},
		{"mixed signs", NewVec3(1, -2, 3), NewVec3(-1, 2, -3), 14},
		{"pythagorean", NewVec3(3, 4, 12), NewVec3(-3, -4, -12), 169},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if neg := Negate(tt.vector); neg != tt.expectedNeg {
				t.Errorf("Negate(%v) = %v, want %v", tt.vector, neg, tt.expectedNeg)
			}
			if lsq := LengthSquared(tt.vector); lsq != tt.expectedLenSq {
				t.Errorf("LengthSquared(%v) = %f, want %f", tt.vector, lsq, tt.expectedLenSq)
			}
			if l := Length(tt.vector); math.Abs(l-math.Sqrt(tt.expectedLenSq)) > 1e-12 {
				t.Errorf("Length(%v) = %f, want %f", tt.vector, l, math.Sqrt(tt.expectedLenSq))
			}
		})
	}
}

func TestVec3_NegateLeavesInputUnchanged(t *testing.T) {
	v := NewVec3(1, 2, 3)
	_ = Negate(v)
	if v != NewVec3(1, 2, 3) {
		t.Errorf("Negate modified its argument: %v", v)
	}
}
