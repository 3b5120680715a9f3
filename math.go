package trlevel

import (
	"math"

	"golang.org/x/exp/constraints"
)

func abs[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// mulSat multiplies two non-negative ints, saturating instead of overflowing.
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

const halfScale = 1 << 15

// angleToRadians converts an angle where a full circle is 65536 units.
func angleToRadians[T constraints.Signed](n T) float64 {
	return float64(n) * math.Pi / halfScale
}

// fixedToFloat converts a 16.16 fixed point value.
func fixedToFloat[T constraints.Integer](n T) float64 {
	return float64(n) / (1 << 16)
}
