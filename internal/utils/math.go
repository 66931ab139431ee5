package utils

import "math"

// minNorm keeps Normalize finite for zero vectors.
const minNorm = 0.001

// Normalize rescales (x, y) to the given length.
func Normalize(x, y, length float64) (float64, float64) {
	n := math.Hypot(x, y)
	if n < minNorm {
		n = minNorm
	}
	return length * x / n, length * y / n
}

// NormalizeAngle brings an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleBetween returns the unsigned angle between two vectors, in [0, π].
func AngleBetween(ax, ay, bx, by float64) float64 {
	return math.Abs(NormalizeAngle(math.Atan2(by, bx) - math.Atan2(ay, ax)))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
