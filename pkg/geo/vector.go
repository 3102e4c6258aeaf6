package geo

import (
	"math"

	"github.com/golang/geo/r2"
)

const (
	EPSILON = 1e-9
)

// FromPolar. vector of length magnitude pointing at yaw.
func FromPolar(magnitude, yaw float64) r2.Point {
	return r2.Point{X: magnitude * math.Cos(yaw), Y: magnitude * math.Sin(yaw)}
}

// ProjectOnto. signed length of v along dir. zero when dir has no direction.
func ProjectOnto(v, dir r2.Point) float64 {
	n := dir.Norm()
	if n < EPSILON {
		return 0
	}
	return v.Dot(dir) / n
}

// FiniteDifference. (cur - prev) / dt
func FiniteDifference(prev, cur r2.Point, dt float64) r2.Point {
	return cur.Sub(prev).Mul(1 / dt)
}
