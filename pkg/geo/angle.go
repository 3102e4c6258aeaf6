package geo

import (
	"math"

	"github.com/golang/geo/r2"
)

// NormalizeAngle wraps rad into (-pi, pi].
func NormalizeAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad <= -math.Pi {
		rad += 2 * math.Pi
	} else if rad > math.Pi {
		rad -= 2 * math.Pi
	}
	return rad
}

// HeadingOf. yaw of v in radians, counter-clockwise from the world x axis.
// ok is false for a (near) zero vector, whose heading is undefined.
func HeadingOf(v r2.Point) (yaw float64, ok bool) {
	if v.Norm() < EPSILON {
		return 0, false
	}
	return math.Atan2(v.Y, v.X), true
}
