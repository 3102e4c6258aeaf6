package vehicle

import (
	"iter"
	"math"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/geo"
)

// Tracker owns the kinematic state of one tracked vehicle. Velocity comes from the sensor;
// acceleration is only ever the finite difference of consecutive velocities.
type Tracker struct {
	id           int
	x, y         float64
	velocity     r2.Point // dx, dy
	acceleration r2.Point // ddx, ddy
	yaw          float64
	s, d         float64
	lane         int
	observations int

	cfg config.Config
}

func NewTracker(id int, cfg config.Config) *Tracker {
	return &Tracker{
		id:  id,
		cfg: cfg,
	}
}

// Update records a frame given speed along yaw. dt is the time since the previous frame;
// a (near) zero dt keeps the previous acceleration estimate.
func (t *Tracker) Update(x, y, yaw, s, d, speed, dt float64) {
	t.update(x, y, yaw, s, d, geo.FromPolar(speed, yaw), dt)
}

// UpdateWithVelocity records a frame given the world-frame velocity components.
// The yaw is derived from the velocity while the vehicle moves and kept otherwise.
func (t *Tracker) UpdateWithVelocity(x, y, vx, vy, s, d, dt float64) {
	v := r2.Point{X: vx, Y: vy}
	yaw, ok := geo.HeadingOf(v)
	if !ok {
		yaw = t.yaw
	}
	t.update(x, y, yaw, s, d, v, dt)
}

func (t *Tracker) update(x, y, yaw, s, d float64, v r2.Point, dt float64) {
	if t.observations > 0 && math.Abs(dt) >= t.cfg.MinUpdateInterval {
		t.acceleration = geo.FiniteDifference(t.velocity, v, dt)
	}
	t.x, t.y = x, y
	t.yaw = geo.NormalizeAngle(yaw)
	t.velocity = v
	t.s, t.d = s, d
	t.lane = t.cfg.Lane(d)
	t.observations++
}

// ShouldPredict. velocity and acceleration estimated from only a few frames are too noisy
// to extrapolate.
func (t *Tracker) ShouldPredict() bool {
	return t.observations > t.cfg.MinObservations
}

// longitudinal acceleration along the direction of travel (the heading when standing still)
func (t *Tracker) alongTrackAcceleration() float64 {
	dir := t.velocity
	if dir.Norm() < geo.EPSILON {
		dir = geo.FromPolar(1, t.yaw)
	}
	return geo.ProjectOnto(t.acceleration, dir)
}

func (t *Tracker) stateAt(step int, tt float64) da.Prediction {
	v := t.Speed()
	a := t.alongTrackAcceleration()
	if a < 0 && v+a*tt < 0 {
		// constant deceleration stops the vehicle, it does not drive backwards
		tt = v / -a
	}
	return da.Prediction{
		Step: step,
		T:    float64(step) * t.cfg.PredictionInterval,
		S:    t.s + v*tt + 0.5*a*tt*tt,
		D:    t.d,
		Lane: t.lane,
	}
}

// StateAt extrapolates the vehicle t seconds ahead.
func (t *Tracker) StateAt(tt float64) da.Prediction {
	p := t.stateAt(0, tt)
	p.T = tt
	return p
}

// Predict returns a lazy, single-use sequence of exactly horizon predictions spaced by the
// prediction interval. The lateral offset, and therefore the lane, is held constant.
// The state is captured when Predict is called; later updates do not leak into the sequence.
func (t *Tracker) Predict(horizon int) iter.Seq[da.Prediction] {
	frozen := *t
	used := false
	return func(yield func(da.Prediction) bool) {
		if used {
			return
		}
		used = true
		for i := 1; i <= horizon; i++ {
			if !yield(frozen.stateAt(i, float64(i)*frozen.cfg.PredictionInterval)) {
				return
			}
		}
	}
}

// Predictions collects Predict(horizon). Empty while ShouldPredict is false.
func (t *Tracker) Predictions(horizon int) []da.Prediction {
	if !t.ShouldPredict() || horizon <= 0 {
		return []da.Prediction{}
	}
	return slices.Collect(t.Predict(horizon))
}

func (t *Tracker) IsInFrontOf(pred da.Prediction, lane int) bool {
	return IsInFrontOf(t.s, pred, lane, t.cfg.SafeDistance)
}

func (t *Tracker) IsBehindOf(pred da.Prediction, lane int) bool {
	return IsBehindOf(t.s, pred, lane, t.cfg.SafeDistance)
}

func (t *Tracker) IsCloseTo(pred da.Prediction, lane int) bool {
	return IsCloseTo(t.s, pred, lane, t.cfg.SafeDistance)
}

func (t *Tracker) ID() int {
	return t.id
}

func (t *Tracker) X() float64 {
	return t.x
}

func (t *Tracker) Y() float64 {
	return t.y
}

func (t *Tracker) Velocity() r2.Point {
	return t.velocity
}

func (t *Tracker) Acceleration() r2.Point {
	return t.acceleration
}

func (t *Tracker) Speed() float64 {
	return t.velocity.Norm()
}

func (t *Tracker) Yaw() float64 {
	return t.yaw
}

func (t *Tracker) S() float64 {
	return t.s
}

func (t *Tracker) D() float64 {
	return t.d
}

func (t *Tracker) Lane() int {
	return t.lane
}

func (t *Tracker) Observations() int {
	return t.observations
}
