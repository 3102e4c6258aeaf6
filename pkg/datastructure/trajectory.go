package datastructure

import "github.com/lintang-b-s/behaviorplanner/pkg"

// Snapshot. one point of the ego's candidate trajectory at time step Step.
type Snapshot struct {
	Step  int     `json:"step"`
	S     float64 `json:"s"`
	D     float64 `json:"d"`
	Speed float64 `json:"speed"`
	Lane  int     `json:"lane"`
}

// Trajectory. snapshots in temporal order, the first one is the ego's current state.
type Trajectory []Snapshot

// At returns the snapshot taken at step.
func (tr Trajectory) At(step int) (Snapshot, bool) {
	// steps are usually the slice index
	if step >= 0 && step < len(tr) && tr[step].Step == step {
		return tr[step], true
	}
	for _, snap := range tr {
		if snap.Step == step {
			return snap, true
		}
	}
	return Snapshot{}, false
}

func (tr Trajectory) AverageSpeed() float64 {
	if len(tr) == 0 {
		return 0
	}
	sum := 0.0
	for _, snap := range tr {
		sum += snap.Speed
	}
	return sum / float64(len(tr))
}

type Collision struct {
	HasCollision bool `json:"has_collision"`
	Step         int  `json:"step"`
}

func NoCollision() Collision {
	return Collision{HasCollision: false, Step: pkg.NO_COLLISION_STEP}
}

// Record keeps the earliest colliding step.
func (c *Collision) Record(step int) {
	if !c.HasCollision || step < c.Step {
		c.HasCollision = true
		c.Step = step
	}
}

// TrajectoryData. metrics derived from one (trajectory, maneuver) pair, fed to the cost battery.
type TrajectoryData struct {
	ProposedLane          int       `json:"proposed_lane"`
	CurrentLane           int       `json:"current_lane"`
	AvgSpeed              float64   `json:"avg_speed"`
	PropClosestApproach   float64   `json:"prop_closest_approach"`
	ActualClosestApproach float64   `json:"actual_closest_approach"`
	Collides              Collision `json:"collides"`
}

func NewTrajectoryData(proposedLane, currentLane int, avgSpeed float64) TrajectoryData {
	return TrajectoryData{
		ProposedLane:          proposedLane,
		CurrentLane:           currentLane,
		AvgSpeed:              avgSpeed,
		PropClosestApproach:   pkg.MAX_DISTANCE,
		ActualClosestApproach: pkg.MAX_DISTANCE,
		Collides:              NoCollision(),
	}
}
