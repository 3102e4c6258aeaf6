package costfunction

import (
	"math"

	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
)

// CollisionCost. 1 for a collision at the current step, decaying toward floor for collisions
// further ahead, 0 without collision.
type CollisionCost struct {
	floor      float64
	decaySteps float64
}

func NewCollisionCost(cfg config.Config) *CollisionCost {
	return &CollisionCost{
		floor:      cfg.CollisionFloor,
		decaySteps: cfg.CollisionDecaySteps,
	}
}

func (cc *CollisionCost) Name() string {
	return "collision"
}

func (cc *CollisionCost) Compute(_ da.Trajectory, _ *da.PredictionSet, data da.TrajectoryData) float64 {
	if !data.Collides.HasCollision {
		return 0
	}
	step := math.Max(0, float64(data.Collides.Step))
	return cc.floor + (1-cc.floor)*math.Exp(-step/cc.decaySteps)
}
