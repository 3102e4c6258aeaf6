package costfunction

import (
	"math"

	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
)

// BufferCost penalizes a proposed-lane closest approach below the desired buffer, the distance
// travelled in DesiredBuffer control steps at the trajectory's average speed (never less than
// the safe distance). It saturates at 1 at the safe distance.
type BufferCost struct {
	desiredBuffer float64 // timesteps
	interval      float64
	safeDistance  float64
}

func NewBufferCost(cfg config.Config) *BufferCost {
	return &BufferCost{
		desiredBuffer: cfg.DesiredBuffer,
		interval:      cfg.Interval,
		safeDistance:  cfg.SafeDistance,
	}
}

func (bc *BufferCost) Name() string {
	return "buffer"
}

func (bc *BufferCost) BufferDistance(avgSpeed float64) float64 {
	return math.Max(bc.safeDistance, bc.desiredBuffer*bc.interval*avgSpeed)
}

func (bc *BufferCost) Compute(_ da.Trajectory, _ *da.PredictionSet, data da.TrajectoryData) float64 {
	desired := bc.BufferDistance(data.AvgSpeed)
	closest := data.PropClosestApproach
	if closest >= desired {
		return 0
	}
	if closest <= bc.safeDistance {
		return 1
	}
	return (desired - closest) / (desired - bc.safeDistance)
}
