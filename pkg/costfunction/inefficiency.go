package costfunction

import (
	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
)

// InefficiencyCost. relative shortfall of the average speed from the maximum speed.
type InefficiencyCost struct {
	maxSpeed float64
}

func NewInefficiencyCost(cfg config.Config) *InefficiencyCost {
	return &InefficiencyCost{
		maxSpeed: cfg.MaxSpeed,
	}
}

func (ic *InefficiencyCost) Name() string {
	return "inefficiency"
}

func (ic *InefficiencyCost) Compute(_ da.Trajectory, _ *da.PredictionSet, data da.TrajectoryData) float64 {
	return util.Clamp((ic.maxSpeed-data.AvgSpeed)/ic.maxSpeed, 0, 1)
}
