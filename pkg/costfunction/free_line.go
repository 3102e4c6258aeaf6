package costfunction

import (
	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
)

// FreeLineCost rewards free road ahead: -1 with at least freeDistance ahead, 0 when blocked.
type FreeLineCost struct {
	freeDistance float64
}

func NewFreeLineCost(cfg config.Config) *FreeLineCost {
	return &FreeLineCost{
		freeDistance: cfg.FreeLineDistance,
	}
}

func (fl *FreeLineCost) Name() string {
	return "free_line"
}

func (fl *FreeLineCost) Compute(_ da.Trajectory, _ *da.PredictionSet, data da.TrajectoryData) float64 {
	ahead := util.Clamp(data.ActualClosestApproach, 0, fl.freeDistance)
	return -ahead / fl.freeDistance
}
