package costfunction

import (
	"math"

	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
)

// ChangeLaneCost. half for leaving the current lane, half for the distance of the proposed
// lane from the preferred (middle) lane.
type ChangeLaneCost struct {
	preferredLane int
	laneCount     int
}

func NewChangeLaneCost(cfg config.Config) *ChangeLaneCost {
	return &ChangeLaneCost{
		preferredLane: cfg.PreferredLane,
		laneCount:     cfg.LaneCount,
	}
}

func (cl *ChangeLaneCost) Name() string {
	return "change_lane"
}

func (cl *ChangeLaneCost) Compute(_ da.Trajectory, _ *da.PredictionSet, data da.TrajectoryData) float64 {
	cost := 0.0
	if data.ProposedLane != data.CurrentLane {
		cost += 0.5
	}
	span := math.Max(1, float64(cl.laneCount-1))
	offPreferred := float64(util.Abs(data.ProposedLane-cl.preferredLane)) / span
	return cost + 0.5*math.Min(1, offPreferred)
}
