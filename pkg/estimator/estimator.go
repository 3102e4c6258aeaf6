package estimator

import (
	"math"

	"github.com/lintang-b-s/behaviorplanner/pkg"
	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	"github.com/lintang-b-s/behaviorplanner/pkg/costfunction"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"github.com/lintang-b-s/behaviorplanner/pkg/vehicle"
	"go.uber.org/zap"
)

// CandidateState is a maneuver of the caller's closed tag set. It must panic on a value
// outside that set rather than fall back to a default.
type CandidateState interface {
	LaneOffset() int
	IsLaneChange() bool
}

// Estimator scores (trajectory, maneuver) pairs. It keeps no state between calls, so one
// Estimator may cost many candidates concurrently against the same frozen PredictionSet.
type Estimator struct {
	cfg     config.Config
	battery costfunction.Battery
	log     *zap.Logger
}

func NewEstimator(cfg config.Config, log *zap.Logger) *Estimator {
	return &Estimator{
		cfg:     cfg,
		battery: costfunction.NewBattery(cfg),
		log:     log,
	}
}

// NewEstimatorWithBattery. estimator over a custom list of heuristics.
func NewEstimatorWithBattery(cfg config.Config, battery costfunction.Battery, log *zap.Logger) *Estimator {
	util.AssertPanic(len(battery) > 0, "estimator needs at least one cost function")
	return &Estimator{
		cfg:     cfg,
		battery: battery,
		log:     log,
	}
}

func (e *Estimator) Config() config.Config {
	return e.cfg
}

// CostBreakdown. total cost of one candidate with the contribution of every heuristic.
type CostBreakdown struct {
	Total    float64             `json:"total"`
	Feasible bool                `json:"feasible"`
	Data     da.TrajectoryData   `json:"data"`
	Terms    []costfunction.Term `json:"terms"`
}

// CalculateCost returns the weighted sum of the cost battery for following trajectory under
// state. Proposals leaving the road and empty trajectories are infeasible and cost INF_COST,
// more than any colliding candidate; they are never selected by Best, so a predicted collision
// outweighs every other cost only among feasible candidates.
func (e *Estimator) CalculateCost(egoS float64, trajectory da.Trajectory, predictions *da.PredictionSet,
	state CandidateState) float64 {
	bd := e.Breakdown(egoS, trajectory, predictions, state)
	if e.log.Core().Enabled(zap.DebugLevel) {
		fields := []zap.Field{
			zap.Any("state", state),
			zap.Bool("feasible", bd.Feasible),
			zap.Float64("total", bd.Total),
		}
		for _, term := range bd.Terms {
			fields = append(fields, zap.Float64(term.Name, term.Weighted))
		}
		e.log.Debug("candidate cost", fields...)
	}
	return bd.Total
}

func (e *Estimator) Breakdown(egoS float64, trajectory da.Trajectory, predictions *da.PredictionSet,
	state CandidateState) CostBreakdown {
	if len(trajectory) == 0 {
		// resolving the tag still catches a vocabulary mismatch
		state.LaneOffset()
		return CostBreakdown{Total: pkg.INF_COST}
	}

	proposedLane := trajectory[0].Lane + state.LaneOffset()
	if proposedLane < 0 || proposedLane >= e.cfg.LaneCount {
		return CostBreakdown{Total: pkg.INF_COST}
	}

	data := e.GetHelperData(egoS, trajectory, predictions, state)
	total, terms := e.battery.Evaluate(trajectory, predictions, data)
	return CostBreakdown{
		Total:    total,
		Feasible: true,
		Data:     data,
		Terms:    terms,
	}
}

// GetHelperData derives the metrics the battery works on: lanes, average speed, closest
// approaches and the earliest predicted collision.
//
// In the proposed lane the ego is assumed to drive the trajectory's longitudinal profile in
// that lane; the separation is measured both ways. Along the actual trajectory only vehicles
// ahead of the ego in the snapshot's own lane count towards the closest approach.
func (e *Estimator) GetHelperData(egoS float64, trajectory da.Trajectory, predictions *da.PredictionSet,
	state CandidateState) da.TrajectoryData {
	currentLane := trajectory[0].Lane
	proposedLane := currentLane + state.LaneOffset()
	data := da.NewTrajectoryData(proposedLane, currentLane, trajectory.AverageSpeed())

	inProposed := e.FilterPredictionsByLane(predictions, proposedLane)
	for _, preds := range inProposed.All() {
		prevGap := math.NaN()
		for _, pred := range preds {
			snap, ok := trajectory.At(pred.Step)
			if !ok {
				prevGap = math.NaN()
				continue
			}
			snap.Lane = proposedLane
			gap := pred.S - snap.S
			data.PropClosestApproach = math.Min(data.PropClosestApproach, math.Abs(gap))
			if e.CheckCollision(egoS, snap, pred, state) || drivesThrough(prevGap, gap) {
				data.Collides.Record(pred.Step)
			}
			prevGap = gap
		}
	}

	actual := inProposed
	if currentLane != proposedLane {
		actual = mergePredictionSets(inProposed, e.FilterPredictionsByLane(predictions, currentLane))
	}
	for _, preds := range actual.All() {
		prevGap := math.NaN()
		for _, pred := range preds {
			snap, ok := trajectory.At(pred.Step)
			if !ok || snap.Lane != pred.Lane {
				prevGap = math.NaN()
				continue
			}
			gap := pred.S - snap.S
			if gap >= 0 {
				data.ActualClosestApproach = math.Min(data.ActualClosestApproach, gap)
			}
			if e.CheckCollision(egoS, snap, pred, state) || drivesThrough(prevGap, gap) {
				data.Collides.Record(pred.Step)
			}
			prevGap = gap
		}
	}

	return data
}

// drivesThrough. the vehicle was ahead of the ego at the previous step and is behind it now, in
// the same lane: the ego passed through it between two snapshots. NaN marks no previous step.
func drivesThrough(prevGap, gap float64) bool {
	return prevGap >= 0 && gap < 0
}

// CheckCollision. the ego at snapshot and the predicted vehicle share lane and time step and
// are closer than the safe distance, widened by the maneuver margin during lane changes.
// A vehicle behind the snapshot at that step is the follower's concern while keeping the lane,
// it only counts when the ego changes lanes in front of it. egoS does not enter the test: the
// follower rule uses the ego's position at the same step.
func (e *Estimator) CheckCollision(egoS float64, snapshot da.Snapshot, prediction da.Prediction,
	state CandidateState) bool {
	if snapshot.Step != prediction.Step {
		return false
	}
	laneChange := state.IsLaneChange()
	if prediction.S < snapshot.S && !laneChange {
		return false
	}
	threshold := e.cfg.SafeDistance
	if laneChange {
		threshold += e.cfg.ManeuverMargin
	}
	return vehicle.IsCloseTo(snapshot.S, prediction, snapshot.Lane, threshold)
}

// FilterPredictionsByLane keeps the vehicles currently in lane, in their original order.
// Vehicles without predictions are in no lane and are dropped.
func (e *Estimator) FilterPredictionsByLane(predictions *da.PredictionSet, lane int) *da.PredictionSet {
	return FilterPredictionsByLane(predictions, lane)
}

func FilterPredictionsByLane(predictions *da.PredictionSet, lane int) *da.PredictionSet {
	filtered := da.NewPredictionSet(predictions.Len())
	for id, preds := range predictions.All() {
		if len(preds) > 0 && preds[0].Lane == lane {
			filtered.Add(id, preds)
		}
	}
	return filtered
}

func mergePredictionSets(a, b *da.PredictionSet) *da.PredictionSet {
	merged := da.NewPredictionSet(a.Len() + b.Len())
	for id, preds := range a.All() {
		merged.Add(id, preds)
	}
	for id, preds := range b.All() {
		merged.Add(id, preds)
	}
	return merged
}
