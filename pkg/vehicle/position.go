package vehicle

import (
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
)

// IsInFrontOf. a vehicle at s is ahead of pred, in lane, by less than safeDistance.
func IsInFrontOf(s float64, pred da.Prediction, lane int, safeDistance float64) bool {
	if pred.Lane != lane {
		return false
	}
	gap := s - pred.S
	return gap >= 0 && gap < safeDistance
}

// IsBehindOf. a vehicle at s is behind pred, in lane, by less than safeDistance.
func IsBehindOf(s float64, pred da.Prediction, lane int, safeDistance float64) bool {
	if pred.Lane != lane {
		return false
	}
	gap := pred.S - s
	return gap >= 0 && gap < safeDistance
}

func IsCloseTo(s float64, pred da.Prediction, lane int, safeDistance float64) bool {
	return IsInFrontOf(s, pred, lane, safeDistance) || IsBehindOf(s, pred, lane, safeDistance)
}
