package vehicle

import (
	"math"
	"slices"
	"testing"

	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := config.HighwayConfig()
	cfg.PredictionInterval = 1.0
	return cfg
}

// feed n frames of a vehicle driving along +x at constant speed, ending at lastS
func constantSpeedTracker(cfg config.Config, n int, lastS, speed, d float64) *Tracker {
	tr := NewTracker(7, cfg)
	for i := n - 1; i >= 0; i-- {
		s := lastS - float64(i)*speed
		tr.Update(s, 0, 0, s, d, speed, 1.0)
	}
	return tr
}

func TestShouldPredict(t *testing.T) {
	cfg := testConfig()
	tr := NewTracker(1, cfg)
	for i := 1; i <= 5; i++ {
		tr.Update(float64(i), 0, 0, float64(i), 6, 1, 1)
		if i <= cfg.MinObservations {
			assert.False(t, tr.ShouldPredict(), "observations=%d", i)
			assert.Empty(t, tr.Predictions(3))
		} else {
			assert.True(t, tr.ShouldPredict(), "observations=%d", i)
		}
	}
	assert.Equal(t, 5, tr.Observations())
}

func TestPredictConstantVelocity(t *testing.T) {
	cfg := testConfig()
	tr := constantSpeedTracker(cfg, 5, 100, 10, 6)
	require.True(t, tr.ShouldPredict())

	preds := tr.Predictions(3)
	require.Len(t, preds, 3)

	want := []float64{110, 120, 130}
	for i, p := range preds {
		assert.Equal(t, i+1, p.Step)
		assert.InDelta(t, float64(i+1)*cfg.PredictionInterval, p.T, 1e-9)
		assert.InDelta(t, want[i], p.S, 1e-9)
		assert.InDelta(t, 6.0, p.D, 1e-9)
		assert.Equal(t, 1, p.Lane)
	}
}

func TestPredictSpacingFollowsInterval(t *testing.T) {
	cfg := testConfig()
	cfg.PredictionInterval = 0.5
	tr := constantSpeedTracker(cfg, 5, 100, 10, 2)

	preds := tr.Predictions(4)
	require.Len(t, preds, 4)
	for i := 1; i < len(preds); i++ {
		assert.InDelta(t, 0.5, preds[i].T-preds[i-1].T, 1e-9)
		assert.InDelta(t, 5.0, preds[i].S-preds[i-1].S, 1e-9)
	}
}

func TestPredictIsSingleUse(t *testing.T) {
	tr := constantSpeedTracker(testConfig(), 5, 100, 10, 2)
	seq := tr.Predict(3)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Len(t, first, 3)
	assert.Empty(t, second)
}

func TestPredictIsFrozenAtCall(t *testing.T) {
	tr := constantSpeedTracker(testConfig(), 5, 100, 10, 2)
	seq := tr.Predict(1)
	tr.Update(500, 0, 0, 500, 2, 10, 1)

	preds := slices.Collect(seq)
	require.Len(t, preds, 1)
	assert.InDelta(t, 110, preds[0].S, 1e-9)
}

func TestAccelerationFromFiniteDifference(t *testing.T) {
	testCases := []struct {
		name      string
		speeds    []float64
		dts       []float64
		wantAccel float64
	}{
		{name: "constant", speeds: []float64{10, 10}, dts: []float64{1, 1}, wantAccel: 0},
		{name: "accelerating", speeds: []float64{10, 12}, dts: []float64{1, 0.5}, wantAccel: 4},
		{name: "first frame has no acceleration", speeds: []float64{10}, dts: []float64{1}, wantAccel: 0},
		{name: "zero dt keeps previous estimate", speeds: []float64{10, 12, 30}, dts: []float64{1, 1, 0}, wantAccel: 2},
		{name: "near zero dt keeps previous estimate", speeds: []float64{10, 11, 30}, dts: []float64{1, 1, 1e-12}, wantAccel: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(1, testConfig())
			for i, v := range tt.speeds {
				tr.Update(0, 0, 0, 0, 2, v, tt.dts[i])
			}
			assert.InDelta(t, tt.wantAccel, tr.Acceleration().X, 1e-9)
			assert.InDelta(t, 0, tr.Acceleration().Y, 1e-9)
			assert.False(t, math.IsNaN(tr.Acceleration().X))
		})
	}
}

func TestPredictDeceleratingVehicleStops(t *testing.T) {
	cfg := testConfig()
	tr := NewTracker(3, cfg)
	speeds := []float64{16, 12, 8, 4}
	for _, v := range speeds {
		tr.Update(0, 0, 0, 100, 2, v, 1)
	}
	// v = 4, a = -4: stops after 1s having travelled 2
	preds := tr.Predictions(3)
	require.Len(t, preds, 3)
	for _, p := range preds {
		assert.InDelta(t, 102, p.S, 1e-9)
	}
}

func TestUpdateWithVelocity(t *testing.T) {
	tr := NewTracker(1, testConfig())
	tr.UpdateWithVelocity(0, 0, 0, 5, 10, 9, 1)
	assert.InDelta(t, math.Pi/2, tr.Yaw(), 1e-9)
	assert.InDelta(t, 5, tr.Speed(), 1e-9)
	assert.Equal(t, 2, tr.Lane())

	// standing still keeps the last heading
	tr.UpdateWithVelocity(0, 5, 0, 0, 15, 9, 1)
	assert.InDelta(t, math.Pi/2, tr.Yaw(), 1e-9)
	assert.InDelta(t, -5, tr.Acceleration().Y, 1e-9)
}

func TestLaneIsNeverNegative(t *testing.T) {
	tr := NewTracker(1, testConfig())
	tr.Update(0, 0, 0, 0, -1.5, 0, 1)
	assert.Equal(t, 0, tr.Lane())
	tr.Update(0, 0, 0, 0, 3.99, 0, 1)
	assert.Equal(t, 0, tr.Lane())
	tr.Update(0, 0, 0, 0, 4.0, 0, 1)
	assert.Equal(t, 1, tr.Lane())
}

func TestStateAt(t *testing.T) {
	tr := constantSpeedTracker(testConfig(), 4, 50, 10, 2)
	p := tr.StateAt(2.5)
	assert.InDelta(t, 75, p.S, 1e-9)
	assert.InDelta(t, 2.5, p.T, 1e-9)
}

func TestPredicates(t *testing.T) {
	cfg := testConfig() // safe distance 10
	tr := NewTracker(1, cfg)
	tr.Update(0, 0, 0, 100, 6, 10, 1)

	testCases := []struct {
		name    string
		pred    da.Prediction
		lane    int
		inFront bool
		behind  bool
	}{
		{name: "just behind us", pred: da.Prediction{S: 95, Lane: 1}, lane: 1, inFront: true},
		{name: "just ahead of us", pred: da.Prediction{S: 104, Lane: 1}, lane: 1, behind: true},
		{name: "far ahead", pred: da.Prediction{S: 130, Lane: 1}, lane: 1},
		{name: "other lane", pred: da.Prediction{S: 101, Lane: 2}, lane: 1},
		{name: "checked lane differs from ours", pred: da.Prediction{S: 101, Lane: 2}, lane: 2, behind: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inFront, tr.IsInFrontOf(tt.pred, tt.lane))
			assert.Equal(t, tt.behind, tr.IsBehindOf(tt.pred, tt.lane))
			assert.Equal(t, tt.inFront || tt.behind, tr.IsCloseTo(tt.pred, tt.lane))
		})
	}
}
