package costfunction

import (
	"math"
	"testing"

	"github.com/lintang-b-s/behaviorplanner/pkg"
	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	da "github.com/lintang-b-s/behaviorplanner/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataWith(mutate func(d *da.TrajectoryData)) da.TrajectoryData {
	d := da.NewTrajectoryData(1, 1, 30)
	mutate(&d)
	return d
}

func TestCollisionCost(t *testing.T) {
	cfg := config.HighwayConfig()
	cc := NewCollisionCost(cfg)

	noCollision := cc.Compute(nil, nil, da.NewTrajectoryData(1, 1, 30))
	assert.Equal(t, 0.0, noCollision)

	prev := math.Inf(1)
	for step := 0; step <= 50; step++ {
		got := cc.Compute(nil, nil, dataWith(func(d *da.TrajectoryData) { d.Collides.Record(step) }))
		assert.LessOrEqual(t, got, 1.0)
		assert.GreaterOrEqual(t, got, cfg.CollisionFloor)
		assert.Less(t, got, prev, "sooner collisions must cost more (step %d)", step)
		prev = got
	}

	immediate := cc.Compute(nil, nil, dataWith(func(d *da.TrajectoryData) { d.Collides.Record(0) }))
	assert.InDelta(t, 1.0, immediate, 1e-12)
}

func TestBufferCost(t *testing.T) {
	cfg := config.HighwayConfig() // safe 10, buffer 30 steps * 0.02s
	bc := NewBufferCost(cfg)
	require.InDelta(t, 18.0, bc.BufferDistance(30), 1e-9)
	require.InDelta(t, cfg.SafeDistance, bc.BufferDistance(1), 1e-9)

	testCases := []struct {
		name    string
		closest float64
		want    float64
	}{
		{name: "free lane", closest: pkg.MAX_DISTANCE, want: 0},
		{name: "exactly the buffer", closest: 18, want: 0},
		{name: "half way", closest: 14, want: 0.5},
		{name: "at safe distance", closest: 10, want: 1},
		{name: "inside safe distance", closest: 2, want: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := bc.Compute(nil, nil, dataWith(func(d *da.TrajectoryData) {
				d.AvgSpeed = 30
				d.PropClosestApproach = tt.closest
			}))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	prev := math.Inf(1)
	for closest := 0.0; closest <= 30; closest += 0.5 {
		got := bc.Compute(nil, nil, dataWith(func(d *da.TrajectoryData) { d.PropClosestApproach = closest }))
		assert.LessOrEqual(t, got, prev)
		prev = got
	}
}

func TestInefficiencyCostMonotone(t *testing.T) {
	cfg := config.HighwayConfig()
	ic := NewInefficiencyCost(cfg)

	prev := math.Inf(1)
	for speed := -5.0; speed <= cfg.MaxSpeed+20; speed += 0.5 {
		got := ic.Compute(nil, nil, dataWith(func(d *da.TrajectoryData) { d.AvgSpeed = speed }))
		assert.LessOrEqual(t, got, prev, "speed %v", speed)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
		if speed >= cfg.MaxSpeed {
			assert.Equal(t, 0.0, got, "speed %v", speed)
		}
		prev = got
	}
}

func TestChangeLaneCost(t *testing.T) {
	cl := NewChangeLaneCost(config.HighwayConfig()) // 3 lanes, preferred 1

	testCases := []struct {
		name     string
		current  int
		proposed int
		want     float64
	}{
		{name: "stay in middle lane", current: 1, proposed: 1, want: 0},
		{name: "stay in side lane", current: 0, proposed: 0, want: 0.25},
		{name: "move to middle lane", current: 0, proposed: 1, want: 0.5},
		{name: "leave middle lane", current: 1, proposed: 2, want: 0.75},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := cl.Compute(nil, nil, da.NewTrajectoryData(tt.proposed, tt.current, 30))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFreeLineCostMonotone(t *testing.T) {
	cfg := config.HighwayConfig()
	fl := NewFreeLineCost(cfg)

	prev := math.Inf(1)
	for dist := 0.0; dist <= 2*cfg.FreeLineDistance; dist += 1 {
		got := fl.Compute(nil, nil, dataWith(func(d *da.TrajectoryData) { d.ActualClosestApproach = dist }))
		assert.LessOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, -1.0)
		assert.LessOrEqual(t, got, 0.0)
		prev = got
	}
	assert.Equal(t, -1.0, fl.Compute(nil, nil, da.NewTrajectoryData(1, 1, 0)))
}

func TestBatteryEvaluate(t *testing.T) {
	cfg := config.HighwayConfig()
	b := NewBattery(cfg)
	require.Len(t, b, 5)
	assert.Equal(t, "collision", b[0].Fn.Name())
	assert.Equal(t, cfg.CollisionWeight, b[0].Weight)

	data := da.NewTrajectoryData(1, 1, cfg.MaxSpeed)
	total, terms := b.Evaluate(nil, nil, data)
	require.Len(t, terms, 5)

	sum := 0.0
	for _, term := range terms {
		assert.InDelta(t, term.Raw*term.Weight, term.Weighted, 1e-9)
		sum += term.Weighted
	}
	assert.InDelta(t, sum, total, 1e-9)
	// middle lane, full speed, free road: only the free line reward remains
	assert.InDelta(t, -cfg.ComfortWeight, total, 1e-9)
}
