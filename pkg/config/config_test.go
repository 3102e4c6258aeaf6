package config

import (
	"bytes"
	"testing"

	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesAreValid(t *testing.T) {
	assert.Equal(t, []string{PROFILE_CONSERVATIVE, PROFILE_HIGHWAY}, Profiles())
	for _, name := range Profiles() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Profile(name)
			require.NoError(t, err)
			assert.NoError(t, cfg.Validate())
		})
	}

	_, err := Profile("autobahn")
	require.Error(t, err)
	assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "highway", mutate: func(c *Config) {}},
		{name: "collision does not dominate", mutate: func(c *Config) { c.CollisionWeight = 1e5 }, wantErr: true},
		{name: "floor too low", mutate: func(c *Config) { c.CollisionFloor = 0.1 }, wantErr: true},
		{name: "efficiency raised one tier", mutate: func(c *Config) { c.EfficiencyWeight = 1e4 }},
		{name: "preferred lane off road", mutate: func(c *Config) { c.PreferredLane = 3 }, wantErr: true},
		{name: "zero lane width", mutate: func(c *Config) { c.LaneWidth = 0 }, wantErr: true},
		{name: "no horizon", mutate: func(c *Config) { c.PredictionHorizon = 0 }, wantErr: true},
		{name: "no workers", mutate: func(c *Config) { c.Workers = 0 }, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HighwayConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	yaml := []byte(`
profiles:
  highway:
    max_speed: 40
    lane_count: 4
    preferred_lane: 2
  conservative:
    collision_weight: 1000
`)
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yaml)))

	cfg, err := Load(v, PROFILE_HIGHWAY)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.MaxSpeed)
	assert.Equal(t, 4, cfg.LaneCount)
	assert.Equal(t, 2, cfg.PreferredLane)
	// untouched keys keep the built-in value
	assert.Equal(t, HighwayConfig().CollisionWeight, cfg.CollisionWeight)

	_, err = Load(v, PROFILE_CONSERVATIVE)
	assert.Error(t, err)

	_, err = Load(v, "autobahn")
	assert.Error(t, err)

	empty := viper.New()
	cfg, err = Load(empty, PROFILE_CONSERVATIVE)
	require.NoError(t, err)
	assert.Equal(t, ConservativeConfig(), cfg)
}

func TestLane(t *testing.T) {
	cfg := HighwayConfig()
	testCases := []struct {
		d    float64
		want int
	}{
		{d: -1.5, want: 0},
		{d: 0, want: 0},
		{d: 3.99, want: 0},
		{d: 4, want: 1},
		{d: 6, want: 1},
		{d: 10, want: 2},
	}
	for _, tt := range testCases {
		assert.Equal(t, tt.want, cfg.Lane(tt.d), "d=%v", tt.d)
	}
	assert.Equal(t, 6.0, cfg.LaneCenter(1))
	assert.Equal(t, 1, cfg.Lane(cfg.LaneCenter(1)))
}
