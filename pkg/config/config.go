package config

import (
	"fmt"
	"sort"

	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"github.com/spf13/viper"
)

const (
	PROFILE_HIGHWAY      = "highway"
	PROFILE_CONSERVATIVE = "conservative"
)

// Config holds every tunable constant shared by the vehicle trackers and the cost estimator.
// Distances are in road units (s, d), times in seconds, speeds in road units per second.
type Config struct {
	// priority tiers of the cost battery
	CollisionWeight  float64 `mapstructure:"collision_weight" json:"collision_weight" validate:"gt=0"`
	DangerWeight     float64 `mapstructure:"danger_weight" json:"danger_weight" validate:"gte=0"`
	ComfortWeight    float64 `mapstructure:"comfort_weight" json:"comfort_weight" validate:"gte=0"`
	EfficiencyWeight float64 `mapstructure:"efficiency_weight" json:"efficiency_weight" validate:"gte=0"`

	// collision cost decays from 1 toward CollisionFloor as the colliding step moves away
	CollisionFloor      float64 `mapstructure:"collision_floor" json:"collision_floor" validate:"gt=0,lte=1"`
	CollisionDecaySteps float64 `mapstructure:"collision_decay_steps" json:"collision_decay_steps" validate:"gt=0"`

	MaxSpeed         float64 `mapstructure:"max_speed" json:"max_speed" validate:"gt=0"`
	DesiredBuffer    float64 `mapstructure:"desired_buffer" json:"desired_buffer" validate:"gte=0"` // timesteps
	FreeLineDistance float64 `mapstructure:"free_line_distance" json:"free_line_distance" validate:"gt=0"`
	ManeuverMargin   float64 `mapstructure:"maneuver_margin" json:"maneuver_margin" validate:"gte=0"`
	SafeDistance     float64 `mapstructure:"safe_distance" json:"safe_distance" validate:"gt=0"`

	PredictionHorizon  int     `mapstructure:"prediction_horizon" json:"prediction_horizon" validate:"gt=0,lt=1000"`
	PredictionInterval float64 `mapstructure:"prediction_interval" json:"prediction_interval" validate:"gt=0"`
	Interval           float64 `mapstructure:"interval" json:"interval" validate:"gt=0"` // control loop period

	LaneWidth     float64 `mapstructure:"lane_width" json:"lane_width" validate:"gt=0"`
	LaneCount     int     `mapstructure:"lane_count" json:"lane_count" validate:"gt=0"`
	PreferredLane int     `mapstructure:"preferred_lane" json:"preferred_lane" validate:"gte=0,ltfield=LaneCount"`

	MinObservations   int     `mapstructure:"min_observations" json:"min_observations" validate:"gte=0"`
	MinUpdateInterval float64 `mapstructure:"min_update_interval" json:"min_update_interval" validate:"gt=0"`
	SensorRange       float64 `mapstructure:"sensor_range" json:"sensor_range" validate:"gt=0"`

	// worker pool size for batch costing
	Workers int `mapstructure:"workers" json:"workers" validate:"gt=0"`
}

// HighwayConfig. default tuning for a three lane highway.
func HighwayConfig() Config {
	return Config{
		CollisionWeight:     1e6,
		DangerWeight:        1e5,
		ComfortWeight:       1e3,
		EfficiencyWeight:    1e3,
		CollisionFloor:      0.5,
		CollisionDecaySteps: 10,
		MaxSpeed:            49.5,
		DesiredBuffer:       30,
		FreeLineDistance:    30,
		ManeuverMargin:      5,
		SafeDistance:        10,
		PredictionHorizon:   10,
		PredictionInterval:  0.5,
		Interval:            0.02,
		LaneWidth:           4.0,
		LaneCount:           3,
		PreferredLane:       1,
		MinObservations:     3,
		MinUpdateInterval:   1e-6,
		SensorRange:         150,
		Workers:             4,
	}
}

// ConservativeConfig. the second tuning: longer buffer and horizon, wider maneuver margin and
// efficiency weighted one tier higher.
func ConservativeConfig() Config {
	cfg := HighwayConfig()
	cfg.EfficiencyWeight = 1e4
	cfg.DesiredBuffer = 50
	cfg.PredictionHorizon = 15
	cfg.ManeuverMargin = 8
	cfg.SafeDistance = 15
	cfg.FreeLineDistance = 45
	return cfg
}

var profiles = map[string]func() Config{
	PROFILE_HIGHWAY:      HighwayConfig,
	PROFILE_CONSERVATIVE: ConservativeConfig,
}

func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile returns the built-in profile by name.
func Profile(name string) (Config, error) {
	newCfg, ok := profiles[name]
	if !ok {
		return Config{}, util.WrapErrorf(nil, util.ErrNotFound, "unknown tuning profile %q", name)
	}
	return newCfg(), nil
}

// Load. built-in profile `name` overlaid with the keys under `profiles.<name>` of v.
// The result is validated.
func Load(v *viper.Viper, name string) (Config, error) {
	cfg, err := Profile(name)
	if err != nil {
		return Config{}, err
	}

	if sub := v.Sub("profiles." + name); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to decode profile %s: %w", name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid profile %s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks the field constraints and that a predicted collision always outweighs every
// other cost of the battery. Each non-collision raw cost spans at most 1 (free line and change
// lane share the comfort tier).
func (c Config) Validate() error {
	if err := util.ValidateStruct(c); err != nil {
		return err
	}

	others := c.DangerWeight + c.EfficiencyWeight + 2*c.ComfortWeight
	if c.CollisionWeight*c.CollisionFloor <= others {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"collision weight %g with floor %g does not dominate the other weights (sum %g)",
			c.CollisionWeight, c.CollisionFloor, others)
	}
	return nil
}

// Lane. discrete lane index of lateral offset d, never negative.
func (c Config) Lane(d float64) int {
	if d <= 0 {
		return 0
	}
	return int(d / c.LaneWidth)
}

// LaneCenter. lateral offset of the middle of lane.
func (c Config) LaneCenter(lane int) float64 {
	return c.LaneWidth*float64(lane) + c.LaneWidth/2
}
