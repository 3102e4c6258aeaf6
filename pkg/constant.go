package pkg

import (
	"fmt"
	"strings"
)

const (
	INF_COST          float64 = 1e15
	MAX_DISTANCE              = 999999.0
	NO_COLLISION_STEP         = 1000 // larger than any prediction horizon
)

// Maneuver is the closed tag set of behavior states the planner asks us to cost.
type Maneuver uint8

// enum of maneuver
const (
	KEEP_LANE Maneuver = iota
	PREPARE_LANE_CHANGE_LEFT
	PREPARE_LANE_CHANGE_RIGHT
	LANE_CHANGE_LEFT
	LANE_CHANGE_RIGHT
	maneuverCount
)

var maneuverNames = [...]string{
	KEEP_LANE:                 "KL",
	PREPARE_LANE_CHANGE_LEFT:  "PLCL",
	PREPARE_LANE_CHANGE_RIGHT: "PLCR",
	LANE_CHANGE_LEFT:          "LCL",
	LANE_CHANGE_RIGHT:         "LCR",
}

// Maneuvers returns every maneuver of the closed set, in declaration order.
func Maneuvers() []Maneuver {
	ms := make([]Maneuver, 0, maneuverCount)
	for m := KEEP_LANE; m < maneuverCount; m++ {
		ms = append(ms, m)
	}
	return ms
}

func (m Maneuver) valid() bool {
	return m < maneuverCount
}

func (m Maneuver) String() string {
	if !m.valid() {
		return fmt.Sprintf("Maneuver(%d)", uint8(m))
	}
	return maneuverNames[m]
}

// LaneOffset. lane index delta of the proposed lane relative to the ego's current lane.
// lanes are numbered from the left road edge, so a left change decreases the index.
// panics on a value outside the closed set: the caller and the estimator disagree on the vocabulary.
func (m Maneuver) LaneOffset() int {
	switch m {
	case KEEP_LANE:
		return 0
	case PREPARE_LANE_CHANGE_LEFT, LANE_CHANGE_LEFT:
		return -1
	case PREPARE_LANE_CHANGE_RIGHT, LANE_CHANGE_RIGHT:
		return 1
	default:
		panic(fmt.Sprintf("unknown maneuver %d", uint8(m)))
	}
}

// IsLaneChange. true for committed and prepared lane changes.
func (m Maneuver) IsLaneChange() bool {
	switch m {
	case KEEP_LANE:
		return false
	case PREPARE_LANE_CHANGE_LEFT, PREPARE_LANE_CHANGE_RIGHT, LANE_CHANGE_LEFT, LANE_CHANGE_RIGHT:
		return true
	default:
		panic(fmt.Sprintf("unknown maneuver %d", uint8(m)))
	}
}

func ParseManeuver(name string) (Maneuver, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for m, n := range maneuverNames {
		if n == name {
			return Maneuver(m), nil
		}
	}
	return 0, fmt.Errorf("unknown maneuver %q", name)
}

func (m Maneuver) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("unknown maneuver %d", uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Maneuver) UnmarshalText(text []byte) error {
	parsed, err := ParseManeuver(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
