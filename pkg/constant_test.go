package pkg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManeuver(t *testing.T) {
	testCases := []struct {
		name       string
		m          Maneuver
		offset     int
		laneChange bool
	}{
		{name: "KL", m: KEEP_LANE, offset: 0, laneChange: false},
		{name: "PLCL", m: PREPARE_LANE_CHANGE_LEFT, offset: -1, laneChange: true},
		{name: "PLCR", m: PREPARE_LANE_CHANGE_RIGHT, offset: 1, laneChange: true},
		{name: "LCL", m: LANE_CHANGE_LEFT, offset: -1, laneChange: true},
		{name: "LCR", m: LANE_CHANGE_RIGHT, offset: 1, laneChange: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.m.String())
			assert.Equal(t, tt.offset, tt.m.LaneOffset())
			assert.Equal(t, tt.laneChange, tt.m.IsLaneChange())

			parsed, err := ParseManeuver(" " + tt.name + " ")
			require.NoError(t, err)
			assert.Equal(t, tt.m, parsed)
		})
	}
	assert.Len(t, Maneuvers(), len(testCases))
}

func TestUnknownManeuver(t *testing.T) {
	unknown := Maneuver(99)
	assert.Equal(t, "Maneuver(99)", unknown.String())
	assert.Panics(t, func() { unknown.LaneOffset() })
	assert.Panics(t, func() { unknown.IsLaneChange() })

	_, err := ParseManeuver("U_TURN")
	assert.Error(t, err)

	_, err = json.Marshal(unknown)
	assert.Error(t, err)
}

func TestManeuverJSON(t *testing.T) {
	var got struct {
		M Maneuver `json:"m"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"m":"lcr"}`), &got))
	assert.Equal(t, LANE_CHANGE_RIGHT, got.M)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"m":"LCR"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"m":"fly"}`), &got))
}
