package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/behaviorplanner/pkg/config"
	"github.com/lintang-b-s/behaviorplanner/pkg/http/usecases"
	"github.com/lintang-b-s/behaviorplanner/pkg/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const costsBody = `{
	"ego_s": 0,
	"candidates": [
		{"maneuver": "KL", "trajectory": [
			{"step": 0, "s": 0, "d": 6, "speed": 40, "lane": 1},
			{"step": 1, "s": 20, "d": 6, "speed": 40, "lane": 1}
		]},
		{"maneuver": "LCL", "trajectory": [
			{"step": 0, "s": 0, "d": 2, "speed": 40, "lane": 0}
		]}
	]
}`

func newTestServer(t *testing.T) (*httptest.Server, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cfg := config.HighwayConfig()
	svc := usecases.NewPlannerService(zap.NewNop(), planner.NewPlanner(cfg, zap.NewNop()))
	srv := httptest.NewServer(NewAPI(zap.NewNop()).Handler(ctx, false, svc))
	return srv, func() {
		cancel()
		srv.Close()
	}
}

type costsEnvelope struct {
	Data struct {
		Costs          []float64 `json:"costs"`
		Best           int       `json:"best"`
		BestManeuver   string    `json:"best_maneuver"`
		BestTrajectory string    `json:"best_trajectory"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestAPI(t *testing.T) {
	srv, stop := newTestServer(t)
	defer stop()

	testCases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "observations", method: http.MethodPost, path: "/api/observations",
			body: `{"observations":[{"id":3,"x":80,"y":0,"vx":25,"vy":0,"s":80,"d":10,"dt":0.02}]}`,
			wantStatus: http.StatusOK},
		{name: "negative dt", method: http.MethodPost, path: "/api/observations",
			body: `{"observations":[{"id":3,"dt":-1}]}`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, path: "/api/observations",
			body: `{"frames":[]}`, wantStatus: http.StatusBadRequest},
		{name: "list vehicles", method: http.MethodGet, path: "/api/vehicles", wantStatus: http.StatusOK},
		{name: "costs", method: http.MethodPost, path: "/api/costs", body: costsBody, wantStatus: http.StatusOK},
		{name: "unknown maneuver", method: http.MethodPost, path: "/api/costs",
			body: `{"ego_s":0,"candidates":[{"maneuver":"U_TURN","trajectory":[]}]}`,
			wantStatus: http.StatusBadRequest},
		{name: "no candidates", method: http.MethodPost, path: "/api/costs",
			body: `{"ego_s":0,"candidates":[]}`, wantStatus: http.StatusBadRequest},
		{name: "remove tracked vehicle", method: http.MethodDelete, path: "/api/vehicles/3", wantStatus: http.StatusOK},
		{name: "remove unknown vehicle", method: http.MethodDelete, path: "/api/vehicles/3", wantStatus: http.StatusNotFound},
		{name: "bad vehicle id", method: http.MethodDelete, path: "/api/vehicles/abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var body *bytes.Buffer
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			} else {
				body = &bytes.Buffer{}
			}
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, body)
			require.NoError(t, err)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestCostsResponse(t *testing.T) {
	srv, stop := newTestServer(t)
	defer stop()

	resp, err := http.Post(srv.URL+"/api/costs", "application/json", bytes.NewBufferString(costsBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got costsEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Data.Costs, 2)
	assert.Equal(t, 0, got.Data.Best)
	assert.Equal(t, "KL", got.Data.BestManeuver)
	assert.NotEmpty(t, got.Data.BestTrajectory)
	assert.Equal(t, 1e15, got.Data.Costs[1])
}

func TestRejectsNonJSONBody(t *testing.T) {
	srv, stop := newTestServer(t)
	defer stop()

	resp, err := http.Post(srv.URL+"/api/costs", "text/plain", bytes.NewBufferString(costsBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestWebsocketCycle(t *testing.T) {
	srv, stop := newTestServer(t)
	defer stop()

	conn, _, _, err := ws.Dial(context.Background(), "ws"+srv.URL[len("http"):]+"/ws/cycle")
	require.NoError(t, err)
	defer conn.Close()

	// malformed message keeps the connection open
	require.NoError(t, wsutil.WriteClientText(conn, []byte(`{"ego_s": "far"}`)))
	msg, err := wsutil.ReadServerText(conn)
	require.NoError(t, err)
	var bad costsEnvelope
	require.NoError(t, json.Unmarshal(msg, &bad))
	require.NotNil(t, bad.Error)
	assert.Equal(t, http.StatusText(http.StatusBadRequest), bad.Error.Code)

	require.NoError(t, wsutil.WriteClientText(conn, []byte(costsBody)))
	msg, err = wsutil.ReadServerText(conn)
	require.NoError(t, err)
	var got costsEnvelope
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Nil(t, got.Error)
	assert.Equal(t, "KL", got.Data.BestManeuver)
	assert.Len(t, got.Data.Costs, 2)
}
