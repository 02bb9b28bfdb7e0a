package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/server"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(server.New(log.New(io.Discard), 10_000).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/v1/search", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHealthz(t *testing.T) {
	ts := newServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestStrategies(t *testing.T) {
	ts := newServer(t)
	resp, err := http.Get(ts.URL + "/v1/strategies")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got []server.StrategyInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 7)
	assert.Equal(t, server.StrategyInfo{Name: "bfs", Optimal: true, Deterministic: true}, got[0])
	assert.Equal(t, "a*", got[4].Name)
	assert.False(t, got[5].Deterministic)
}

func TestSearch_Found(t *testing.T) {
	ts := newServer(t)
	resp, raw := post(t, ts, `{"strategy":"A*","rows":3,"cols":3,"start":[0,0],"goal":[0,2],"obstacles":[[0,1],[1,1]]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var got server.SearchResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, server.OutcomeFound, got.Outcome)
	assert.Equal(t, "a*", got.Strategy)
	assert.Equal(t, "DDRRUU", got.Path.String())
	assert.Equal(t, 6, got.Length)
	assert.Positive(t, got.Expanded)
	assert.Len(t, got.ID, 36)
}

func TestSearch_Outcomes(t *testing.T) {
	ts := newServer(t)

	resp, raw := post(t, ts, `{"strategy":"bfs","rows":5,"cols":5,"start":[0,0],"goal":[2,2],
		"obstacles":[[1,2],[3,2],[2,1],[2,3]]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got server.SearchResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, server.OutcomeNotFound, got.Outcome)
	assert.Equal(t, grid.Path{}, got.Path)

	resp, raw = post(t, ts, `{"strategy":"random","rows":50,"cols":50,"start":[0,0],"goal":[49,49],"seed":3,"max_steps":5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, server.OutcomeBudgetExceeded, got.Outcome)
	assert.Zero(t, got.Length)
}

func TestSearch_BadRequests(t *testing.T) {
	ts := newServer(t)
	cases := map[string]string{
		"malformed json":   `{"strategy":`,
		"unknown field":    `{"strategy":"bfs","rows":2,"cols":2,"start":[0,0],"goal":[1,1],"depth":3}`,
		"unknown strategy": `{"strategy":"dijkstra","rows":2,"cols":2,"start":[0,0],"goal":[1,1]}`,
		"bad bounds":       `{"strategy":"bfs","rows":0,"cols":2,"start":[0,0],"goal":[0,1]}`,
		"blocked goal":     `{"strategy":"bfs","rows":2,"cols":2,"start":[0,0],"goal":[1,1],"obstacles":[[1,1]]}`,
		"bad budget":       `{"strategy":"random","rows":2,"cols":2,"start":[0,0],"goal":[1,1],"max_steps":-1}`,
		"too many cells":   `{"strategy":"bfs","rows":101,"cols":100,"start":[0,0],"goal":[0,1]}`,
		"overflowing area": `{"strategy":"a*","rows":4294967296,"cols":4294967296,"start":[0,0],"goal":[0,1]}`,
	}
	for name, body := range cases {
		resp, raw := post(t, ts, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
		var e map[string]string
		require.NoError(t, json.Unmarshal(raw, &e), name)
		assert.NotEmpty(t, e["error"], name)
	}
}

func TestSearch_AtCellLimit(t *testing.T) {
	ts := newServer(t)
	resp, raw := post(t, ts, `{"strategy":"bfs","rows":100,"cols":100,"start":[0,0],"goal":[0,1]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var got server.SearchResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "R", got.Path.String())
}
