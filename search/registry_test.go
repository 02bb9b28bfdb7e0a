package search_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/search"
)

func TestParse(t *testing.T) {
	cases := map[string]search.Kind{
		"bfs":        search.KindBFS,
		"BFS":        search.KindBFS,
		"dfs":        search.KindDFS,
		"Ucs":        search.KindUCS,
		"IDS":        search.KindIDS,
		"a*":         search.KindAStar,
		"A*":         search.KindAStar,
		"astar":      search.KindAStar,
		"random":     search.KindRandom,
		"greedy_bfs": search.KindGreedy,
		"GREEDY_BFS": search.KindGreedy,
		" greedy ":   search.KindGreedy,
	}
	for in, want := range cases {
		got, err := search.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "dijkstra", "a", "bfs2"} {
		_, err := search.Parse(bad)
		assert.ErrorIs(t, err, search.ErrUnknownStrategy, bad)
	}
}

func TestKinds_RoundTrip(t *testing.T) {
	kinds := search.Kinds()
	require.Len(t, kinds, 7)
	for _, k := range kinds {
		parsed, err := search.Parse(k.Name())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.NotNil(t, k.Func())
	}

	optimal := 0
	for _, k := range kinds {
		if k.Optimal() {
			optimal++
		}
	}
	assert.Equal(t, 4, optimal)
	assert.False(t, search.KindRandom.Deterministic())
	assert.True(t, search.KindGreedy.Deterministic())
}

func TestKind_OutOfRange(t *testing.T) {
	k := search.Kind(42)
	assert.Equal(t, "Kind(42)", k.Name())
	assert.Nil(t, k.Func())
	_, err := k.Search(search.NewProblem(pos(0, 0), pos(0, 0), nil, 1, 1))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestKind_JSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		S search.Kind `json:"s"`
	}{search.KindAStar})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"a*"}`, string(raw))

	var in struct {
		S search.Kind `json:"s"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"s":"IDS"}`), &in))
	assert.Equal(t, search.KindIDS, in.S)
	assert.Error(t, json.Unmarshal([]byte(`{"s":"nope"}`), &in))
}
