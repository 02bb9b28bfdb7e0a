package grid_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func TestInBounds(t *testing.T) {
	cases := []struct {
		pos  grid.Position
		want bool
	}{
		{grid.Position{Row: 0, Col: 0}, true},
		{grid.Position{Row: 2, Col: 3}, true},
		{grid.Position{Row: 3, Col: 0}, false},
		{grid.Position{Row: 0, Col: 4}, false},
		{grid.Position{Row: -1, Col: 0}, false},
		{grid.Position{Row: 0, Col: -1}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, grid.InBounds(tc.pos, 3, 4), "pos %s", tc.pos)
	}
}

func TestStep_DirectionOrder(t *testing.T) {
	origin := grid.Position{Row: 5, Col: 5}
	want := []grid.Position{{Row: 4, Col: 5}, {Row: 6, Col: 5}, {Row: 5, Col: 4}, {Row: 5, Col: 6}}
	for i, d := range grid.Directions {
		assert.Equal(t, want[i], grid.Step(origin, d), "direction %s", d)
	}
	assert.Equal(t, [4]grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}, grid.Directions)
}

func TestManhattan(t *testing.T) {
	a := grid.Position{Row: 1, Col: 7}
	b := grid.Position{Row: 4, Col: 2}
	assert.Equal(t, 8, grid.Manhattan(a, b))
	assert.Equal(t, 8, grid.Manhattan(b, a))
	assert.Zero(t, grid.Manhattan(a, a))
}

func TestBounds_Validate(t *testing.T) {
	assert.NoError(t, grid.Bounds{Rows: 1, Cols: 1}.Validate())
	assert.ErrorIs(t, grid.Bounds{Rows: 0, Cols: 3}.Validate(), grid.ErrInvalidBounds)
	assert.ErrorIs(t, grid.Bounds{Rows: 3, Cols: -2}.Validate(), grid.ErrInvalidBounds)
	assert.Equal(t, grid.Position{Row: 12, Col: 12}, grid.Bounds{Rows: 25, Cols: 25}.Center())
}

func TestPath_Walk(t *testing.T) {
	b := grid.Bounds{Rows: 3, Cols: 3}
	start := grid.Position{}
	goal := grid.Position{Row: 2, Col: 2}
	obstacles := grid.NewObstacleSet(grid.Position{Row: 1, Col: 1})

	ok := grid.Path{grid.Down, grid.Down, grid.Right, grid.Right}
	require.NoError(t, ok.Walk(start, goal, b, obstacles))
	assert.Equal(t, goal, ok.Apply(start))

	off := grid.Path{grid.Up}
	assert.ErrorIs(t, off.Walk(start, goal, b, obstacles), grid.ErrOutOfBounds)

	blocked := grid.Path{grid.Down, grid.Right}
	assert.ErrorIs(t, blocked.Walk(start, goal, b, obstacles), grid.ErrBlocked)

	short := grid.Path{grid.Down}
	assert.ErrorIs(t, short.Walk(start, goal, b, obstacles), grid.ErrWrongDestination)

	var empty grid.Path
	assert.NoError(t, empty.Walk(goal, goal, b, obstacles))
}

func TestPath_StringRoundTrip(t *testing.T) {
	p := grid.Path{grid.Down, grid.Down, grid.Right, grid.Up, grid.Left}
	assert.Equal(t, "DDRUL", p.String())

	parsed, err := grid.ParsePath("ddrul")
	require.NoError(t, err)
	assert.Equal(t, p, parsed)

	_, err = grid.ParsePath("DX")
	assert.ErrorIs(t, err, grid.ErrBadDirection)
}

func TestDirection_JSON(t *testing.T) {
	raw, err := json.Marshal(grid.Path{grid.Up, grid.Right})
	require.NoError(t, err)
	assert.JSONEq(t, `["up","right"]`, string(raw))

	var back grid.Path
	require.NoError(t, json.Unmarshal([]byte(`["DOWN","l"]`), &back))
	assert.Equal(t, grid.Path{grid.Down, grid.Left}, back)

	assert.Error(t, json.Unmarshal([]byte(`["north"]`), &back))
}

func TestParsePositionAndObstacles(t *testing.T) {
	p, err := grid.ParsePosition(" 3, 4 ")
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 3, Col: 4}, p)

	_, err = grid.ParsePosition("3")
	assert.ErrorIs(t, err, grid.ErrBadPosition)
	_, err = grid.ParsePosition("a,1")
	assert.ErrorIs(t, err, grid.ErrBadPosition)

	set, err := grid.ParseObstacles("1,1; 0,2;")
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 2}, {Row: 1, Col: 1}}, set.Sorted())

	empty, err := grid.ParseObstacles("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestObstacleSet_NilIsEmpty(t *testing.T) {
	var s grid.ObstacleSet
	assert.False(t, s.Has(grid.Position{}))
	assert.True(t, grid.Passable(grid.Position{}, grid.Bounds{Rows: 1, Cols: 1}, s))
}

func TestDirection_InvalidIsPrintable(t *testing.T) {
	bad := grid.Direction(9)
	assert.False(t, bad.Valid())
	assert.Equal(t, byte('?'), bad.Letter())
	assert.Equal(t, "Direction(9)", bad.String())
	assert.Equal(t, "U?R", grid.Path{grid.Up, bad, grid.Right}.String())
}
