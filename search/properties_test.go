package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/search"
)

// PropertySuite checks the cross-strategy invariants on seeded random grids.
type PropertySuite struct {
	suite.Suite
	problems []search.Problem
}

func (s *PropertySuite) SetupSuite() {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 40; i++ {
		rows := 4 + rng.Intn(9)
		cols := 4 + rng.Intn(9)
		s.problems = append(s.problems, randomProblem(rng, rows, cols, 0.3))
	}
}

// TestValidity: every non-empty path replays onto the goal through open cells.
func (s *PropertySuite) TestValidity() {
	for i, p := range s.problems {
		for _, k := range search.Kinds() {
			path, err := k.Search(p, search.WithSeed(int64(i+1)))
			if err != nil {
				s.Empty(path, "%s on grid %d", k.Name(), i)
				continue
			}
			s.NoError(path.Walk(p.Start, p.Goal, p.Bounds, p.Obstacles), "%s on grid %d", k.Name(), i)
		}
	}
}

// TestOptimalitySet: BFS, UCS, IDS and A* agree on success and on length.
func (s *PropertySuite) TestOptimalitySet() {
	for i, p := range s.problems {
		ref, refErr := search.BFS(p)
		for _, k := range []search.Kind{search.KindUCS, search.KindIDS, search.KindAStar} {
			got, err := k.Search(p)
			if refErr != nil {
				s.ErrorIs(err, search.ErrNotFound, "%s on grid %d", k.Name(), i)
				continue
			}
			require.NoError(s.T(), err, "%s on grid %d", k.Name(), i)
			s.Len(got, len(ref), "%s on grid %d", k.Name(), i)
		}
		// the weaker strategies never beat the optimum
		if refErr == nil {
			for _, k := range []search.Kind{search.KindDFS, search.KindGreedy} {
				got, err := k.Search(p)
				require.NoError(s.T(), err, "%s on grid %d", k.Name(), i)
				s.GreaterOrEqual(len(got), len(ref), "%s on grid %d", k.Name(), i)
			}
		}
	}
}

// TestDeterminism: repeated calls return identical paths for all but RandomWalk.
func (s *PropertySuite) TestDeterminism() {
	for i, p := range s.problems {
		for _, k := range search.Kinds() {
			if !k.Deterministic() {
				continue
			}
			first, err1 := k.Search(p)
			second, err2 := k.Search(p)
			s.Equal(err1, err2, "%s on grid %d", k.Name(), i)
			s.Equal(first, second, "%s on grid %d", k.Name(), i)
		}
	}
}

// TestObstaclesUntouched: strategies never mutate the obstacle set.
func (s *PropertySuite) TestObstaclesUntouched() {
	for _, p := range s.problems {
		before := p.Obstacles.Sorted()
		for _, k := range search.Kinds() {
			_, _ = k.Search(p, search.WithSeed(5))
		}
		s.Equal(before, p.Obstacles.Sorted())
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
