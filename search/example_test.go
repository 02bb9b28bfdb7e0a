package search_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleBFS finds the shortest route across an open 3×3 grid.
// Ties between equally short routes follow the Up, Down, Left, Right order.
func ExampleBFS() {
	p := search.NewProblem(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2}, nil, 3, 3)
	path, err := search.BFS(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, len(path))
	// Output:
	// DDRR 4
}

// ExampleParse selects a strategy by name, the way a driver does at startup.
func ExampleParse() {
	walls := grid.NewObstacleSet(grid.Position{Row: 0, Col: 1}, grid.Position{Row: 1, Col: 1})
	p := search.NewProblem(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 0, Col: 2}, walls, 3, 3)

	for _, name := range []string{"A*", "ucs", "dijkstra"} {
		kind, err := search.Parse(name)
		if err != nil {
			fmt.Println(errors.Is(err, search.ErrUnknownStrategy))
			continue
		}
		path, _ := kind.Search(p)
		fmt.Println(kind, path)
	}
	// Output:
	// a* DDRRUU
	// ucs DDRRUU
	// true
}

// ExampleIDS shows the two failure outcomes being told apart.
func ExampleIDS() {
	walls := grid.NewObstacleSet(
		grid.Position{Row: 0, Col: 1},
		grid.Position{Row: 1, Col: 0},
	)
	p := search.NewProblem(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2}, walls, 3, 3)
	path, err := search.IDS(p)
	fmt.Println(len(path), errors.Is(err, search.ErrNotFound), errors.Is(err, search.ErrBudgetExceeded))
	// Output:
	// 0 true false
}
