// Package gridpath finds paths on rectangular grids with static obstacles and
// drives a snake game with them.
//
// What is in the module?
//
//	grid/             positions, directions, bounds, obstacle sets and paths
//	search/           BFS, DFS, IDS, UCS, Greedy best-first, A* and a random walk,
//	                   plus the Kind registry that dispatches between them
//	internal/config   TOML configuration with defaults and validation
//	internal/game     the headless snake driver (levels, ticks, replanning)
//	internal/render   terminal, Graphviz DOT and SVG drawings of a board
//	internal/server   the HTTP search API
//	internal/cli      the gridpath command (solve, play, serve, strategies)
//
// Every strategy has the same shape:
//
//	path, err := search.AStar(search.NewProblem(start, goal, obstacles, rows, cols))
//
// and returns the moves from start to goal, or an empty path with ErrNotFound,
// ErrBudgetExceeded or ErrInvalidProblem.
//
// Quick ASCII example (S start, G goal, # obstacle, * path):
//
//	S # G
//	* # *
//	* * *
//
// BFS, UCS, IDS and A* all answer DDRRUU here.
package gridpath
