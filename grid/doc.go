// Package grid defines the primitives shared by every search strategy in
// github.com/katalvlaran/gridpath: cell positions, the four move directions,
// rectangular bounds, static obstacle sets and move paths.
//
// What:
//
//   - Position is a (row, column) value, comparable and usable as a map key.
//   - Direction is the closed set {Up, Down, Left, Right}. Directions fixes their
//     order once; every strategy expands neighbours in that order, so the order
//     is part of each algorithm's determinism contract.
//   - Bounds describes a Rows×Cols grid; ObstacleSet holds blocked cells.
//   - Path is a sequence of moves applied from a start cell.
//
// Why:
//
//   - A single definition of the direction order avoids drift between strategies.
//   - Manhattan distance is the admissible and consistent heuristic on a
//     4-connected grid with unit move cost.
//
// Complexity:
//
//   - InBounds, Step, Manhattan: O(1).
//   - Path.Apply, Path.Walk: O(len(path)).
//
// Errors:
//
//   - ErrInvalidBounds:     Rows or Cols is not positive.
//   - ErrOutOfBounds:       a path step leaves the grid.
//   - ErrBlocked:           a path step enters an obstacle.
//   - ErrWrongDestination:  a path ends somewhere other than the expected cell.
//   - ErrBadDirection:      text does not name a direction.
package grid
