package maze

import "fmt"

// CanMove reports whether a player at from may step in direction d.
func (m *Maze) CanMove(from CellPosition, d Direction) bool {
	to := from.Step(d)
	if !m.InBound(from.X, from.Y) || !m.InBound(to.X, to.Y) {
		return false
	}
	return !m.at(from.X, from.Y).HasWall(d) && !m.at(to.X, to.Y).HasWall(d.Opposite())
}

// DirectionBetween returns the direction leading from a to an adjacent b.
func DirectionBetween(a, b CellPosition) (Direction, bool) {
	for _, d := range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}

// ValidateRoute checks that route runs from Start to End and that every step
// moves to an adjacent cell through an open wall. Backtracking is allowed.
func (m *Maze) ValidateRoute(route []CellPosition) error {
	if len(route) == 0 {
		return ErrEmptyRoute
	}
	if route[0] != m.start || route[len(route)-1] != m.end {
		return fmt.Errorf("%w: got %s..%s, want %s..%s", ErrRouteEndpoints, route[0], route[len(route)-1], m.start, m.end)
	}

	for i := 1; i < len(route); i++ {
		d, adjacent := DirectionBetween(route[i-1], route[i])
		if !adjacent || !m.CanMove(route[i-1], d) {
			return fmt.Errorf("%w: step %d from %s to %s", ErrIllegalStep, i, route[i-1], route[i])
		}
	}
	return nil
}
