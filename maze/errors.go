package maze

import "errors"

// Maze errors.
var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidSeed       = errors.New("invalid maze seed")
	ErrOutOfBounds       = errors.New("position is out of the maze")
	// ErrDisconnectedMaze means the solver could not reach the goal. A carved
	// maze is a spanning tree, so this points at a generator defect.
	ErrDisconnectedMaze = errors.New("maze is disconnected")
	ErrEmptyRoute       = errors.New("route is empty")
	ErrRouteEndpoints   = errors.New("route does not join start and end")
	ErrIllegalStep      = errors.New("route steps through a wall")
)
