package maze

import "fmt"

// noParent marks the BFS root in the cameFrom chain.
var noParent = CellPosition{X: -1, Y: -1}

// Solve returns the path from start to end, both inclusive. The maze is a
// tree, so the shortest path found by the search is also the only one.
func (m *Maze) Solve(start, end CellPosition) ([]CellPosition, error) {
	if !m.InBound(start.X, start.Y) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !m.InBound(end.X, end.Y) {
		return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}
	if start == end {
		return []CellPosition{start}, nil
	}

	cameFrom := map[CellPosition]CellPosition{start: noParent}
	queue := []CellPosition{start}
	found := false

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == end {
			found = true
			break
		}

		neighbours, err := m.Neighbours(cur.X, cur.Y)
		if err != nil {
			return nil, err
		}
		for _, next := range neighbours {
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = cur
			queue = append(queue, next)
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no route from %s to %s", ErrDisconnectedMaze, start, end)
	}

	var path []CellPosition
	for cur := end; cur != noParent; cur = cameFrom[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Solution solves the maze between its own start and end.
func (m *Maze) Solution() ([]CellPosition, error) {
	return m.Solve(m.start, m.end)
}
