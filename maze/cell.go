package maze

import "fmt"

// Direction indexes a cell's walls.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in wall-index order.
var Directions = [4]Direction{North, East, South, West}

var directionDeltas = [4]CellPosition{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() CellPosition {
	return directionDeltas[d]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// CellPosition is a grid coordinate; X is the column and Y the row.
type CellPosition struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Step returns the position one move away in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	delta := d.Delta()
	return CellPosition{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a single square of the grid.
type Cell struct {
	X     int
	Y     int
	Walls [4]uint8 // 1 = wall present, 0 = open passage, indexed by Direction.

	visited bool
}

func newWalledCell(x, y int) Cell {
	return Cell{X: x, Y: y, Walls: [4]uint8{1, 1, 1, 1}}
}

// Position returns the coordinate of the cell.
func (c Cell) Position() CellPosition {
	return CellPosition{X: c.X, Y: c.Y}
}

// HasWall reports whether the side facing d is closed.
func (c Cell) HasWall(d Direction) bool {
	return c.Walls[d] == 1
}

// WallMask packs the walls into a bitmask, bit d set when the wall facing d
// is present. A fully walled cell is 0b1111.
func (c Cell) WallMask() uint8 {
	var mask uint8
	for _, d := range Directions {
		if c.HasWall(d) {
			mask |= 1 << uint(d)
		}
	}
	return mask
}
