package tiles

import (
	"strings"

	"github.com/retrace-framework/retrace/pkg/retrace"
)

// Shape is the kind of tile occupying one board cell. Shapes larger
// than one cell spill into the collision grid of their neighbors.
type Shape int

const (
	Free Shape = iota
	M1
	M2
	M3
	Ship
)

// Point is a position on the collision/drawing grid.
type Point struct {
	X int
	Y int
}

// points returns the grid points a shape occupies, relative to its
// cell.
func (s Shape) points() []Point {
	switch s {
	case M1:
		return []Point{{0, 0}}
	case M2:
		return []Point{{0, 0}, {1, 1}}
	case M3:
		return []Point{{0, 0}, {1, 1}, {1, 0}}
	case Ship:
		return []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 0}, {-1, 0}}
	}
	return nil
}

// rune returns the drawing character for a shape.
func (s Shape) rune() rune {
	switch s {
	case M1:
		return 'x'
	case M2:
		return 'X'
	case M3:
		return 'Y'
	case Ship:
		return 'V'
	}
	return 'o'
}

// drawingPoints returns the grid points a shape is drawn on. The
// free space occupies nothing for collision purposes but is drawn as
// a 2x2 block.
func (s Shape) drawingPoints() []Point {
	if s == Free {
		return []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	}
	return s.points()
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "right"
}

// directions lists the moves in the order Successors offers them.
// The engine pops from the end, so Right is tried first.
var directions = []Direction{Up, Down, Left, Right}

// cellX and cellY convert a board cell index to its 3x3 coordinates.
func cellX(index int) int { return index % 3 }
func cellY(index int) int { return index / 3 }

// neighbor returns the cell index adjacent to index in direction d,
// or false when the move would leave the board.
func neighbor(index int, d Direction) (int, bool) {
	x, y := cellX(index), cellY(index)
	switch d {
	case Up:
		y--
	case Down:
		y++
	case Left:
		x--
	case Right:
		x++
	}
	if x < 0 || x >= 3 || y < 0 || y >= 3 {
		return 0, false
	}
	return y*3 + x, true
}

// Board is a 3x3 arrangement of shapes, one of which is the free
// space, plus the cell the ship must reach. Board is a value type:
// moves produce new boards and never mutate the receiver, so boards
// can flow through the search engine as independent states.
type Board struct {
	shapes [9]Shape
	goal   int
}

var _ retrace.State = Board{}

// FreeCell returns the index of the free space. Boards are
// constructed with exactly one free cell, so a missing one is a
// programming error.
func (b Board) FreeCell() int {
	for i, s := range b.shapes {
		if s == Free {
			return i
		}
	}
	panic("tiles: board has no free space")
}

func (b Board) shipCell() int {
	for i, s := range b.shapes {
		if s == Ship {
			return i
		}
	}
	return -1
}

// Move slides the free space one cell in direction d by swapping it
// with the neighboring tile. It reports false when the free space
// already sits on that edge of the board.
func (b Board) Move(d Direction) (Board, bool) {
	free := b.FreeCell()
	target, ok := neighbor(free, d)
	if !ok {
		return Board{}, false
	}
	next := b
	next.shapes[free], next.shapes[target] = next.shapes[target], next.shapes[free]
	return next, true
}

// CollisionFree reports whether no two shapes occupy the same grid
// point. Cells are spaced one grid unit apart while shapes extend up
// to two, so large shapes interlock with their neighbors' space.
//
//	cell (x,y) --> grid origin (x,y); shape points are added on top.
func (b Board) CollisionFree() bool {
	occupied := map[Point]struct{}{}
	for i, s := range b.shapes {
		for _, p := range s.points() {
			grid := Point{X: p.X + cellX(i), Y: p.Y + cellY(i)}
			if _, taken := occupied[grid]; taken {
				return false
			}
			occupied[grid] = struct{}{}
		}
	}
	return true
}

// Valid reports whether the board has exactly one free space and no
// colliding shapes.
func (b Board) Valid() bool {
	freeCount := 0
	for _, s := range b.shapes {
		if s == Free {
			freeCount++
		}
	}
	return freeCount == 1 && b.CollisionFree()
}

// Identifier is the board's shape string, row by row. Boards with
// the same arrangement are the same state regardless of how they
// were reached.
func (b Board) Identifier() retrace.Identifier {
	var sb strings.Builder
	for _, s := range b.shapes {
		sb.WriteRune(s.rune())
	}
	return retrace.Identifier(sb.String())
}

// Terminal reports whether the ship has reached the goal cell.
func (b Board) Terminal() bool {
	return b.shipCell() == b.goal
}

// Successors returns the boards reachable by sliding the free space
// up, down, left or right.
func (b Board) Successors() []retrace.State {
	successors := make([]retrace.State, 0, len(directions))
	for _, d := range directions {
		if next, ok := b.Move(d); ok {
			successors = append(successors, next)
		}
	}
	return successors
}

// String renders the board as an 8x8 character grid in a frame.
// Each cell is drawn two grid units apart, so neighboring shapes can
// interleave visually just as they do in the collision grid.
func (b Board) String() string {
	buffer := make([]rune, 8*8)
	for i := range buffer {
		buffer[i] = ' '
	}
	for i, s := range b.shapes {
		for _, p := range s.drawingPoints() {
			x := p.X + 1 + 2*cellX(i)
			y := p.Y + 1 + 2*cellY(i)
			buffer[x+8*y] = s.rune()
		}
	}

	var sb strings.Builder
	sb.WriteString("+--------+\n")
	for y := 0; y < 8; y++ {
		sb.WriteRune('|')
		for x := 0; x < 8; x++ {
			sb.WriteRune(buffer[x+8*y])
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+--------+\n")
	return sb.String()
}
