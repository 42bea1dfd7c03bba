package tiles

import (
	"encoding/json"
	"fmt"
	"os"
)

// Layout describes a starting board in a loadable form: the nine
// shape runes row by row, and the cell the ship must reach.
type Layout struct {
	Name  string `json:"name"`
	Cells string `json:"cells"`
	Goal  int    `json:"goal"`
}

// DefaultLayout is the built-in demo board: the ship sits in the
// bottom-left corner and must reach the top-right one.
func DefaultLayout() Layout {
	return Layout{
		Name:  "shipyard",
		Cells: "oxXYxxVxx",
		Goal:  2,
	}
}

// LoadLayout reads a layout from a JSON file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("error reading layout file (%s): %w", path, err)
	}
	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("error parsing layout file (%s): %w", path, err)
	}
	return layout, nil
}

// Board validates the layout and builds its starting board.
func (l Layout) Board() (Board, error) {
	if len([]rune(l.Cells)) != 9 {
		return Board{}, fmt.Errorf("layout must have exactly 9 cells, got %d", len([]rune(l.Cells)))
	}
	if l.Goal < 0 || l.Goal > 8 {
		return Board{}, fmt.Errorf("goal cell %d is outside the board", l.Goal)
	}

	board := Board{goal: l.Goal}
	freeCount, shipCount := 0, 0
	for i, r := range []rune(l.Cells) {
		switch r {
		case 'o':
			board.shapes[i] = Free
			freeCount++
		case 'x':
			board.shapes[i] = M1
		case 'X':
			board.shapes[i] = M2
		case 'Y':
			board.shapes[i] = M3
		case 'V':
			board.shapes[i] = Ship
			shipCount++
		default:
			return Board{}, fmt.Errorf("unknown shape %q in layout cell %d", r, i)
		}
	}
	if freeCount != 1 {
		return Board{}, fmt.Errorf("layout must have exactly one free space, got %d", freeCount)
	}
	if shipCount != 1 {
		return Board{}, fmt.Errorf("layout must have exactly one ship, got %d", shipCount)
	}
	return board, nil
}
