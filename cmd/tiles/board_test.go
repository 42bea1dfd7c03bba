package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrace-framework/retrace/pkg/retrace"
	"github.com/retrace-framework/retrace/pkg/retrace/solver"
)

func mustBoard(t *testing.T, cells string, goal int) Board {
	t.Helper()
	board, err := Layout{Name: "test", Cells: cells, Goal: goal}.Board()
	require.NoError(t, err)
	return board
}

func TestNeighbor(t *testing.T) {
	type tc struct {
		Name      string
		Index     int
		Direction Direction
		Neighbor  int
		OK        bool
	}

	for _, tt := range []tc{
		{Name: "center up", Index: 4, Direction: Up, Neighbor: 1, OK: true},
		{Name: "center down", Index: 4, Direction: Down, Neighbor: 7, OK: true},
		{Name: "center left", Index: 4, Direction: Left, Neighbor: 3, OK: true},
		{Name: "center right", Index: 4, Direction: Right, Neighbor: 5, OK: true},
		{Name: "top edge up", Index: 1, Direction: Up, OK: false},
		{Name: "bottom edge down", Index: 7, Direction: Down, OK: false},
		{Name: "left edge left", Index: 3, Direction: Left, OK: false},
		{Name: "right edge right", Index: 5, Direction: Right, OK: false},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			got, ok := neighbor(tt.Index, tt.Direction)
			assert.Equal(t, tt.OK, ok)
			if tt.OK {
				assert.Equal(t, tt.Neighbor, got)
			}
		})
	}
}

func TestMoveSwapsFreeSpace(t *testing.T) {
	board := mustBoard(t, "oxXYxxVxx", 2)
	require.Equal(t, 0, board.FreeCell())

	moved, ok := board.Move(Right)
	require.True(t, ok)
	assert.Equal(t, 1, moved.FreeCell())
	assert.Equal(t, retrace.Identifier("xoXYxxVxx"), moved.Identifier())

	// the original board is untouched
	assert.Equal(t, retrace.Identifier("oxXYxxVxx"), board.Identifier())

	_, ok = board.Move(Up)
	assert.False(t, ok, "free space is already on the top edge")
	_, ok = board.Move(Left)
	assert.False(t, ok, "free space is already on the left edge")
}

func TestSuccessorsFollowDirectionOrder(t *testing.T) {
	// Free space in the center: all four moves are possible, offered
	// in up, down, left, right order.
	board := mustBoard(t, "xxxxoxVxx", 2)
	successors := board.Successors()
	require.Len(t, successors, 4)
	assert.Equal(t, 1, successors[0].(Board).FreeCell())
	assert.Equal(t, 7, successors[1].(Board).FreeCell())
	assert.Equal(t, 3, successors[2].(Board).FreeCell())
	assert.Equal(t, 5, successors[3].(Board).FreeCell())

	// Free space in a corner: only two moves remain.
	corner := mustBoard(t, "oxxxxxVxx", 2)
	assert.Len(t, corner.Successors(), 2)
}

func TestTerminal(t *testing.T) {
	assert.False(t, mustBoard(t, "oxXYxxVxx", 2).Terminal())
	assert.True(t, mustBoard(t, "oxVYxxxxx", 2).Terminal())
}

func TestCollisionFree(t *testing.T) {
	// Single-point tiles around an isolated ship do not overlap.
	assert.True(t, mustBoard(t, "xxxxxxxoV", 8).CollisionFree())

	// An M3 spills into its right-hand neighbor's cell origin.
	assert.False(t, mustBoard(t, "oxxYxxxxV", 8).CollisionFree())

	// The demo board has one free space but interlocking shapes, so
	// it fails the collision diagnostic.
	board, err := DefaultLayout().Board()
	require.NoError(t, err)
	assert.False(t, board.Valid())
}

func TestBoardString(t *testing.T) {
	board := mustBoard(t, "oxxxxxxxV", 8)
	expected := "+--------+\n" +
		"|        |\n" +
		"| oox x  |\n" +
		"| oo     |\n" +
		"| x x x  |\n" +
		"|        |\n" +
		"| x xVVVV|\n" +
		"|     VV |\n" +
		"|        |\n" +
		"+--------+\n"
	assert.Equal(t, expected, board.String())
}

func TestSolveDefaultLayout(t *testing.T) {
	board, err := DefaultLayout().Board()
	require.NoError(t, err)

	s, err := solver.New()
	require.NoError(t, err)

	path, err := s.Solve(board)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, board.Identifier(), path[0].Identifier())
	assert.True(t, path[len(path)-1].(Board).Terminal())

	// every step is a legal slide of the free space
	for i := 0; i+1 < len(path); i++ {
		found := false
		for _, successor := range path[i].Successors() {
			if successor.Identifier() == path[i+1].Identifier() {
				found = true
				break
			}
		}
		assert.Truef(t, found, "step %d is not a legal move", i+1)
	}
}
