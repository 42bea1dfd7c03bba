package tiles

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/retrace-framework/retrace/pkg/retrace"
)

// readKey switches the terminal into raw mode for a single
// keystroke, so arrow keys arrive as escape sequences without a
// newline.
func readKey() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("error entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 3)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("error reading keystroke: %w", err)
	}
	return buf[:n], nil
}

// keyDirection decodes an ANSI arrow-key escape sequence.
func keyDirection(key []byte) (Direction, bool) {
	if len(key) != 3 || key[0] != 0x1b || key[1] != '[' {
		return 0, false
	}
	switch key[2] {
	case 'A':
		return Up, true
	case 'B':
		return Down, true
	case 'C':
		return Right, true
	case 'D':
		return Left, true
	}
	return 0, false
}

// play runs the interactive loop: arrow keys slide the free space,
// 's' solves the puzzle from the current position, 'q' quits.
func play(board Board) error {
	fmt.Println(board)
	fmt.Printf("Is valid: %t\n", board.Valid())

	history := []Board{board}

	for {
		current := history[len(history)-1]
		fmt.Printf("Move %d; arrow keys move the free space, 's' solves, 'q' quits.\n", len(history)-1)

		key, err := readKey()
		if err != nil {
			return err
		}

		if len(key) == 1 {
			switch key[0] {
			case 'q', 0x03: // ctrl-c
				return nil
			case 's':
				if err := solve(current, retrace.Quiet); err != nil {
					return err
				}
				continue
			}
		}

		direction, ok := keyDirection(key)
		if !ok {
			fmt.Println("Use the arrow keys to move the free space.")
			continue
		}

		next, ok := current.Move(direction)
		if !ok {
			fmt.Println("invalid move.")
			continue
		}
		fmt.Println(next)
		history = append(history, next)
		if next.Terminal() {
			fmt.Println("The ship has reached the goal!")
		}
	}
}
