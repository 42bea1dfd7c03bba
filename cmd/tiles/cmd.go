package tiles

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrace-framework/retrace/pkg/retrace"
	"github.com/retrace-framework/retrace/pkg/retrace/solver"
)

func NewTilesCommand() *cobra.Command {
	var layoutPath string

	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "A 3x3 sliding-tile puzzle solved by the search engine",
		Long: `A 3x3 sliding-tile puzzle of interlocking shapes. Sliding the
free space shuffles the tiles; the puzzle is solved when the ship
reaches the goal cell.`,
	}
	cmd.PersistentFlags().StringVar(&layoutPath, "layout", "", "path to a JSON board layout (optional)")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if layoutPath == "" {
			return nil
		}
		if _, err := os.Stat(layoutPath); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("layout file (%s) not found", layoutPath)
		}
		return nil
	}

	var level string
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Finds a sequence of moves bringing the ship to the goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity, err := retrace.ParseVerbosity(level)
			if err != nil {
				return err
			}
			board, err := loadBoard(layoutPath)
			if err != nil {
				return err
			}
			return solve(board, verbosity)
		},
	}
	solveCmd.Flags().StringVar(&level, "level", retrace.Quiet.String(), "diagnostic level (quiet, info or trace)")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Explore the board interactively with the arrow keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(layoutPath)
			if err != nil {
				return err
			}
			return play(board)
		},
	}

	cmd.AddCommand(solveCmd)
	cmd.AddCommand(playCmd)

	return cmd
}

func loadBoard(layoutPath string) (Board, error) {
	layout := DefaultLayout()
	if layoutPath != "" {
		var err error
		layout, err = LoadLayout(layoutPath)
		if err != nil {
			return Board{}, err
		}
	}
	return layout.Board()
}

func solve(board Board, verbosity retrace.Verbosity) error {
	s, err := solver.New(solver.WithVerbosity(verbosity))
	if err != nil {
		return err
	}

	path, err := s.Solve(board)
	if err != nil {
		fmt.Printf("no solution found: %s\n", err)
		return nil
	}

	for i, state := range path {
		fmt.Printf("move %d:\n%s\n", i, state.(Board))
	}
	fmt.Printf("solved in %d moves\n", len(path)-1)
	return nil
}
