package counter

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrace-framework/retrace/pkg/retrace"
	"github.com/retrace-framework/retrace/pkg/retrace/solver"
)

func NewCounterCommand() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Runs the counting demos of the search engine",
		Long: `Runs two small demonstrations of the search engine:
a counter that counts up by one until it reaches 7, and a bounded
counter that counts up by one or two until it reaches 4.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity, err := retrace.ParseVerbosity(level)
			if err != nil {
				return err
			}
			return demo(verbosity)
		},
	}
	cmd.Flags().StringVar(&level, "level", retrace.Trace.String(), "diagnostic level (quiet, info or trace)")

	return cmd
}

func demo(verbosity retrace.Verbosity) error {
	s, err := solver.New(solver.WithVerbosity(verbosity))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Demo example 1")
	printPath(s.Solve(Counter{Value: 1, Target: 7}))

	fmt.Println()
	fmt.Println("Demo example 2")
	printPath(s.Solve(JumpingCounter{Value: 1, Target: 4, Limit: 10}))

	return nil
}

func printPath(path []retrace.State, err error) {
	if err != nil {
		fmt.Printf("no path found: %s\n", err)
		return
	}
	for _, state := range path {
		fmt.Println(state.Identifier())
	}
}
