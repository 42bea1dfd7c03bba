package root

import (
	"github.com/spf13/cobra"

	"github.com/retrace-framework/retrace/cmd/counter"

	"github.com/retrace-framework/retrace/cmd/tiles"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "retrace",
		Short: "Retrace is an open-source backtracking search framework",
		Long: `An open-source backtracking state-space search framework written in Go.
For more information visit https://github.com/retrace-framework/retrace`,
	}

	// add sub-commands
	rootCmd.AddCommand(counter.NewCounterCommand())
	rootCmd.AddCommand(tiles.NewTilesCommand())

	return rootCmd
}
