package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-arcade/internal/treehouse"
)

var treehouseCmd = &cobra.Command{
	Use:   "treehouse",
	Short: "Greet visitors at the treehouse door",
	Long: `Ask each visitor for their name and greet them according to the
visitor list. Unknown visitors are admitted on probation. Enter an empty
name to close the door and print the final visitor list.`,
	Args: cobra.NoArgs,
	Run:  runTreehouse,
}

func runTreehouse(cmd *cobra.Command, _ []string) {
	logger, closer, err := newLogger("treehouse")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	session := treehouse.NewSession(treehouse.DefaultRoster(), logger)
	if err := session.Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
