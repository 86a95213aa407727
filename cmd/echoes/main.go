// echoes prints a message a number of times, one per line.
//
// Usage:
//
//	echoes <message> [-n times]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "echoes <message>",
		Short: "Repeat a message multiple times",
		Example: `  echoes hello
  echoes hi -n 3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return echo(cmd.OutOrStdout(), args[0], times)
		},
	}
	cmd.Flags().IntVarP(&times, "times", "n", 1, "Number of repetitions")

	return cmd
}

// echo writes message times times. A non-positive count writes nothing.
func echo(w io.Writer, message string, times int) error {
	for i, n := 0, max(times, 0); i < n; i++ {
		if _, err := fmt.Fprintln(w, message); err != nil {
			return err
		}
	}
	return nil
}
