// Package cli hosts the cobra command tree and the shared handler registry
// the subcommand packages pull from.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger *slog.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trackfire",
	Short: "Trackfire - local habit and wellness tracker",
	Long: `Trackfire tracks recurring habits, one-off tasks, and daily wellness
numbers in a local database, and rolls every week up into a graded summary.

All data stays on this machine.`,
}

// Execute runs the root command. The context reaches every subcommand and
// cancels long-running ones like the daemon.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
