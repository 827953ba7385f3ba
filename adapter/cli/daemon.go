package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the maintenance daemon",
	Long: `Stay running and re-run the nightly maintenance pass shortly after
each midnight: materialize the new week, roll over overdue one-off tasks,
and close out the previous week's summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()

		if err := app.Maintenance.Start(cmd.Context()); err != nil {
			return fmt.Errorf("failed to start maintenance daemon: %w", err)
		}
		defer app.Maintenance.Stop()

		logger.Info("maintenance daemon running, press Ctrl+C to stop")
		<-cmd.Context().Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}
