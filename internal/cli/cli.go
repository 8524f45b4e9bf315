// Package cli provides the command-line interface for Wastra.
package cli

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/telemetry"
	"github.com/wastra-labs/wastra/pkg/version"
)

var telemetryClient telemetry.Client

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "wastra",
	Short: "Crafts marketplace client",
	Long: `Wastra - crafts marketplace and community client

An offline-first terminal client for the Wastra crafts community:
browse the course catalog, your gallery and the forum even when the
network is flaky. Everything you see is cached locally and refreshed
on demand.

Run without arguments to launch the interactive TUI.

Telemetry:
  Telemetry is anonymous and will never include personal data or the
  content of your courses, karya, or questions.

  Opt-out with:
  	WASTRA_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE:         runTUI,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cmd.Name() != "wastra" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(karyaCmd)
	rootCmd.AddCommand(forumCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New()
	}
	telemetryClient = tc

	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	telemetryClient.TrackCLIError(cmdName, classifyError(err))
	return err
}

// classifyError buckets an error into a coarse, anonymous category.
func classifyError(err error) string {
	switch {
	case errors.Is(err, api.ErrAuthExpired):
		return "auth_expired"
	case api.IsTransport(err):
		return "transport"
	default:
		var serr *api.ServerError
		if errors.As(err, &serr) {
			return "server"
		}
		return "other"
	}
}
