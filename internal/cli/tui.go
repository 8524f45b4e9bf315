package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wastra-labs/wastra/internal/config"
	"github.com/wastra-labs/wastra/internal/log"
	"github.com/wastra-labs/wastra/internal/state"
	"github.com/wastra-labs/wastra/internal/tui"
	"github.com/wastra-labs/wastra/pkg/version"
)

// runTUI executes the TUI when no subcommand is specified.
func runTUI(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	paths := config.GetPaths(e.cfg)
	if err := log.Init(paths.Logs); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	// Best-effort version gate; a dead network must not block the TUI.
	if meta, err := e.client.GetMeta(cmd.Context()); err == nil {
		if !version.MeetsMinimum(meta.MinClientVersion) {
			log.Errorf("this build (%s) is older than the server minimum (%s); please update",
				version.Short(), meta.MinClientVersion)
		}
	}

	telemetryClient.TrackAppStarted("tui")
	sessionStart := time.Now()

	courses := state.NewCourseList(e.courses)
	forum := state.NewForumFeed(e.forum)
	gallery := state.NewGalleryView(e.gallery, 0)

	model := tui.New(cmd.Context(), courses, forum, gallery)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}

	telemetryClient.TrackAppExited("tui", time.Since(sessionStart).Milliseconds())
	return nil
}
