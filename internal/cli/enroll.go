package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wastra-labs/wastra/internal/models"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Show your course enrollments and progress",
	RunE:  runEnrollList,
}

var enrollSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh your enrollments from the server",
	Args:  cobra.NoArgs,
	RunE:  runEnrollSync,
}

func init() {
	enrollCmd.AddCommand(enrollSyncCmd)
}

func runEnrollList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("enroll", err)
	}
	defer e.close()

	userID, err := e.requireUserID()
	if err != nil {
		return trackCLIError("enroll", err)
	}

	enrollments, err := e.enrollments.List(userID)
	if err != nil {
		return trackCLIError("enroll", fmt.Errorf("list enrollments: %w", err))
	}

	if len(enrollments) == 0 {
		fmt.Println("No enrollments cached.")
		fmt.Println("\nUse 'wastra enroll sync' to fetch them.")
		return nil
	}

	completed := 0
	for _, en := range enrollments {
		if en.Status == models.EnrollmentCompleted || en.Progress >= 100 {
			completed++
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Printf("%s (%d enrolled, %d completed)\n",
		headerStyle.Render("MY COURSES"), len(enrollments), completed)
	fmt.Println(strings.Repeat("─", 50))

	for _, en := range enrollments {
		course, err := e.courses.Get(en.CourseID)
		title := fmt.Sprintf("course %d", en.CourseID)
		if err == nil && course != nil {
			title = course.Title
		}
		fmt.Printf("  %s\n", title)
		fmt.Printf("    %s %d%% · %s\n", progressBar(en.Progress), en.Progress, en.Status)
	}
	return nil
}

func runEnrollSync(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("sync", err)
	}
	defer e.close()

	userID, err := e.requireUserID()
	if err != nil {
		return trackCLIError("sync", err)
	}

	start := time.Now()
	if err := e.enrollments.Sync(cmd.Context(), userID); err != nil {
		telemetryClient.TrackSyncFailed("enrollments", classifyError(err))
		return trackCLIError("sync", err)
	}

	enrollments, err := e.enrollments.List(userID)
	if err != nil {
		return trackCLIError("sync", err)
	}
	telemetryClient.TrackSyncCompleted("enrollments", len(enrollments), time.Since(start).Milliseconds())

	fmt.Printf("Synced %d enrollments.\n", len(enrollments))
	return nil
}

// progressBar renders a ten-segment progress bar.
func progressBar(progress int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := progress / 10
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}
