package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var materialsSync bool

var materialsCmd = &cobra.Command{
	Use:   "materials <course-id>",
	Short: "List a course's materials",
	Long: `List the cached materials for a course.

With --sync, the full material set for the course is re-fetched first.
A material removed on the server disappears locally after a sync.`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterials,
}

func init() {
	materialsCmd.Flags().BoolVar(&materialsSync, "sync", false, "fetch the latest materials before listing")
}

func runMaterials(cmd *cobra.Command, args []string) error {
	courseID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid course id %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("materials", err)
	}
	defer e.close()

	start := time.Now()
	if materialsSync {
		if err := e.materials.Sync(cmd.Context(), courseID); err != nil {
			telemetryClient.TrackSyncFailed("materials", classifyError(err))
			return trackCLIError("materials", err)
		}
	}

	materials, err := e.materials.List(courseID)
	if err != nil {
		return trackCLIError("materials", fmt.Errorf("list materials: %w", err))
	}
	if materialsSync {
		telemetryClient.TrackSyncCompleted("materials", len(materials), time.Since(start).Milliseconds())
	}

	if len(materials) == 0 {
		fmt.Printf("No materials cached for course %d.\n", courseID)
		if !materialsSync {
			fmt.Println("\nRe-run with --sync to fetch them.")
		}
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	total := 0
	for _, m := range materials {
		total += m.DurationMinutes
	}
	fmt.Printf("%s (course %d, %d lessons, %d min)\n",
		headerStyle.Render("MATERIALS"), courseID, len(materials), total)
	fmt.Println(strings.Repeat("─", 50))

	for i, m := range materials {
		marker := " "
		if m.VideoURL != nil {
			marker = "▶"
		}
		fmt.Printf("  %2d. %s %s (%d min)\n", i+1, marker, m.Title, m.DurationMinutes)
	}
	return nil
}
