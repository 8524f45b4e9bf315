package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse the course catalog",
	Long: `Browse the locally cached course catalog.

The catalog is served from the local cache; use 'courses sync' to pull
the latest from the server. A failed sync never touches the cache.`,
	RunE: runCoursesList,
}

var coursesSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the course catalog from the server",
	Args:  cobra.NoArgs,
	RunE:  runCoursesSync,
}

var coursesInfoCmd = &cobra.Command{
	Use:   "info <course-id>",
	Short: "Show a course with its materials",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoursesInfo,
}

var coursesFilter string

func init() {
	coursesCmd.Flags().StringVarP(&coursesFilter, "filter", "f", "", "filter by title or author")
	coursesCmd.AddCommand(coursesSyncCmd)
	coursesCmd.AddCommand(coursesInfoCmd)
}

func runCoursesList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("courses", err)
	}
	defer e.close()

	courses, err := e.courses.List()
	if err != nil {
		return trackCLIError("courses", fmt.Errorf("list courses: %w", err))
	}

	if coursesFilter != "" {
		q := strings.ToLower(coursesFilter)
		kept := courses[:0]
		for _, c := range courses {
			if strings.Contains(strings.ToLower(c.Title), q) ||
				strings.Contains(strings.ToLower(c.AuthorName), q) {
				kept = append(kept, c)
			}
		}
		courses = kept
	}

	if len(courses) == 0 {
		fmt.Println("No courses cached yet.")
		fmt.Println("\nUse 'wastra courses sync' to fetch the catalog.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Printf("%s (%d courses)\n", headerStyle.Render("COURSE CATALOG"), len(courses))
	fmt.Println(strings.Repeat("─", 50))

	for _, c := range courses {
		fmt.Printf("  #%d %s\n", c.ID, c.Title)
		fmt.Printf("     by %s\n", c.AuthorName)
	}
	return nil
}

func runCoursesSync(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("sync", err)
	}
	defer e.close()

	start := time.Now()
	if err := e.courses.Sync(cmd.Context()); err != nil {
		telemetryClient.TrackSyncFailed("courses", classifyError(err))
		return trackCLIError("sync", err)
	}

	courses, err := e.courses.List()
	if err != nil {
		return trackCLIError("sync", err)
	}
	telemetryClient.TrackSyncCompleted("courses", len(courses), time.Since(start).Milliseconds())

	fmt.Printf("Synced %d courses.\n", len(courses))
	return nil
}

func runCoursesInfo(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid course id %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("info", err)
	}
	defer e.close()

	course, err := e.courses.Get(id)
	if err != nil {
		return trackCLIError("info", err)
	}
	if course == nil {
		fmt.Printf("Course %d is not cached. Try 'wastra courses sync' first.\n", id)
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(titleStyle.Render(course.Title))
	fmt.Printf("by %s\n\n", course.AuthorName)
	fmt.Println(renderMarkdown(course.Description))

	materials, err := e.materials.List(id)
	if err != nil {
		return trackCLIError("info", err)
	}
	if len(materials) == 0 {
		fmt.Printf("\nNo materials cached. Use 'wastra materials %d --sync'.\n", id)
		return nil
	}

	fmt.Printf("\nMATERIALS (%d)\n", len(materials))
	for i, m := range materials {
		fmt.Printf("  %2d. %s (%d min)\n", i+1, m.Title, m.DurationMinutes)
	}
	return nil
}

// renderMarkdown renders markdown for terminal display, falling back to the
// raw text if rendering fails.
func renderMarkdown(content string) string {
	if content == "" {
		return ""
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
