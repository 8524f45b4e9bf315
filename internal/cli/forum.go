package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/repo"
)

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "Read the community forum feed",
	Long: `Read the community forum feed.

The feed is served from the local cache while it is younger than five
minutes; older caches are refreshed from the server automatically. When
the network is down, the last cached feed is shown instead of an error.`,
	RunE: runForumFeed,
}

var forumRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force-refresh the forum feed",
	Args:  cobra.NoArgs,
	RunE:  runForumRefresh,
}

var forumShowCmd = &cobra.Command{
	Use:   "show <question-id>",
	Short: "Show a cached question in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runForumShow,
}

var forumDeleteCmd = &cobra.Command{
	Use:   "delete <question-id>",
	Short: "Delete one of your questions",
	Args:  cobra.ExactArgs(1),
	RunE:  runForumDelete,
}

var forumUnanswered bool

func init() {
	forumCmd.Flags().BoolVar(&forumUnanswered, "unanswered", false, "show only unanswered questions")
	forumCmd.AddCommand(forumRefreshCmd)
	forumCmd.AddCommand(forumShowCmd)
	forumCmd.AddCommand(forumDeleteCmd)
}

func runForumFeed(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("forum", err)
	}
	defer e.close()

	feed, err := e.forum.Questions(cmd.Context())
	return showFeed(feed, trackCLIError("forum", forumError(err)))
}

func runForumRefresh(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("refresh", err)
	}
	defer e.close()

	start := time.Now()
	feed, err := e.forum.Refresh(cmd.Context())
	if err == nil && !feed.Stale {
		telemetryClient.TrackSyncCompleted("forum", len(feed.Questions), time.Since(start).Milliseconds())
	}
	return showFeed(feed, trackCLIError("refresh", forumError(err)))
}

// forumError rewrites the auth-expired sentinel into an actionable message.
func forumError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrAuthExpired) {
		return fmt.Errorf("your session has expired; set a fresh WASTRA_TOKEN and try again")
	}
	return err
}

func showFeed(feed *repo.Feed, err error) error {
	if err != nil {
		return err
	}

	questions := feed.Questions
	if forumUnanswered {
		kept := questions[:0]
		for _, q := range questions {
			if q.ReplyCount == 0 {
				kept = append(kept, q)
			}
		}
		questions = kept
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	header := fmt.Sprintf("FORUM (%d questions)", len(questions))
	if feed.Stale {
		header += " — offline, showing cached feed"
		telemetryClient.TrackStaleFallbackServed(len(questions))
	}
	fmt.Println(headerStyle.Render(header))
	fmt.Println(strings.Repeat("─", 50))

	if len(questions) == 0 {
		fmt.Println("Nothing here yet.")
		return nil
	}

	for _, q := range questions {
		body := truncate(q.Body, 70)
		fmt.Printf("  #%d @%s · %d replies\n", q.ID, q.AuthorHandle, q.ReplyCount)
		fmt.Printf("     %s\n", body)
		if n := len(q.Images); n > 0 {
			fmt.Printf("     (%d images)\n", n)
		}
	}
	return nil
}

// truncate shortens s to at most max runes, never splitting a multi-byte
// character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func runForumShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid question id %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("show", err)
	}
	defer e.close()

	q, err := e.forum.Get(id)
	if err != nil {
		return trackCLIError("show", err)
	}
	if q == nil {
		fmt.Printf("Question %d is not cached. Try 'wastra forum refresh' first.\n", id)
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(headerStyle.Render(fmt.Sprintf("@%s (%s)", q.AuthorHandle, q.AuthorName)))
	fmt.Printf("asked %s · %d replies\n\n", q.CreatedAt.Format("2 Jan 2006"), q.ReplyCount)
	fmt.Println(renderMarkdown(q.Body))
	for _, img := range q.Images {
		fmt.Printf("  image: %s\n", img)
	}
	return nil
}

func runForumDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid question id %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("delete", err)
	}
	defer e.close()

	msg, err := e.forum.Delete(cmd.Context(), id)
	if err != nil {
		telemetryClient.TrackDeletePerformed("forum", false)
		return trackCLIError("delete", forumError(err))
	}
	telemetryClient.TrackDeletePerformed("forum", true)

	if msg == "" {
		msg = fmt.Sprintf("Question %d deleted.", id)
	}
	fmt.Println(msg)
	return nil
}
