package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var karyaCmd = &cobra.Command{
	Use:   "karya",
	Short: "Browse the karya gallery",
	Long: `Browse the locally cached karya gallery.

Without flags the public gallery is shown; --mine scopes the list to
your own uploads. Use 'karya sync' to refresh from the server.`,
	RunE: runKaryaList,
}

var karyaSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the gallery from the server",
	Args:  cobra.NoArgs,
	RunE:  runKaryaSync,
}

var karyaDeleteCmd = &cobra.Command{
	Use:   "delete <karya-id>",
	Short: "Delete one of your karya",
	Long: `Delete a karya on the server, then locally.

The cached copy is only removed after the server confirms the delete;
a failed request leaves the gallery untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runKaryaDelete,
}

var karyaLinkCmd = &cobra.Command{
	Use:   "link <karya-id>",
	Short: "Print the share link for a karya",
	Args:  cobra.ExactArgs(1),
	RunE:  runKaryaLink,
}

var (
	karyaMine bool
	karyaCopy bool
)

func init() {
	karyaCmd.Flags().BoolVar(&karyaMine, "mine", false, "show only your own karya")
	karyaSyncCmd.Flags().BoolVar(&karyaMine, "mine", false, "sync only your own karya")
	karyaLinkCmd.Flags().BoolVarP(&karyaCopy, "copy", "c", false, "copy the link to the clipboard")
	karyaCmd.AddCommand(karyaSyncCmd)
	karyaCmd.AddCommand(karyaDeleteCmd)
	karyaCmd.AddCommand(karyaLinkCmd)
}

func runKaryaList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("karya", err)
	}
	defer e.close()

	items, err := e.gallery.List()
	if karyaMine {
		var userID int
		if userID, err = e.requireUserID(); err == nil {
			items, err = e.gallery.ListByOwner(userID)
		}
	}
	if err != nil {
		return trackCLIError("karya", fmt.Errorf("list karya: %w", err))
	}

	if len(items) == 0 {
		fmt.Println("No karya cached yet.")
		fmt.Println("\nUse 'wastra karya sync' to fetch the gallery.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	scope := "GALLERY"
	if karyaMine {
		scope = "MY KARYA"
	}
	fmt.Printf("%s (%d items)\n", headerStyle.Render(scope), len(items))
	fmt.Println(strings.Repeat("─", 50))

	for _, k := range items {
		fmt.Printf("  #%d %s\n", k.ID, k.Title)
		fmt.Printf("     by %s · %d views · %d likes\n", k.UploaderName, k.ViewCount, k.LikeCount)
	}
	return nil
}

func runKaryaSync(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return trackCLIError("sync", err)
	}
	defer e.close()

	start := time.Now()
	if karyaMine {
		userID, err := e.requireUserID()
		if err != nil {
			return trackCLIError("sync", err)
		}
		err = e.gallery.SyncByOwner(cmd.Context(), userID)
		if err != nil {
			telemetryClient.TrackSyncFailed("karya", classifyError(err))
			return trackCLIError("sync", err)
		}
	} else if err := e.gallery.SyncAll(cmd.Context()); err != nil {
		telemetryClient.TrackSyncFailed("karya", classifyError(err))
		return trackCLIError("sync", err)
	}

	items, err := e.gallery.List()
	if err != nil {
		return trackCLIError("sync", err)
	}
	telemetryClient.TrackSyncCompleted("karya", len(items), time.Since(start).Milliseconds())

	fmt.Printf("Synced gallery, %d items cached.\n", len(items))
	return nil
}

func runKaryaDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid karya id %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("delete", err)
	}
	defer e.close()

	msg, err := e.gallery.Delete(cmd.Context(), id)
	if err != nil {
		telemetryClient.TrackDeletePerformed("karya", false)
		return trackCLIError("delete", err)
	}
	telemetryClient.TrackDeletePerformed("karya", true)

	if msg == "" {
		msg = fmt.Sprintf("Karya %d deleted.", id)
	}
	fmt.Println(msg)
	return nil
}

func runKaryaLink(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid karya id %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return trackCLIError("link", err)
	}
	defer e.close()

	item, err := e.gallery.Get(id)
	if err != nil {
		return trackCLIError("link", err)
	}
	if item == nil {
		fmt.Printf("Karya %d is not cached. Try 'wastra karya sync' first.\n", id)
		return nil
	}

	url := item.ShareURL(e.cfg.API.WebURL)
	fmt.Println(url)

	if karyaCopy {
		if err := clipboard.WriteAll(url); err != nil {
			fmt.Println("(could not copy to clipboard)")
		} else {
			fmt.Println("Copied to clipboard.")
		}
	}
	return nil
}
