// Package tui implements the interactive feed browser. It is a thin
// presentation layer over the view-state controllers in internal/state;
// every key press maps to a controller call and a re-render of the latest
// snapshot.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wastra-labs/wastra/internal/state"
)

// Tab identifies the visible resource family.
type Tab int

const (
	TabCourses Tab = iota
	TabForum
	TabGallery
)

var tabNames = []string{"Courses", "Forum", "Gallery"}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx context.Context

	courses *state.CourseList
	forum   *state.ForumFeed
	gallery *state.GalleryView

	tab      Tab
	cursor   int
	width    int
	height   int
	loading  bool
	spinner  spinner.Model
	errMsg   string
	quitting bool
}

// loadedMsg reports a finished controller call for one tab.
type loadedMsg struct {
	tab Tab
	err error
}

// New creates the TUI model over the three controllers.
func New(ctx context.Context, courses *state.CourseList, forum *state.ForumFeed, gallery *state.GalleryView) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		ctx:     ctx,
		courses: courses,
		forum:   forum,
		gallery: gallery,
		spinner: sp,
	}
}

// Init loads the first tab.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load(TabCourses, false))
}

// load runs the controller call for a tab off the UI goroutine.
func (m Model) load(tab Tab, refresh bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch tab {
		case TabCourses:
			if refresh {
				err = m.courses.Refresh(m.ctx)
			} else {
				err = m.courses.Load(m.ctx)
			}
		case TabForum:
			if refresh {
				err = m.forum.Refresh(m.ctx)
			} else {
				err = m.forum.Load(m.ctx)
			}
		case TabGallery:
			if refresh {
				err = m.gallery.Refresh(m.ctx)
			} else {
				err = m.gallery.Load(m.ctx)
			}
		}
		return loadedMsg{tab: tab, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		if msg.tab != m.tab {
			return m, nil
		}
		m.loading = false
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		if m.cursor >= m.rowCount() {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "tab", "right", "l":
			m.tab = (m.tab + 1) % 3
			m.cursor = 0
			m.loading = true
			return m, m.load(m.tab, false)

		case "shift+tab", "left", "h":
			m.tab = (m.tab + 2) % 3
			m.cursor = 0
			m.loading = true
			return m, m.load(m.tab, false)

		case "r":
			m.loading = true
			return m, m.load(m.tab, true)

		case "down", "j":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
			return m, nil

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
	}

	return m, nil
}

func (m Model) rowCount() int {
	switch m.tab {
	case TabCourses:
		return m.courses.Count()
	case TabForum:
		total, _, _ := m.forum.Counts()
		return total
	default:
		return m.gallery.Count()
	}
}

// View renders the current tab.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("WASTRA"))
	b.WriteString("  ")
	for i, name := range tabNames {
		style := tabStyle
		if Tab(i) == m.tab {
			style = activeTabStyle
		}
		b.WriteString(style.Render(name))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " loading...\n")
		return b.String()
	}
	if m.errMsg != "" && m.rowCount() == 0 {
		b.WriteString(errorStyle.Render("error: "+m.errMsg) + "\n")
		b.WriteString(helpStyle.Render("r refresh · tab switch · q quit"))
		return b.String()
	}

	switch m.tab {
	case TabCourses:
		m.renderCourses(&b)
	case TabForum:
		m.renderForum(&b)
	case TabGallery:
		m.renderGallery(&b)
	}

	b.WriteString(helpStyle.Render("j/k move · r refresh · tab switch · q quit"))
	return b.String()
}

func (m Model) renderCourses(b *strings.Builder) {
	rows, _, _ := m.courses.Snapshot()
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("No courses cached. Press r to sync.") + "\n")
		return
	}
	for i, c := range rows {
		line := fmt.Sprintf("#%d %s — %s", c.ID, c.Title, c.AuthorName)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
}

func (m Model) renderForum(b *strings.Builder) {
	questions, stale, _, _ := m.forum.Snapshot()
	if stale {
		b.WriteString(staleStyle.Render("offline — showing cached feed") + "\n")
	}
	if len(questions) == 0 {
		b.WriteString(dimStyle.Render("No questions. Press r to refresh.") + "\n")
		return
	}
	for i, q := range questions {
		line := fmt.Sprintf("@%s: %s (%d replies)", q.AuthorHandle, truncate(q.Body, 60), q.ReplyCount)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
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

func (m Model) renderGallery(b *strings.Builder) {
	items, _, _ := m.gallery.Snapshot()
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("No karya cached. Press r to sync.") + "\n")
		return
	}
	for i, k := range items {
		line := fmt.Sprintf("#%d %s — %s (%d ♥)", k.ID, k.Title, k.UploaderName, k.LikeCount)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
}
