package state

import (
	"context"
	"sync"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/repo"
)

// ForumFeed is the derived state behind the forum screen. Its snapshot is
// tri-state: fresh data, stale-but-usable data, or a failure with nothing to
// show.
type ForumFeed struct {
	forum *repo.Forum

	mu        sync.Mutex
	status    Status
	stale     bool
	err       error
	questions []api.Question
}

// NewForumFeed creates the forum controller.
func NewForumFeed(forum *repo.Forum) *ForumFeed {
	return &ForumFeed{forum: forum}
}

// Load reads the feed through the TTL gate: cache when fresh, network
// otherwise, stale fallback when the network fails.
func (f *ForumFeed) Load(ctx context.Context) error {
	return f.run(func() (*repo.Feed, error) { return f.forum.Questions(ctx) })
}

// Refresh always hits the network (pull-to-refresh).
func (f *ForumFeed) Refresh(ctx context.Context) error {
	return f.run(func() (*repo.Feed, error) { return f.forum.Refresh(ctx) })
}

func (f *ForumFeed) run(fetch func() (*repo.Feed, error)) error {
	f.mu.Lock()
	f.status = StatusLoading
	f.mu.Unlock()

	feed, err := fetch()

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusFailed
		f.err = err
		return err
	}
	f.questions = feed.Questions
	f.stale = feed.Stale
	f.status = StatusReady
	f.err = nil
	return nil
}

// Delete removes a question remotely and locally, then drops it from the
// snapshot. Returns the server's confirmation message.
func (f *ForumFeed) Delete(ctx context.Context, id int) (string, error) {
	msg, err := f.forum.Delete(ctx, id)
	if err != nil {
		return "", err
	}

	// Filter into a fresh slice: snapshots already handed out share the old
	// backing array and must not be rewritten underneath their readers.
	f.mu.Lock()
	kept := make([]api.Question, 0, len(f.questions))
	for _, q := range f.questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	f.questions = kept
	f.mu.Unlock()
	return msg, nil
}

// Snapshot returns the latest feed, whether it is stale, the status, and the
// last error.
func (f *ForumFeed) Snapshot() ([]api.Question, bool, Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.questions, f.stale, f.status, f.err
}

// Answered returns snapshot questions with at least one reply.
func (f *ForumFeed) Answered() []api.Question {
	return f.filter(func(q api.Question) bool { return q.ReplyCount > 0 })
}

// Unanswered returns snapshot questions with no replies.
func (f *ForumFeed) Unanswered() []api.Question {
	return f.filter(func(q api.Question) bool { return q.ReplyCount == 0 })
}

// ByAuthor returns snapshot questions asked by one user.
func (f *ForumFeed) ByAuthor(userID int) []api.Question {
	return f.filter(func(q api.Question) bool { return q.UserID == userID })
}

// Counts returns (total, answered, unanswered) for the snapshot.
func (f *ForumFeed) Counts() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	answered := 0
	for _, q := range f.questions {
		if q.ReplyCount > 0 {
			answered++
		}
	}
	return len(f.questions), answered, len(f.questions) - answered
}

func (f *ForumFeed) filter(keep func(api.Question) bool) []api.Question {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []api.Question
	for _, q := range f.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
