package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/db"
	"github.com/wastra-labs/wastra/internal/models"
)

// CacheTTL is how long the forum cache is served without a network call.
// The feed is read far more often than it changes, and the fetch (a JSON
// list with nested reply data) is comparatively expensive.
const CacheTTL = 5 * time.Minute

// Forum caches the question feed with a time-based freshness gate and a
// stale-fallback path: when a fetch fails and an expired cache exists, the
// cache is returned as a successful result so the feed stays populated while
// the device is offline.
type Forum struct {
	store  *db.DB
	client *api.Client

	now func() time.Time
}

// NewForum creates the forum repository.
func NewForum(store *db.DB, client *api.Client) *Forum {
	return &Forum{store: store, client: client, now: time.Now}
}

// Feed is the result of a forum read: the questions plus whether they came
// from an expired cache after a failed fetch.
type Feed struct {
	Questions []api.Question
	Stale     bool
}

// Questions returns the forum feed. A non-empty cache younger than CacheTTL
// is served without any network call; otherwise the feed is fetched and the
// cache replaced. The first row's CachedAt stands in for the whole batch,
// which holds because ReplaceQuestions writes every row with one timestamp.
func (r *Forum) Questions(ctx context.Context) (*Feed, error) {
	cached, err := r.store.ListQuestions()
	if err != nil {
		return nil, fmt.Errorf("read forum cache: %w", err)
	}

	if len(cached) > 0 && r.now().Sub(cached[0].CachedAt) < CacheTTL {
		return &Feed{Questions: questionsToWire(cached)}, nil
	}

	return r.fetchAndCache(ctx)
}

// Refresh bypasses the freshness gate and always hits the network; the
// explicit escape hatch behind pull-to-refresh.
func (r *Forum) Refresh(ctx context.Context) (*Feed, error) {
	return r.fetchAndCache(ctx)
}

// fetchAndCache fetches the feed, replaces the cache wholesale on success,
// and on failure falls back to whatever (known-stale) cache exists. An empty
// cache propagates the original fetch error, including api.ErrAuthExpired
// so the caller can prompt a re-login.
func (r *Forum) fetchAndCache(ctx context.Context) (*Feed, error) {
	questions, err := r.client.Questions(ctx)
	if err != nil {
		stale, readErr := r.store.ListQuestions()
		if readErr == nil && len(stale) > 0 {
			return &Feed{Questions: questionsToWire(stale), Stale: true}, nil
		}
		return nil, fmt.Errorf("fetch forum feed: %w", err)
	}

	cachedAt := r.now()
	rows := make([]models.Question, len(questions))
	for i, q := range questions {
		rows[i] = questionToRow(q, cachedAt)
	}
	if err := r.store.ReplaceQuestions(rows); err != nil {
		return nil, fmt.Errorf("cache forum feed: %w", err)
	}

	return &Feed{Questions: questions}, nil
}

// Delete removes a question remotely, then locally, and returns the server's
// confirmation message. On remote failure the cached row is preserved.
func (r *Forum) Delete(ctx context.Context, id int) (string, error) {
	result, err := r.client.DeleteQuestion(ctx, id)
	if err != nil {
		return "", fmt.Errorf("delete question %d: %w", id, err)
	}
	if err := r.store.DeleteQuestion(id); err != nil {
		return "", fmt.Errorf("remove cached question %d: %w", id, err)
	}
	return result.Message, nil
}

// Get returns one cached question, or nil if absent.
func (r *Forum) Get(id int) (*api.Question, error) {
	row, err := r.store.GetQuestion(id)
	if err != nil || row == nil {
		return nil, err
	}
	q := questionToWire(*row)
	return &q, nil
}

// ObserveAll returns a live subscription over the cached feed.
func (r *Forum) ObserveAll() *db.Subscription[models.Question] {
	return r.store.ObserveQuestions()
}
