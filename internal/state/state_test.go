package state

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/db"
	"github.com/wastra-labs/wastra/internal/models"
	"github.com/wastra-labs/wastra/internal/repo"
)

// fixture holds a store, a fake API, and the controllers under test.
type fixture struct {
	store     *db.DB
	client    *api.Client
	courses   atomic.Pointer[[]api.Course]
	questions atomic.Pointer[[]api.Question]
	karya     atomic.Pointer[[]api.Karya]
	failing   atomic.Bool
	hits      atomic.Int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{}
	f.setCourses(nil)
	f.setQuestions(nil)
	f.setKarya(nil)

	list := func(load func() any) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.hits.Add(1)
			if f.failing.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"data": load()})
		}
	}
	remove := func(w http.ResponseWriter, r *http.Request) {
		if f.failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /courses", list(func() any { return *f.courses.Load() }))
	mux.HandleFunc("GET /forum/questions", list(func() any { return *f.questions.Load() }))
	mux.HandleFunc("GET /karya", list(func() any { return *f.karya.Load() }))
	mux.HandleFunc("DELETE /forum/questions/", remove)
	mux.HandleFunc("DELETE /karya/", remove)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store, err := db.New(db.DefaultConfig(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f.store = store
	f.client = api.NewClient(server.URL, "test-token", 0)
	return f
}

func (f *fixture) setCourses(courses []api.Course) {
	f.courses.Store(&courses)
}

func (f *fixture) setQuestions(questions []api.Question) {
	f.questions.Store(&questions)
}

func (f *fixture) setKarya(karya []api.Karya) {
	f.karya.Store(&karya)
}

func TestCourseList_LoadSyncsOnlyWhenEmpty(t *testing.T) {
	f := newFixture(t)
	f.setCourses([]api.Course{{ID: 1, Title: "Batik Basics"}})
	list := NewCourseList(repo.NewCourses(f.store, f.client))
	ctx := context.Background()

	// Empty cache: the first load syncs.
	require.NoError(t, list.Load(ctx))
	assert.EqualValues(t, 1, f.hits.Load())

	rows, status, err := list.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, StatusReady, status)
	assert.Len(t, rows, 1)

	// Warm cache: a second load serves it without the network.
	require.NoError(t, list.Load(ctx))
	assert.EqualValues(t, 1, f.hits.Load())
}

func TestCourseList_RefreshKeepsSnapshotOnFailure(t *testing.T) {
	f := newFixture(t)
	f.setCourses([]api.Course{{ID: 1, Title: "Batik Basics"}})
	list := NewCourseList(repo.NewCourses(f.store, f.client))
	ctx := context.Background()

	require.NoError(t, list.Load(ctx))

	f.failing.Store(true)
	require.Error(t, list.Refresh(ctx))

	rows, status, err := list.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, StatusReady, status)
	assert.Len(t, rows, 1)
}

func TestCourseList_RefreshFailsWithEmptyCache(t *testing.T) {
	f := newFixture(t)
	f.failing.Store(true)
	list := NewCourseList(repo.NewCourses(f.store, f.client))

	require.Error(t, list.Refresh(context.Background()))

	_, status, err := list.Snapshot()
	assert.Equal(t, StatusFailed, status)
	assert.Error(t, err)
}

func TestCourseList_Filter(t *testing.T) {
	list := NewCourseList(nil)
	list.ready([]models.Course{
		{ID: 1, Title: "Batik Basics", AuthorName: "Sari"},
		{ID: 2, Title: "Natural Dyes", AuthorName: "Made"},
		{ID: 3, Title: "Advanced Batik", AuthorName: "Sari"},
	})

	assert.Len(t, list.Filter(""), 3)
	assert.Len(t, list.Filter("batik"), 2)
	assert.Len(t, list.Filter("SARI"), 2)
	assert.Empty(t, list.Filter("pottery"))
}

func TestProgress_Counts(t *testing.T) {
	p := NewProgress(nil, 5)
	p.ready([]models.Enrollment{
		{ID: 1, CourseID: 1, Progress: 40, Status: models.EnrollmentActive},
		{ID: 2, CourseID: 2, Progress: 100, Status: models.EnrollmentActive},
		{ID: 3, CourseID: 3, Progress: 80, Status: models.EnrollmentCompleted},
	})

	total, completed, active := p.Counts()
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 1, active)

	require.NotNil(t, p.ForCourse(2))
	assert.Nil(t, p.ForCourse(9))
}

func TestForumFeed_DeleteLeavesEarlierSnapshotsIntact(t *testing.T) {
	f := newFixture(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f.setQuestions([]api.Question{
		{ID: 1, Body: "first", CreatedAt: base, Images: []string{}},
		{ID: 2, Body: "second", CreatedAt: base.Add(-time.Hour), Images: []string{}},
		{ID: 3, Body: "third", CreatedAt: base.Add(-2 * time.Hour), Images: []string{}},
	})
	feed := NewForumFeed(repo.NewForum(f.store, f.client))
	ctx := context.Background()

	require.NoError(t, feed.Load(ctx))
	before, _, _, _ := feed.Snapshot()
	require.Equal(t, []int{1, 2, 3}, questionIDs(before))

	_, err := feed.Delete(ctx, 1)
	require.NoError(t, err)

	// The earlier snapshot must not be rewritten by the delete.
	assert.Equal(t, []int{1, 2, 3}, questionIDs(before))

	after, _, _, _ := feed.Snapshot()
	assert.Equal(t, []int{2, 3}, questionIDs(after))
}

func TestGalleryView_DeleteLeavesEarlierSnapshotsIntact(t *testing.T) {
	f := newFixture(t)
	f.setKarya([]api.Karya{
		{ID: 1, UserID: 5},
		{ID: 2, UserID: 5},
		{ID: 3, UserID: 5},
	})
	view := NewGalleryView(repo.NewGallery(f.store, f.client), 0)
	ctx := context.Background()

	require.NoError(t, view.Load(ctx))
	before, _, _ := view.Snapshot()
	require.Equal(t, []int{3, 2, 1}, karyaIDs(before))

	_, err := view.Delete(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1}, karyaIDs(before))

	after, _, _ := view.Snapshot()
	assert.Equal(t, []int{3, 2}, karyaIDs(after))
}

func TestGalleryView_DeleteFailurePreservesSnapshot(t *testing.T) {
	f := newFixture(t)
	f.setKarya([]api.Karya{{ID: 1, UserID: 5}, {ID: 2, UserID: 5}})
	view := NewGalleryView(repo.NewGallery(f.store, f.client), 0)
	ctx := context.Background()

	require.NoError(t, view.Load(ctx))

	f.failing.Store(true)
	_, err := view.Delete(ctx, 1)
	require.Error(t, err)

	items, _, _ := view.Snapshot()
	assert.Len(t, items, 2)
}

func questionIDs(questions []api.Question) []int {
	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

func karyaIDs(items []models.Karya) []int {
	ids := make([]int, len(items))
	for i, k := range items {
		ids[i] = k.ID
	}
	return ids
}

func TestForumFeed_FilterHelpers(t *testing.T) {
	feed := NewForumFeed(nil)
	feed.questions = []api.Question{
		{ID: 1, UserID: 5, ReplyCount: 2},
		{ID: 2, UserID: 6, ReplyCount: 0},
		{ID: 3, UserID: 5, ReplyCount: 1},
	}
	feed.status = StatusReady

	assert.Len(t, feed.Answered(), 2)
	assert.Len(t, feed.Unanswered(), 1)
	assert.Len(t, feed.ByAuthor(5), 2)

	total, answered, unanswered := feed.Counts()
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, answered)
	assert.Equal(t, 1, unanswered)
}
