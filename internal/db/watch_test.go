package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastra-labs/wastra/internal/models"
)

// recv waits for the next snapshot or fails the test.
func recv[T any](t *testing.T, sub *Subscription[T]) []T {
	t.Helper()
	select {
	case rows := <-sub.C:
		return rows
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestObserveCourses_EmitsInitialSnapshot(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.UpsertCourse(&models.Course{ID: 1, Title: "Batik"}))

	sub := db.ObserveCourses()
	defer sub.Cancel()

	rows := recv(t, sub)
	require.Len(t, rows, 1)
	assert.Equal(t, "Batik", rows[0].Title)
}

func TestObserveCourses_ReEmitsOnWrite(t *testing.T) {
	db := testDB(t)

	sub := db.ObserveCourses()
	defer sub.Cancel()

	assert.Empty(t, recv(t, sub))

	require.NoError(t, db.UpsertCourse(&models.Course{ID: 1, Title: "Batik"}))

	rows := recv(t, sub)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].ID)
}

func TestObserveCourses_IndependentSubscribers(t *testing.T) {
	db := testDB(t)

	first := db.ObserveCourses()
	second := db.ObserveCourses()
	defer second.Cancel()

	recv(t, first)
	recv(t, second)

	// Cancelling one subscription must not affect the other.
	first.Cancel()
	first.Cancel() // idempotent

	require.NoError(t, db.UpsertCourse(&models.Course{ID: 1}))

	rows := recv(t, second)
	assert.Len(t, rows, 1)
}

func TestObserveKaryaByUser_Filtered(t *testing.T) {
	db := testDB(t)

	sub := db.ObserveKaryaByUser(5)
	defer sub.Cancel()

	recv(t, sub)

	require.NoError(t, db.UpsertKaryaBatch([]models.Karya{
		{ID: 1, UserID: 5},
		{ID: 2, UserID: 6},
	}))

	rows := recv(t, sub)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].UserID)
}

func TestNotify_AfterCloseIsSafe(t *testing.T) {
	n := newNotifier()
	_, ch := n.subscribe(courseTable)

	n.close()

	// A write committing during shutdown still notifies; the closed hub
	// must swallow it instead of sending on a closed channel.
	n.notify(courseTable)

	_, ok := <-ch
	assert.False(t, ok)
}

func TestObserve_ReadsSeeWritesFromFailedObservers(t *testing.T) {
	db := testDB(t)

	// A subscriber that never drains still gets the latest snapshot
	// buffered; writes are never blocked by slow observers.
	sub := db.ObserveCourses()
	defer sub.Cancel()

	for i := 1; i <= 5; i++ {
		require.NoError(t, db.UpsertCourse(&models.Course{ID: i}))
	}

	courses, err := db.ListCourses()
	require.NoError(t, err)
	assert.Len(t, courses, 5)
}
