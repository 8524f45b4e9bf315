// Package repo contains the offline-first repositories: each one sits
// between the remote API and the local store, deciding when to serve cached
// rows, when to fetch, and how to degrade when the network fails.
//
// Reads never block on syncs. A failed sync leaves the cache untouched, so
// subscribers keep whatever was last written; staleness is preferred over
// unavailability.
package repo

import (
	"context"
	"fmt"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/db"
	"github.com/wastra-labs/wastra/internal/models"
)

// Courses caches the course catalog. The catalog is refreshed eagerly on
// every Sync call, with insert-or-replace semantics: courses no longer
// returned by the server stay cached.
type Courses struct {
	store  *db.DB
	client *api.Client
}

// NewCourses creates the course repository.
func NewCourses(store *db.DB, client *api.Client) *Courses {
	return &Courses{store: store, client: client}
}

// Sync fetches the catalog and writes it to the local store. On failure the
// cache is left untouched and the error propagates.
func (r *Courses) Sync(ctx context.Context) error {
	courses, err := r.client.Courses(ctx)
	if err != nil {
		return fmt.Errorf("fetch courses: %w", err)
	}

	rows := make([]models.Course, len(courses))
	for i, c := range courses {
		rows[i] = courseToRow(c)
	}
	if err := r.store.UpsertCourses(rows); err != nil {
		return fmt.Errorf("cache courses: %w", err)
	}
	return nil
}

// ObserveAll returns a live subscription over the cached catalog.
func (r *Courses) ObserveAll() *db.Subscription[models.Course] {
	return r.store.ObserveCourses()
}

// List returns the cached catalog, newest first.
func (r *Courses) List() ([]models.Course, error) {
	return r.store.ListCourses()
}

// Get returns one cached course, or nil if absent.
func (r *Courses) Get(id int) (*models.Course, error) {
	return r.store.GetCourse(id)
}
