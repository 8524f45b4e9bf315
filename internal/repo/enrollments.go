package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/db"
	"github.com/wastra-labs/wastra/internal/models"
)

// Enrollments caches a user's course enrollments with insert-or-replace
// semantics; enrollments missing from a later sync stay cached.
type Enrollments struct {
	store  *db.DB
	client *api.Client

	now func() time.Time
}

// NewEnrollments creates the enrollment repository.
func NewEnrollments(store *db.DB, client *api.Client) *Enrollments {
	return &Enrollments{store: store, client: client, now: time.Now}
}

// Sync fetches a user's enrollments and writes them to the local store.
func (r *Enrollments) Sync(ctx context.Context, userID int) error {
	enrollments, err := r.client.Enrollments(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch enrollments for user %d: %w", userID, err)
	}

	syncedAt := r.now()
	rows := make([]models.Enrollment, len(enrollments))
	for i, e := range enrollments {
		rows[i] = enrollmentToRow(e, syncedAt)
	}
	if err := r.store.UpsertEnrollments(rows); err != nil {
		return fmt.Errorf("cache enrollments for user %d: %w", userID, err)
	}
	return nil
}

// ObserveByUser returns a live subscription over a user's enrollments.
func (r *Enrollments) ObserveByUser(userID int) *db.Subscription[models.Enrollment] {
	return r.store.ObserveEnrollments(userID)
}

// List returns a user's cached enrollments, newest first.
func (r *Enrollments) List(userID int) ([]models.Enrollment, error) {
	return r.store.ListEnrollmentsByUser(userID)
}
