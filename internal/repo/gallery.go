package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/db"
	"github.com/wastra-labs/wastra/internal/models"
)

// Gallery caches karya (gallery items), both the public feed and per-user
// collections, with insert-or-replace semantics.
type Gallery struct {
	store  *db.DB
	client *api.Client

	now func() time.Time
}

// NewGallery creates the gallery repository.
func NewGallery(store *db.DB, client *api.Client) *Gallery {
	return &Gallery{store: store, client: client, now: time.Now}
}

// SyncAll fetches the public gallery and writes it to the local store.
func (r *Gallery) SyncAll(ctx context.Context) error {
	items, err := r.client.KaryaAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch gallery: %w", err)
	}
	return r.cache(items)
}

// SyncByOwner fetches one user's gallery and writes it to the local store.
func (r *Gallery) SyncByOwner(ctx context.Context, userID int) error {
	items, err := r.client.KaryaByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch gallery for user %d: %w", userID, err)
	}
	return r.cache(items)
}

func (r *Gallery) cache(items []api.Karya) error {
	syncedAt := r.now()
	rows := make([]models.Karya, len(items))
	for i, k := range items {
		rows[i] = karyaToRow(k, syncedAt)
	}
	if err := r.store.UpsertKaryaBatch(rows); err != nil {
		return fmt.Errorf("cache gallery: %w", err)
	}
	return nil
}

// Delete removes a karya remotely, then locally. There is no optimistic
// delete: if the remote call fails the cached row is preserved and the
// error propagates.
func (r *Gallery) Delete(ctx context.Context, id int) (string, error) {
	result, err := r.client.DeleteKarya(ctx, id)
	if err != nil {
		return "", fmt.Errorf("delete karya %d: %w", id, err)
	}
	if err := r.store.DeleteKarya(id); err != nil {
		return "", fmt.Errorf("remove cached karya %d: %w", id, err)
	}
	return result.Message, nil
}

// ObserveAll returns a live subscription over the public gallery.
func (r *Gallery) ObserveAll() *db.Subscription[models.Karya] {
	return r.store.ObserveKarya()
}

// ObserveByOwner returns a live subscription over one user's gallery.
func (r *Gallery) ObserveByOwner(userID int) *db.Subscription[models.Karya] {
	return r.store.ObserveKaryaByUser(userID)
}

// List returns the cached public gallery, newest first.
func (r *Gallery) List() ([]models.Karya, error) {
	return r.store.ListKarya()
}

// ListByOwner returns one user's cached gallery, newest first.
func (r *Gallery) ListByOwner(userID int) ([]models.Karya, error) {
	return r.store.ListKaryaByUser(userID)
}

// Get returns one cached karya, or nil if absent.
func (r *Gallery) Get(id int) (*models.Karya, error) {
	return r.store.GetKarya(id)
}
