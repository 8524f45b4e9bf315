package repo

import (
	"context"
	"fmt"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/db"
	"github.com/wastra-labs/wastra/internal/models"
)

// Materials caches course lessons. Unlike the catalog, a sync replaces the
// full set for the course (clear-then-insert), so lessons removed
// server-side disappear locally.
type Materials struct {
	store  *db.DB
	client *api.Client
}

// NewMaterials creates the material repository.
func NewMaterials(store *db.DB, client *api.Client) *Materials {
	return &Materials{store: store, client: client}
}

// Sync fetches a course's materials and replaces the cached set for that
// course. On failure the cache is left untouched and the error propagates.
func (r *Materials) Sync(ctx context.Context, courseID int) error {
	materials, err := r.client.Materials(ctx, courseID)
	if err != nil {
		return fmt.Errorf("fetch materials for course %d: %w", courseID, err)
	}

	rows := make([]models.Material, len(materials))
	for i, m := range materials {
		rows[i] = materialToRow(m)
	}
	if err := r.store.ReplaceMaterials(courseID, rows); err != nil {
		return fmt.Errorf("cache materials for course %d: %w", courseID, err)
	}
	return nil
}

// ObserveByCourse returns a live subscription over a course's materials.
func (r *Materials) ObserveByCourse(courseID int) *db.Subscription[models.Material] {
	return r.store.ObserveMaterials(courseID)
}

// List returns the cached materials for a course.
func (r *Materials) List(courseID int) ([]models.Material, error) {
	return r.store.ListMaterials(courseID)
}
