package state

import (
	"context"
	"sync"

	"github.com/wastra-labs/wastra/internal/models"
	"github.com/wastra-labs/wastra/internal/repo"
)

// GalleryView is the derived state behind a gallery screen. A view is scoped
// either to the public feed (ownerID == 0) or to one user's collection.
type GalleryView struct {
	gallery *repo.Gallery
	ownerID int

	mu     sync.Mutex
	status Status
	err    error
	items  []models.Karya
}

// NewGalleryView creates a gallery controller. Pass ownerID 0 for the public
// feed.
func NewGalleryView(gallery *repo.Gallery, ownerID int) *GalleryView {
	return &GalleryView{gallery: gallery, ownerID: ownerID}
}

// Load serves the cache immediately and syncs only when it is empty.
func (g *GalleryView) Load(ctx context.Context) error {
	g.setStatus(StatusLoading)

	items, err := g.list()
	if err != nil {
		g.fail(err)
		return err
	}
	if len(items) == 0 {
		if err := g.sync(ctx); err != nil {
			g.fail(err)
			return err
		}
		if items, err = g.list(); err != nil {
			g.fail(err)
			return err
		}
	}
	g.ready(items)
	return nil
}

// Refresh always syncs, then re-reads the cache. Like the catalog, a failed
// refresh keeps the previous snapshot on screen.
func (g *GalleryView) Refresh(ctx context.Context) error {
	g.setStatus(StatusLoading)

	if err := g.sync(ctx); err != nil {
		g.mu.Lock()
		if len(g.items) == 0 {
			g.status = StatusFailed
			g.err = err
		} else {
			g.status = StatusReady
		}
		g.mu.Unlock()
		return err
	}

	items, err := g.list()
	if err != nil {
		g.fail(err)
		return err
	}
	g.ready(items)
	return nil
}

// Delete removes a karya remotely and locally, then drops it from the
// snapshot. Returns the server's confirmation message.
func (g *GalleryView) Delete(ctx context.Context, id int) (string, error) {
	msg, err := g.gallery.Delete(ctx, id)
	if err != nil {
		return "", err
	}

	// Filter into a fresh slice: snapshots already handed out share the old
	// backing array and must not be rewritten underneath their readers.
	g.mu.Lock()
	kept := make([]models.Karya, 0, len(g.items))
	for _, item := range g.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	g.items = kept
	g.mu.Unlock()
	return msg, nil
}

// Snapshot returns the latest items with the load status.
func (g *GalleryView) Snapshot() ([]models.Karya, Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.items, g.status, g.err
}

// Count returns the number of items in the snapshot.
func (g *GalleryView) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.items)
}

func (g *GalleryView) sync(ctx context.Context) error {
	if g.ownerID == 0 {
		return g.gallery.SyncAll(ctx)
	}
	return g.gallery.SyncByOwner(ctx, g.ownerID)
}

func (g *GalleryView) list() ([]models.Karya, error) {
	if g.ownerID == 0 {
		return g.gallery.List()
	}
	return g.gallery.ListByOwner(g.ownerID)
}

func (g *GalleryView) setStatus(s Status) {
	g.mu.Lock()
	g.status = s
	g.mu.Unlock()
}

func (g *GalleryView) ready(items []models.Karya) {
	g.mu.Lock()
	g.items = items
	g.status = StatusReady
	g.err = nil
	g.mu.Unlock()
}

func (g *GalleryView) fail(err error) {
	g.mu.Lock()
	g.status = StatusFailed
	g.err = err
	g.mu.Unlock()
}
