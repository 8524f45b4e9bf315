package cli

import (
	"fmt"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/config"
	"github.com/wastra-labs/wastra/internal/db"
	"github.com/wastra-labs/wastra/internal/repo"
)

// env bundles the shared wiring every command needs: config, the local
// store, the API client, and the repositories built on top of them.
type env struct {
	cfg    *config.Config
	store  *db.DB
	client *api.Client

	courses     *repo.Courses
	materials   *repo.Materials
	enrollments *repo.Enrollments
	gallery     *repo.Gallery
	forum       *repo.Forum
}

// openEnv loads config and opens the local store. Callers must close it.
func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)
	store, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.RateLimit)

	return &env{
		cfg:         cfg,
		store:       store,
		client:      client,
		courses:     repo.NewCourses(store, client),
		materials:   repo.NewMaterials(store, client),
		enrollments: repo.NewEnrollments(store, client),
		gallery:     repo.NewGallery(store, client),
		forum:       repo.NewForum(store, client),
	}, nil
}

func (e *env) close() {
	_ = e.store.Close()
}

// requireUserID returns the configured user id or an actionable error.
func (e *env) requireUserID() (int, error) {
	if e.cfg.UserID == 0 {
		return 0, fmt.Errorf("no user configured; set WASTRA_USER_ID")
	}
	return e.cfg.UserID, nil
}
