package state

import (
	"context"
	"strings"
	"sync"

	"github.com/wastra-labs/wastra/internal/models"
	"github.com/wastra-labs/wastra/internal/repo"
)

// CourseList is the derived state behind the catalog screen.
type CourseList struct {
	courses *repo.Courses

	mu     sync.Mutex
	status Status
	err    error
	rows   []models.Course
}

// NewCourseList creates the catalog controller.
func NewCourseList(courses *repo.Courses) *CourseList {
	return &CourseList{courses: courses}
}

// Load serves the cached catalog immediately and syncs only when the cache
// is empty (first launch). A failed sync over a non-empty cache is invisible
// here: the cached rows stay on screen.
func (c *CourseList) Load(ctx context.Context) error {
	c.setStatus(StatusLoading)

	rows, err := c.courses.List()
	if err != nil {
		c.fail(err)
		return err
	}
	if len(rows) == 0 {
		if err := c.courses.Sync(ctx); err != nil {
			c.fail(err)
			return err
		}
		if rows, err = c.courses.List(); err != nil {
			c.fail(err)
			return err
		}
	}

	c.ready(rows)
	return nil
}

// Refresh always syncs, then re-reads the cache.
func (c *CourseList) Refresh(ctx context.Context) error {
	c.setStatus(StatusLoading)

	if err := c.courses.Sync(ctx); err != nil {
		// Keep serving the previous snapshot; only the status degrades
		// when there is nothing cached at all.
		c.mu.Lock()
		if len(c.rows) == 0 {
			c.status = StatusFailed
			c.err = err
		} else {
			c.status = StatusReady
		}
		c.mu.Unlock()
		return err
	}

	rows, err := c.courses.List()
	if err != nil {
		c.fail(err)
		return err
	}
	c.ready(rows)
	return nil
}

// Snapshot returns the latest rows with the load status.
func (c *CourseList) Snapshot() ([]models.Course, Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows, c.status, c.err
}

// Count returns the number of courses in the snapshot.
func (c *CourseList) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rows)
}

// Filter returns snapshot courses whose title or author contains the query,
// case-insensitively. An empty query returns the full snapshot.
func (c *CourseList) Filter(query string) []models.Course {
	c.mu.Lock()
	defer c.mu.Unlock()

	if query == "" {
		return c.rows
	}
	q := strings.ToLower(query)
	var out []models.Course
	for _, course := range c.rows {
		if strings.Contains(strings.ToLower(course.Title), q) ||
			strings.Contains(strings.ToLower(course.AuthorName), q) {
			out = append(out, course)
		}
	}
	return out
}

func (c *CourseList) setStatus(s Status) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

func (c *CourseList) ready(rows []models.Course) {
	c.mu.Lock()
	c.rows = rows
	c.status = StatusReady
	c.err = nil
	c.mu.Unlock()
}

func (c *CourseList) fail(err error) {
	c.mu.Lock()
	c.status = StatusFailed
	c.err = err
	c.mu.Unlock()
}
