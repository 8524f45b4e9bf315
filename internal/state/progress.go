package state

import (
	"context"
	"sync"

	"github.com/wastra-labs/wastra/internal/models"
	"github.com/wastra-labs/wastra/internal/repo"
)

// Progress is the derived state behind the "my courses" screen: one user's
// enrollments with completion counts.
type Progress struct {
	enrollments *repo.Enrollments
	userID      int

	mu     sync.Mutex
	status Status
	err    error
	rows   []models.Enrollment
}

// NewProgress creates the enrollment controller for one user.
func NewProgress(enrollments *repo.Enrollments, userID int) *Progress {
	return &Progress{enrollments: enrollments, userID: userID}
}

// Load serves the cache immediately and syncs only when it is empty.
func (p *Progress) Load(ctx context.Context) error {
	p.setLoading()

	rows, err := p.enrollments.List(p.userID)
	if err != nil {
		p.fail(err)
		return err
	}
	if len(rows) == 0 {
		if err := p.enrollments.Sync(ctx, p.userID); err != nil {
			p.fail(err)
			return err
		}
		if rows, err = p.enrollments.List(p.userID); err != nil {
			p.fail(err)
			return err
		}
	}
	p.ready(rows)
	return nil
}

// Refresh always syncs, then re-reads the cache.
func (p *Progress) Refresh(ctx context.Context) error {
	p.setLoading()

	if err := p.enrollments.Sync(ctx, p.userID); err != nil {
		p.mu.Lock()
		if len(p.rows) == 0 {
			p.status = StatusFailed
			p.err = err
		} else {
			p.status = StatusReady
		}
		p.mu.Unlock()
		return err
	}

	rows, err := p.enrollments.List(p.userID)
	if err != nil {
		p.fail(err)
		return err
	}
	p.ready(rows)
	return nil
}

// Snapshot returns the latest enrollments with the load status.
func (p *Progress) Snapshot() ([]models.Enrollment, Status, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rows, p.status, p.err
}

// Counts returns (total, completed, in progress) for the snapshot.
func (p *Progress) Counts() (int, int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	completed := 0
	for _, e := range p.rows {
		if e.Status == models.EnrollmentCompleted || e.Progress >= 100 {
			completed++
		}
	}
	return len(p.rows), completed, len(p.rows) - completed
}

// ForCourse returns the snapshot enrollment for a course, or nil.
func (p *Progress) ForCourse(courseID int) *models.Enrollment {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.rows {
		if p.rows[i].CourseID == courseID {
			return &p.rows[i]
		}
	}
	return nil
}

func (p *Progress) setLoading() {
	p.mu.Lock()
	p.status = StatusLoading
	p.mu.Unlock()
}

func (p *Progress) ready(rows []models.Enrollment) {
	p.mu.Lock()
	p.rows = rows
	p.status = StatusReady
	p.err = nil
	p.mu.Unlock()
}

func (p *Progress) fail(err error) {
	p.mu.Lock()
	p.status = StatusFailed
	p.err = err
	p.mu.Unlock()
}
