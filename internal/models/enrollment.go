package models

import "time"

// Enrollment tracks a user's participation in a course. Logically one row
// exists per (user, course) pair, but only the primary key is enforced.
type Enrollment struct {
	ID       int `gorm:"primaryKey" json:"id"`
	UserID   int `gorm:"index" json:"user_id"`
	CourseID int `gorm:"index" json:"course_id"`

	// Progress is 0-100 by convention; the client does not validate it.
	Progress int    `gorm:"default:0" json:"progress"`
	Status   string `gorm:"size:50" json:"status"`

	SyncedAt time.Time `json:"synced_at"`
}

// TableName specifies the table name for GORM.
func (Enrollment) TableName() string {
	return "enrollments"
}

// Enrollment status labels as returned by the server.
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
)
