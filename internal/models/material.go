package models

// Material is a single lesson belonging to a course. The course relationship
// is by id only; no foreign key is enforced. A material's lifecycle is scoped
// to its course: syncing a course's materials clears and replaces the full set
// for that course id.
type Material struct {
	ID              int    `gorm:"primaryKey" json:"id"`
	CourseID        int    `gorm:"index" json:"course_id"`
	Title           string `gorm:"size:255" json:"title"`
	DurationMinutes int    `gorm:"default:0" json:"duration_minutes"`

	VideoURL *string `gorm:"size:500" json:"video_url"`
}

// TableName specifies the table name for GORM.
func (Material) TableName() string {
	return "materials"
}
