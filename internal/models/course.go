// Package models defines the persisted data structures for Wastra.
package models

// Course is a catalog entry cached from the marketplace API.
// Courses are immutable on the client; each sync overwrites them wholesale.
type Course struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;index" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	AuthorName  string `gorm:"size:255;index" json:"author_name"`

	// Thumbnail is nullable; not every course has cover art.
	ThumbnailURL *string `gorm:"size:500" json:"thumbnail_url"`
}

// TableName specifies the table name for GORM.
func (Course) TableName() string {
	return "courses"
}
