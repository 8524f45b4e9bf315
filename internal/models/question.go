package models

import (
	"encoding/json"
	"time"
)

// Question is a cached forum question. Author fields are denormalized so the
// feed renders without joins. Attached image URLs are stored JSON-encoded in
// a single text column.
//
// CachedAt is stamped when the batch is written and drives the forum cache's
// freshness check. The whole forum table is always written together
// (clear-then-insert), so every row in the cache shares one CachedAt.
type Question struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	UserID int    `gorm:"index" json:"user_id"`
	Body   string `gorm:"type:text" json:"body"`

	// Server-owned timestamps; GORM's auto-stamping is disabled so cached
	// values survive writes unchanged.
	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	// ImagesJSON holds a JSON array of image URLs.
	ImagesJSON string `gorm:"type:text" json:"images_json"`

	ReplyCount int `gorm:"default:0" json:"reply_count"`

	AuthorName   string `gorm:"size:255" json:"author_name"`
	AuthorHandle string `gorm:"size:100" json:"author_handle"`
	AuthorAvatar string `gorm:"size:500" json:"author_avatar"`

	CachedAt time.Time `gorm:"index" json:"cached_at"`
}

// TableName specifies the table name for GORM.
func (Question) TableName() string {
	return "questions"
}

// Images decodes the JSON-encoded image URL list. Malformed text degrades to
// an empty list rather than an error; a broken cached row must never take the
// feed down.
func (q *Question) Images() []string {
	if q.ImagesJSON == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(q.ImagesJSON), &urls); err != nil {
		return []string{}
	}
	if urls == nil {
		return []string{}
	}
	return urls
}

// SetImages encodes the image URL list into ImagesJSON.
func (q *Question) SetImages(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		q.ImagesJSON = "[]"
		return
	}
	q.ImagesJSON = string(encoded)
}

// IsAnswered reports whether the question has at least one reply.
func (q *Question) IsAnswered() bool {
	return q.ReplyCount > 0
}
