package models

import (
	"strconv"
	"time"
)

// Karya is a gallery item: a photographed craft work uploaded by a user.
// Rows carry enough denormalized data (uploader name, counts) to render a
// gallery card without a join.
type Karya struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	UserID  int    `gorm:"index" json:"user_id"`
	Title   string `gorm:"size:255" json:"title"`
	Caption string `gorm:"type:text" json:"caption"`

	ImageURL string `gorm:"size:500" json:"image_url"`

	// Server-owned timestamps. autoCreateTime/autoUpdateTime are disabled:
	// GORM must never stamp over what the API returned.
	UploadedAt *time.Time `json:"uploaded_at"`
	CreatedAt  *time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	ViewCount int `gorm:"default:0" json:"view_count"`
	LikeCount int `gorm:"default:0" json:"like_count"`

	UploaderName string `gorm:"size:255" json:"uploader_name"`

	SyncedAt time.Time `json:"synced_at"`
}

// TableName specifies the table name for GORM.
func (Karya) TableName() string {
	return "karya"
}

// ShareURL returns the public web link for this karya.
func (k *Karya) ShareURL(baseURL string) string {
	return baseURL + "/karya/" + strconv.Itoa(k.ID)
}
