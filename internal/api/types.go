package api

import "time"

// Wire payloads as returned by the marketplace API. These are distinct from
// the persisted row types in internal/models; internal/repo maps between the
// two.

// Course is a catalog entry.
type Course struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Author      string  `json:"author"`
	Thumbnail   *string `json:"thumbnail"`
}

// Material is a lesson within a course.
type Material struct {
	ID       int     `json:"id"`
	CourseID int     `json:"course_id"`
	Title    string  `json:"title"`
	Duration int     `json:"duration"` // minutes
	Video    *string `json:"video"`
}

// Enrollment is a user's participation record for a course.
type Enrollment struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	CourseID int    `json:"course_id"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

// Karya is a gallery item.
type Karya struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	Title        string     `json:"title"`
	Caption      string     `json:"caption"`
	ImageURL     string     `json:"image_url"`
	UploadedAt   *time.Time `json:"uploaded_at"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	Views        int        `json:"views"`
	Likes        int        `json:"likes"`
	UploaderName string     `json:"uploader_name"`
}

// Question is a forum question with denormalized author info.
type Question struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	Body         string     `json:"body"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	Images       []string   `json:"images"`
	ReplyCount   int        `json:"reply_count"`
	AuthorName   string     `json:"author_name"`
	AuthorHandle string     `json:"author_handle"`
	AuthorAvatar string     `json:"author_avatar"`
}

// Meta describes server-side client requirements.
type Meta struct {
	MinClientVersion string `json:"min_client_version"`
}

// DeleteResult is the confirmation payload returned by delete endpoints.
type DeleteResult struct {
	Message string `json:"message"`
}

// listResponse is the envelope used by all collection endpoints.
type listResponse[T any] struct {
	Data []T `json:"data"`
}
