package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/models"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestCourseRoundTrip(t *testing.T) {
	wire := api.Course{
		ID:          7,
		Title:       "Natural Dyes",
		Description: "From leaves to cloth.",
		Author:      "Sari",
		Thumbnail:   strPtr("https://cdn.example.com/t.jpg"),
	}

	assert.Equal(t, wire, courseToWire(courseToRow(wire)))
}

func TestCourseRoundTrip_NilThumbnail(t *testing.T) {
	wire := api.Course{ID: 8, Title: "Weaving"}

	assert.Equal(t, wire, courseToWire(courseToRow(wire)))
}

func TestMaterialRoundTrip(t *testing.T) {
	wire := api.Material{
		ID:       3,
		CourseID: 7,
		Title:    "Preparing the bath",
		Duration: 14,
		Video:    strPtr("https://cdn.example.com/v.mp4"),
	}

	assert.Equal(t, wire, materialToWire(materialToRow(wire)))
}

func TestEnrollmentRoundTrip(t *testing.T) {
	wire := api.Enrollment{ID: 1, UserID: 5, CourseID: 7, Progress: 40, Status: "active"}

	row := enrollmentToRow(wire, time.Now())
	assert.Equal(t, wire, enrollmentToWire(row))
	assert.False(t, row.SyncedAt.IsZero())
}

func TestKaryaRoundTrip(t *testing.T) {
	uploaded := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	wire := api.Karya{
		ID:           2,
		UserID:       5,
		Title:        "Indigo scarf",
		Caption:      "First attempt",
		ImageURL:     "https://cdn.example.com/k.jpg",
		UploadedAt:   timePtr(uploaded),
		CreatedAt:    timePtr(uploaded),
		Views:        12,
		Likes:        4,
		UploaderName: "Sari",
	}

	assert.Equal(t, wire, karyaToWire(karyaToRow(wire, time.Now())))
}

func TestQuestionRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	wire := api.Question{
		ID:           11,
		UserID:       5,
		Body:         "How do I keep indigo from fading?",
		CreatedAt:    created,
		UpdatedAt:    timePtr(created.Add(time.Hour)),
		Images:       []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		ReplyCount:   2,
		AuthorName:   "Sari",
		AuthorHandle: "sari_craft",
		AuthorAvatar: "https://cdn.example.com/av.jpg",
	}

	assert.Equal(t, wire, questionToWire(questionToRow(wire, time.Now())))
}

func TestQuestionRoundTrip_NoImages(t *testing.T) {
	wire := api.Question{ID: 12, Body: "plain", CreatedAt: time.Now(), Images: []string{}}

	assert.Equal(t, wire, questionToWire(questionToRow(wire, time.Now())))
}

func TestQuestionToWire_MalformedImagesDecodeEmpty(t *testing.T) {
	row := models.Question{ID: 1, Body: "broken", ImagesJSON: `{"not":"a list"`}

	wire := questionToWire(row)
	assert.Equal(t, []string{}, wire.Images)
}
