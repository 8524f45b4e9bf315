package repo

import (
	"time"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/models"
)

// Pure transforms between wire payloads and persisted rows. Round-tripping a
// payload through its row form is lossless for every field except the
// client-generated sync/cache timestamps.

func courseToRow(c api.Course) models.Course {
	return models.Course{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		AuthorName:   c.Author,
		ThumbnailURL: c.Thumbnail,
	}
}

func courseToWire(row models.Course) api.Course {
	return api.Course{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Author:      row.AuthorName,
		Thumbnail:   row.ThumbnailURL,
	}
}

func materialToRow(m api.Material) models.Material {
	return models.Material{
		ID:              m.ID,
		CourseID:        m.CourseID,
		Title:           m.Title,
		DurationMinutes: m.Duration,
		VideoURL:        m.Video,
	}
}

func materialToWire(row models.Material) api.Material {
	return api.Material{
		ID:       row.ID,
		CourseID: row.CourseID,
		Title:    row.Title,
		Duration: row.DurationMinutes,
		Video:    row.VideoURL,
	}
}

func enrollmentToRow(e api.Enrollment, syncedAt time.Time) models.Enrollment {
	return models.Enrollment{
		ID:       e.ID,
		UserID:   e.UserID,
		CourseID: e.CourseID,
		Progress: e.Progress,
		Status:   e.Status,
		SyncedAt: syncedAt,
	}
}

func enrollmentToWire(row models.Enrollment) api.Enrollment {
	return api.Enrollment{
		ID:       row.ID,
		UserID:   row.UserID,
		CourseID: row.CourseID,
		Progress: row.Progress,
		Status:   row.Status,
	}
}

func karyaToRow(k api.Karya, syncedAt time.Time) models.Karya {
	return models.Karya{
		ID:           k.ID,
		UserID:       k.UserID,
		Title:        k.Title,
		Caption:      k.Caption,
		ImageURL:     k.ImageURL,
		UploadedAt:   k.UploadedAt,
		CreatedAt:    k.CreatedAt,
		UpdatedAt:    k.UpdatedAt,
		ViewCount:    k.Views,
		LikeCount:    k.Likes,
		UploaderName: k.UploaderName,
		SyncedAt:     syncedAt,
	}
}

func karyaToWire(row models.Karya) api.Karya {
	return api.Karya{
		ID:           row.ID,
		UserID:       row.UserID,
		Title:        row.Title,
		Caption:      row.Caption,
		ImageURL:     row.ImageURL,
		UploadedAt:   row.UploadedAt,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Views:        row.ViewCount,
		Likes:        row.LikeCount,
		UploaderName: row.UploaderName,
	}
}

func questionToRow(q api.Question, cachedAt time.Time) models.Question {
	row := models.Question{
		ID:           q.ID,
		UserID:       q.UserID,
		Body:         q.Body,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
		ReplyCount:   q.ReplyCount,
		AuthorName:   q.AuthorName,
		AuthorHandle: q.AuthorHandle,
		AuthorAvatar: q.AuthorAvatar,
		CachedAt:     cachedAt,
	}
	row.SetImages(q.Images)
	return row
}

func questionToWire(row models.Question) api.Question {
	return api.Question{
		ID:           row.ID,
		UserID:       row.UserID,
		Body:         row.Body,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Images:       row.Images(),
		ReplyCount:   row.ReplyCount,
		AuthorName:   row.AuthorName,
		AuthorHandle: row.AuthorHandle,
		AuthorAvatar: row.AuthorAvatar,
	}
}

func questionsToWire(rows []models.Question) []api.Question {
	out := make([]api.Question, len(rows))
	for i, row := range rows {
		out[i] = questionToWire(row)
	}
	return out
}
