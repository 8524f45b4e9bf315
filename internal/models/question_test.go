package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionImages(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []string
	}{
		{"empty column", "", []string{}},
		{"empty list", "[]", []string{}},
		{"urls", `["https://cdn.example.com/a.jpg"]`, []string{"https://cdn.example.com/a.jpg"}},
		{"json null", "null", []string{}},
		{"truncated", `["https://cdn.exa`, []string{}},
		{"wrong shape", `{"url":"x"}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{ImagesJSON: tt.json}
			assert.Equal(t, tt.want, q.Images())
		})
	}
}

func TestQuestionSetImages(t *testing.T) {
	var q Question

	q.SetImages(nil)
	assert.Equal(t, "[]", q.ImagesJSON)

	q.SetImages([]string{"https://cdn.example.com/a.jpg"})
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, q.Images())
}

func TestQuestionIsAnswered(t *testing.T) {
	assert.False(t, (&Question{}).IsAnswered())
	assert.True(t, (&Question{ReplyCount: 2}).IsAnswered())
}
