package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wastra-labs/wastra/internal/models"
)

const questionTable = "questions"

// ReplaceQuestions replaces the entire forum cache: clear-then-insert in one
// transaction, so questions deleted server-side disappear locally and all
// rows share one write (and one CachedAt).
func (db *DB) ReplaceQuestions(questions []models.Question) error {
	err := db.Transaction(func(tx *DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return err
	}
	db.watch.notify(questionTable)
	return nil
}

// UpsertQuestion writes a single question with insert-or-replace semantics.
func (db *DB) UpsertQuestion(question *models.Question) error {
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(question).Error
	if err != nil {
		return err
	}
	db.watch.notify(questionTable)
	return nil
}

// GetQuestion retrieves a question by id, or nil if absent.
func (db *DB) GetQuestion(id int) (*models.Question, error) {
	var question models.Question
	err := db.First(&question, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

// ListQuestions returns all cached questions, newest first.
func (db *DB) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := db.Order("created_at DESC").Find(&questions).Error
	return questions, err
}

// ListQuestionsByUser returns a user's cached questions, newest first.
func (db *DB) ListQuestionsByUser(userID int) ([]models.Question, error) {
	var questions []models.Question
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&questions).Error
	return questions, err
}

// DeleteQuestion removes a question by id.
func (db *DB) DeleteQuestion(id int) error {
	if err := db.Delete(&models.Question{}, "id = ?", id).Error; err != nil {
		return err
	}
	db.watch.notify(questionTable)
	return nil
}

// ClearQuestions removes all cached questions.
func (db *DB) ClearQuestions() error {
	if err := db.Where("1 = 1").Delete(&models.Question{}).Error; err != nil {
		return err
	}
	db.watch.notify(questionTable)
	return nil
}

// ObserveQuestions returns a live subscription over the forum feed.
func (db *DB) ObserveQuestions() *Subscription[models.Question] {
	return observe(db, questionTable, db.ListQuestions)
}
