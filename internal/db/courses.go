package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wastra-labs/wastra/internal/models"
)

const courseTable = "courses"

// UpsertCourses writes a batch of courses with insert-or-replace semantics.
// Rows not in the batch are left untouched.
func (db *DB) UpsertCourses(courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&courses).Error
	if err != nil {
		return err
	}
	db.watch.notify(courseTable)
	return nil
}

// UpsertCourse writes a single course with insert-or-replace semantics.
func (db *DB) UpsertCourse(course *models.Course) error {
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(course).Error
	if err != nil {
		return err
	}
	db.watch.notify(courseTable)
	return nil
}

// GetCourse retrieves a course by id, or nil if absent.
func (db *DB) GetCourse(id int) (*models.Course, error) {
	var course models.Course
	err := db.First(&course, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// ListCourses returns all cached courses, newest first.
func (db *DB) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	err := db.Order("id DESC").Find(&courses).Error
	return courses, err
}

// DeleteCourse removes a course by id.
func (db *DB) DeleteCourse(id int) error {
	if err := db.Delete(&models.Course{}, "id = ?", id).Error; err != nil {
		return err
	}
	db.watch.notify(courseTable)
	return nil
}

// ClearCourses removes all cached courses.
func (db *DB) ClearCourses() error {
	if err := db.Where("1 = 1").Delete(&models.Course{}).Error; err != nil {
		return err
	}
	db.watch.notify(courseTable)
	return nil
}

// ObserveCourses returns a live subscription over the full catalog,
// newest first. It emits an initial snapshot and again after every write.
func (db *DB) ObserveCourses() *Subscription[models.Course] {
	return observe(db, courseTable, db.ListCourses)
}
