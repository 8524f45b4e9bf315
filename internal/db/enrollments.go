package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wastra-labs/wastra/internal/models"
)

const enrollmentTable = "enrollments"

// UpsertEnrollments writes a batch of enrollments with insert-or-replace
// semantics. Enrollments absent from a later sync are deliberately left in
// place.
func (db *DB) UpsertEnrollments(enrollments []models.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&enrollments).Error
	if err != nil {
		return err
	}
	db.watch.notify(enrollmentTable)
	return nil
}

// UpsertEnrollment writes a single enrollment with insert-or-replace semantics.
func (db *DB) UpsertEnrollment(enrollment *models.Enrollment) error {
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(enrollment).Error
	if err != nil {
		return err
	}
	db.watch.notify(enrollmentTable)
	return nil
}

// GetEnrollment retrieves an enrollment by id, or nil if absent.
func (db *DB) GetEnrollment(id int) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := db.First(&enrollment, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

// ListEnrollmentsByUser returns a user's cached enrollments, newest first.
func (db *DB) ListEnrollmentsByUser(userID int) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := db.Where("user_id = ?", userID).Order("id DESC").Find(&enrollments).Error
	return enrollments, err
}

// DeleteEnrollment removes an enrollment by id.
func (db *DB) DeleteEnrollment(id int) error {
	if err := db.Delete(&models.Enrollment{}, "id = ?", id).Error; err != nil {
		return err
	}
	db.watch.notify(enrollmentTable)
	return nil
}

// DeleteEnrollmentsByUser removes all enrollments for a user.
func (db *DB) DeleteEnrollmentsByUser(userID int) error {
	if err := db.Delete(&models.Enrollment{}, "user_id = ?", userID).Error; err != nil {
		return err
	}
	db.watch.notify(enrollmentTable)
	return nil
}

// ClearEnrollments removes all cached enrollments.
func (db *DB) ClearEnrollments() error {
	if err := db.Where("1 = 1").Delete(&models.Enrollment{}).Error; err != nil {
		return err
	}
	db.watch.notify(enrollmentTable)
	return nil
}

// ObserveEnrollments returns a live subscription over a user's enrollments.
func (db *DB) ObserveEnrollments(userID int) *Subscription[models.Enrollment] {
	return observe(db, enrollmentTable, func() ([]models.Enrollment, error) {
		return db.ListEnrollmentsByUser(userID)
	})
}
