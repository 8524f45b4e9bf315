package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wastra-labs/wastra/internal/models"
)

const materialTable = "materials"

// ReplaceMaterials replaces the full material set for one course:
// delete-by-course then insert, in a single transaction, so materials removed
// server-side disappear locally and no reader observes the table half-empty.
func (db *DB) ReplaceMaterials(courseID int, materials []models.Material) error {
	err := db.Transaction(func(tx *DB) error {
		if err := tx.Delete(&models.Material{}, "course_id = ?", courseID).Error; err != nil {
			return err
		}
		if len(materials) == 0 {
			return nil
		}
		return tx.Create(&materials).Error
	})
	if err != nil {
		return err
	}
	db.watch.notify(materialTable)
	return nil
}

// UpsertMaterial writes a single material with insert-or-replace semantics.
func (db *DB) UpsertMaterial(material *models.Material) error {
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(material).Error
	if err != nil {
		return err
	}
	db.watch.notify(materialTable)
	return nil
}

// GetMaterial retrieves a material by id, or nil if absent.
func (db *DB) GetMaterial(id int) (*models.Material, error) {
	var material models.Material
	err := db.First(&material, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &material, nil
}

// ListMaterials returns the cached materials for a course in catalog order.
func (db *DB) ListMaterials(courseID int) ([]models.Material, error) {
	var materials []models.Material
	err := db.Where("course_id = ?", courseID).Order("id ASC").Find(&materials).Error
	return materials, err
}

// DeleteMaterial removes a material by id.
func (db *DB) DeleteMaterial(id int) error {
	if err := db.Delete(&models.Material{}, "id = ?", id).Error; err != nil {
		return err
	}
	db.watch.notify(materialTable)
	return nil
}

// DeleteMaterialsByCourse removes all materials for a course.
func (db *DB) DeleteMaterialsByCourse(courseID int) error {
	if err := db.Delete(&models.Material{}, "course_id = ?", courseID).Error; err != nil {
		return err
	}
	db.watch.notify(materialTable)
	return nil
}

// ClearMaterials removes all cached materials.
func (db *DB) ClearMaterials() error {
	if err := db.Where("1 = 1").Delete(&models.Material{}).Error; err != nil {
		return err
	}
	db.watch.notify(materialTable)
	return nil
}

// ObserveMaterials returns a live subscription over a course's materials.
func (db *DB) ObserveMaterials(courseID int) *Subscription[models.Material] {
	return observe(db, materialTable, func() ([]models.Material, error) {
		return db.ListMaterials(courseID)
	})
}
