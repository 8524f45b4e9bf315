package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wastra-labs/wastra/internal/models"
)

const karyaTable = "karya"

// UpsertKaryaBatch writes a batch of gallery items with insert-or-replace
// semantics. Items absent from a later sync are left in place.
func (db *DB) UpsertKaryaBatch(items []models.Karya) error {
	if len(items) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&items).Error
	if err != nil {
		return err
	}
	db.watch.notify(karyaTable)
	return nil
}

// UpsertKarya writes a single gallery item with insert-or-replace semantics.
func (db *DB) UpsertKarya(item *models.Karya) error {
	err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(item).Error
	if err != nil {
		return err
	}
	db.watch.notify(karyaTable)
	return nil
}

// GetKarya retrieves a gallery item by id, or nil if absent.
func (db *DB) GetKarya(id int) (*models.Karya, error) {
	var item models.Karya
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListKarya returns the full cached gallery, newest first.
func (db *DB) ListKarya() ([]models.Karya, error) {
	var items []models.Karya
	err := db.Order("id DESC").Find(&items).Error
	return items, err
}

// ListKaryaByUser returns a user's cached gallery, newest first.
func (db *DB) ListKaryaByUser(userID int) ([]models.Karya, error) {
	var items []models.Karya
	err := db.Where("user_id = ?", userID).Order("id DESC").Find(&items).Error
	return items, err
}

// DeleteKarya removes a gallery item by id.
func (db *DB) DeleteKarya(id int) error {
	if err := db.Delete(&models.Karya{}, "id = ?", id).Error; err != nil {
		return err
	}
	db.watch.notify(karyaTable)
	return nil
}

// DeleteKaryaByUser removes all gallery items for a user.
func (db *DB) DeleteKaryaByUser(userID int) error {
	if err := db.Delete(&models.Karya{}, "user_id = ?", userID).Error; err != nil {
		return err
	}
	db.watch.notify(karyaTable)
	return nil
}

// ClearKarya removes all cached gallery items.
func (db *DB) ClearKarya() error {
	if err := db.Where("1 = 1").Delete(&models.Karya{}).Error; err != nil {
		return err
	}
	db.watch.notify(karyaTable)
	return nil
}

// ObserveKarya returns a live subscription over the public gallery.
func (db *DB) ObserveKarya() *Subscription[models.Karya] {
	return observe(db, karyaTable, db.ListKarya)
}

// ObserveKaryaByUser returns a live subscription over one user's gallery.
func (db *DB) ObserveKaryaByUser(userID int) *Subscription[models.Karya] {
	return observe(db, karyaTable, func() ([]models.Karya, error) {
		return db.ListKaryaByUser(userID)
	})
}
