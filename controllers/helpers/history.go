package helpers

import (
	"asset-tracker/models"
	"time"

	"gorm.io/gorm"
)

// InsertTransactionHistory records a status change of refType/refID made by actor.
func InsertTransactionHistory(db *gorm.DB, refType string, refID uint, fromStatus, toStatus, detail string, actor uint) error {
	history := models.TransactionHistory{
		RefType:    refType,
		RefID:      refID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		Detail:     detail,
		CreatedAt:  time.Now(),
		CreatedBy:  actor,
	}

	if err := db.Create(&history).Error; err != nil {
		return err
	}

	return nil
}

// GetTransactionHistory lists the changes of one record, oldest first.
func GetTransactionHistory(db *gorm.DB, refType string, refID uint) ([]models.TransactionHistory, error) {
	var out []models.TransactionHistory
	err := db.Where("ref_type = ? AND ref_id = ?", refType, refID).Order("created_at, id").Find(&out).Error
	return out, err
}
