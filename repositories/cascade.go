package repositories

import (
	"asset-tracker/models"

	"gorm.io/gorm"
)

// The delete helpers below walk consignment -> receiving -> asset -> dispatch explicitly so the
// cascade does not depend on the driver enforcing foreign keys. Callers pass a transaction.

func deleteConsignments(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	var receivingIDs []uint
	if err := tx.Model(&models.Receiving{}).Where("consignment_id IN ?", ids).Pluck("id", &receivingIDs).Error; err != nil {
		return err
	}
	if err := deleteReceivings(tx, receivingIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Consignment{}).Error
}

func deleteReceivings(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	var assetIDs []uint
	if err := tx.Model(&models.Asset{}).Where("receiving_id IN ?", ids).Pluck("id", &assetIDs).Error; err != nil {
		return err
	}
	if err := deleteAssets(tx, assetIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Receiving{}).Error
}

func deleteAssets(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := tx.Where("asset_id IN ?", ids).Delete(&models.Dispatch{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Asset{}).Error
}

// nullifyLocation clears every nullable reference to a location about to be removed.
func nullifyLocation(tx *gorm.DB, locationID uint) error {
	for _, model := range []any{&models.Receiving{}, &models.Asset{}, &models.Dispatch{}} {
		if err := tx.Model(model).Where("location_id = ?", locationID).UpdateColumn("location_id", nil).Error; err != nil {
			return err
		}
	}
	return nil
}
