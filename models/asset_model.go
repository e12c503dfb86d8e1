package models

import (
	"errors"

	"asset-tracker/utils"

	"gorm.io/gorm"
)

// Asset is an approved, tagged item. Every field except TagNumber and Status is copied
// from the parent receiving on each save.
type Asset struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	ReceivingID   uint        `json:"receiving_id" gorm:"not null;uniqueIndex:idx_asset_serial_receiving,priority:2"`
	Receiving     *Receiving  `json:"receiving,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	TagNumber     string      `json:"tag_number" gorm:"size:255;not null;uniqueIndex"`
	Description   *string     `json:"description" gorm:"type:text"`
	SerialNumber  *string     `json:"serial_number" gorm:"size:255;uniqueIndex:idx_asset_serial_receiving,priority:1"`
	Name          *string     `json:"name" gorm:"size:255"`
	Model         *string     `json:"model" gorm:"size:255"`
	Status        AssetStatus `json:"status" gorm:"size:20;not null;default:available;index"`
	ReceivedByID  *uint       `json:"received_by_id" gorm:"index"`
	ReceivedBy    *User       `json:"received_by,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	LocationID    *uint       `json:"location_id" gorm:"index"`
	Location      *Location   `json:"location,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	InvoiceNumber *string     `json:"invoice_number" gorm:"size:255"`
	Supplier      *string     `json:"supplier" gorm:"size:255"`
}

func (a *Asset) BeforeSave(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = AssetAvailable
	}

	var receiving Receiving
	if err := tx.Session(&gorm.Session{NewDB: true}).First(&receiving, a.ReceivingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("receiving", a.ReceivingID)
		}
		return err
	}
	a.ApplyDerived(DeriveAssetFields(&receiving))
	return nil
}
