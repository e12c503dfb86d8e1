package models

import (
	"errors"
	"time"

	"asset-tracker/utils"

	"gorm.io/gorm"
)

type Dispatch struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	AssetID     uint           `json:"asset_id" gorm:"not null;index"`
	Asset       *Asset         `json:"asset,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	User        *User          `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	ApproverID  uint           `json:"approver_id" gorm:"not null;index"`
	Approver    *User          `json:"approver,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Status      DispatchStatus `json:"status" gorm:"size:10;not null;index"`
	Datetime    time.Time      `json:"datetime"`
	Comments    *string        `json:"comments" gorm:"type:text"`
	Destination *string        `json:"destination" gorm:"size:255"`
	LocationID  *uint          `json:"location_id" gorm:"index"`
	Location    *Location      `json:"location,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}

func (d *Dispatch) BeforeCreate(tx *gorm.DB) error {
	if d.Datetime.IsZero() {
		d.Datetime = time.Now()
	}
	return nil
}

// BeforeSave fills the location from the asset only while it is unset.
func (d *Dispatch) BeforeSave(tx *gorm.DB) error {
	if d.LocationID != nil {
		return nil
	}

	var asset Asset
	if err := tx.Session(&gorm.Session{NewDB: true}).First(&asset, d.AssetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("asset", d.AssetID)
		}
		return err
	}
	d.LocationID = DeriveDispatchLocation(d.LocationID, &asset)
	return nil
}
