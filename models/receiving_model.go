package models

import (
	"errors"

	"asset-tracker/utils"

	"gorm.io/gorm"
)

// Receiving is one inspected item drawn from a consignment. Supplier, ReceivedByID,
// InvoiceNumber and LocationID are re-derived from the consignment on every save.
type Receiving struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	ConsignmentID uint            `json:"consignment_id" gorm:"not null;uniqueIndex:idx_receiving_serial_consignment,priority:2"`
	Consignment   *Consignment    `json:"consignment,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Status        ReceivingStatus `json:"status" gorm:"size:10;not null;default:pending;index"`
	SerialNumber  string          `json:"serial_number" gorm:"size:255;not null;uniqueIndex:idx_receiving_serial_consignment,priority:1;uniqueIndex:idx_receiving_serial_number"`
	Description   string          `json:"description" gorm:"type:text;not null"`
	Name          *string         `json:"name" gorm:"size:255"`
	Model         *string         `json:"model" gorm:"size:255"`
	CategoryID    *uint           `json:"category_id" gorm:"index"`
	Category      *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Supplier      *string         `json:"supplier" gorm:"size:255"`
	ReceivedByID  *uint           `json:"received_by_id" gorm:"index"`
	ReceivedBy    *User           `json:"received_by,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	InvoiceNumber *string         `json:"invoice_number" gorm:"size:255"`
	LocationID    *uint           `json:"location_id" gorm:"index"`
	Location      *Location       `json:"location,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}

func (r *Receiving) BeforeSave(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = ReceivingPending
	}

	var consignment Consignment
	if err := tx.Session(&gorm.Session{NewDB: true}).First(&consignment, r.ConsignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("consignment", r.ConsignmentID)
		}
		return err
	}
	r.ApplyDerived(DeriveReceivingFields(&consignment))
	return nil
}
