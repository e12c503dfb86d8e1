package models

import (
	"time"

	"gorm.io/gorm"
)

// Consignment is a bulk incoming shipment. SlkID is assigned once, inside the insert
// transaction, from the row's storage-assigned serial id.
type Consignment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SlkID         *string   `json:"slk_id" gorm:"size:20;uniqueIndex"`
	Supplier      string    `json:"supplier" gorm:"size:255;not null"`
	Quantity      uint      `json:"quantity" gorm:"not null"`
	LocationID    uint      `json:"location_id" gorm:"not null;index"`
	Location      *Location `json:"location,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Datetime      time.Time `json:"datetime"`
	InvoiceNumber *string   `json:"invoice_number" gorm:"size:100"`
	Invoice       *string   `json:"invoice" gorm:"size:255"`
	ReceivedByID  uint      `json:"received_by_id" gorm:"not null;index"`
	ReceivedBy    *User     `json:"received_by,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Comments      *string   `json:"comments" gorm:"type:text"`
	Project       *string   `json:"project" gorm:"size:255"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Consignment) BeforeCreate(tx *gorm.DB) error {
	if c.Datetime.IsZero() {
		c.Datetime = time.Now()
	}
	return nil
}

// Code is the SLK identifier, empty until assigned.
func (c *Consignment) Code() string {
	if c.SlkID == nil {
		return ""
	}
	return *c.SlkID
}
