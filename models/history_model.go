package models

import (
	"asset-tracker/controllers/idgen"
	"asset-tracker/types"
	"time"

	"gorm.io/gorm"
)

// TransactionHistory is the audit trail of status changes on receivings, assets and dispatches.
type TransactionHistory struct {
	ID         types.SnowflakeID `json:"id" gorm:"primaryKey"`
	RefType    string            `json:"ref_type" gorm:"size:20;index:idx_history_ref"`
	RefID      uint              `json:"ref_id" gorm:"index:idx_history_ref"`
	FromStatus string            `json:"from_status" gorm:"size:20"`
	ToStatus   string            `json:"to_status" gorm:"size:20"`
	Detail     string            `json:"detail"`
	CreatedAt  time.Time         `json:"created_at"`
	CreatedBy  uint              `json:"created_by"`
}

func (h *TransactionHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == 0 {
		h.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}
