package models

import (
	"time"
)

// FileLog records manifest files already imported by the processor.
type FileLog struct {
	ID           uint   `gorm:"primaryKey"`
	Filename     string `gorm:"size:255;uniqueIndex;not null"`
	DateModified time.Time
	RowsImported int
	CreatedAt    time.Time
}
