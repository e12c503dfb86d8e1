package migration

import (
	"asset-tracker/models"

	"gorm.io/gorm"
)

// Migrate creates or alters every table, parents before children.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Location{},
		&models.Category{},
		&models.Consignment{},
		&models.Receiving{},
		&models.Asset{},
		&models.Dispatch{},
		&models.TransactionHistory{},
		&models.FileLog{},
	)
}
