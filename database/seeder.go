// database/seeder.go
package database

import (
	"asset-tracker/config"
	"asset-tracker/models"
	seed "asset-tracker/seeder"
	"asset-tracker/wms/master/category"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	seed.SeedLocations(db)
	category.SeedCategories(db)
}

// SeedAdminUser creates ADMIN_USERNAME with ADMIN_PASSWORD once. Nothing happens when either is unset.
func SeedAdminUser(db *gorm.DB) {
	if config.AdminUsername == "" || config.AdminPassword == "" {
		return
	}

	var existing models.User
	err := db.Where("username = ?", config.AdminUsername).First(&existing).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := models.User{
		Username:  config.AdminUsername,
		Password:  string(hashed),
		FirstName: "Admin",
		IsActive:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("Failed to insert admin user:", err)
	} else {
		log.Println("Insert user:", admin.Username)
	}
}
