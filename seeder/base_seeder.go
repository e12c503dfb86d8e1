package seed

import (
	"asset-tracker/models"

	"gorm.io/gorm"
)

func SeedLocations(db *gorm.DB) {
	locations := []models.Location{
		{Name: "Main Store"},
	}

	for _, l := range locations {
		var existing models.Location
		if err := db.Where("slug = ?", models.Slugify(l.Name)).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&l)
			}
		}
	}
}
