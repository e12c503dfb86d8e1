package category

import (
	"asset-tracker/models"

	"gorm.io/gorm"
)

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Laptops"},
		{Name: "Networking"},
	}

	for _, c := range categories {
		var existing models.Category
		if err := db.Where("slug = ?", models.Slugify(c.Name)).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}
