package repositories

import (
	"asset-tracker/models"
	"asset-tracker/utils"
	"errors"

	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) GetAll() ([]models.Location, error) {
	var out []models.Location
	err := r.db.Order("name").Find(&out).Error
	return out, err
}

func (r *LocationRepository) GetByID(id uint) (*models.Location, error) {
	var l models.Location
	if err := r.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("location", id)
		}
		return nil, err
	}
	return &l, nil
}

func (r *LocationRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Location{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *LocationRepository) SlugInUse(slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Location{}).Where("slug = ? AND id <> ?", slug, excludeID).Count(&count).Error
	return count > 0, err
}

func (r *LocationRepository) Save(l *models.Location) error {
	if err := r.db.Save(l).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return utils.NewValidationError("slug", l.Slug, "Location with this slug already exists.")
		}
		return err
	}
	return nil
}

// Delete removes the location and the consignments received there. Receivings, assets and
// dispatches that only point at it keep their rows with the location cleared.
func (r *LocationRepository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	if err := nullifyLocation(r.db, id); err != nil {
		return err
	}

	var consignmentIDs []uint
	if err := r.db.Model(&models.Consignment{}).Where("location_id = ?", id).Pluck("id", &consignmentIDs).Error; err != nil {
		return err
	}
	if err := deleteConsignments(r.db, consignmentIDs); err != nil {
		return err
	}
	return r.db.Delete(&models.Location{}, id).Error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	var out []models.Category
	err := r.db.Order("name").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var c models.Category
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("category", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var c models.Category
	if err := r.db.Where("slug = ?", slug).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("category", slug)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) SlugInUse(slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ? AND id <> ?", slug, excludeID).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Save(c *models.Category) error {
	if err := r.db.Save(c).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return utils.NewValidationError("slug", c.Slug, "Category with this slug already exists.")
		}
		return err
	}
	return nil
}

// Delete clears the category on its receivings before removing it.
func (r *CategoryRepository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	if err := r.db.Model(&models.Receiving{}).Where("category_id = ?", id).UpdateColumn("category_id", nil).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Category{}, id).Error
}
