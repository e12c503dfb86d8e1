package repositories

import (
	"asset-tracker/models"
	"asset-tracker/utils"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

type AssetFilter struct {
	Q      string
	Status string
}

func (r *AssetRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Receiving").
		Preload("ReceivedBy").
		Preload("Location")
}

func (r *AssetRepository) List(f AssetFilter) ([]models.Asset, error) {
	var out []models.Asset
	err := r.preloaded().
		Scopes(
			Search(f.Q, "tag_number", "description", "serial_number", "name", "model"),
			StatusIs("status", f.Status),
		).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *AssetRepository) FindByID(id uint) (*models.Asset, error) {
	var a models.Asset
	if err := r.preloaded().First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("asset", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssetRepository) TagInUse(tag string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Asset{}).
		Where("tag_number = ? AND id <> ?", tag, excludeID).
		Count(&count).Error
	return count > 0, err
}

// SerialInUseForReceiving checks the (serial_number, receiving) pair only. Assets have no
// table-wide serial rule.
func (r *AssetRepository) SerialInUseForReceiving(serial string, receivingID, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Asset{}).
		Where("serial_number = ? AND receiving_id = ? AND id <> ?", serial, receivingID, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *AssetRepository) Save(a *models.Asset) error {
	if err := r.db.Omit(clause.Associations).Save(a).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return utils.NewValidationError("", nil, "An asset with this tag number or serial number already exists.")
		}
		return err
	}
	return nil
}

func (r *AssetRepository) Delete(id uint) error {
	var count int64
	if err := r.db.Model(&models.Asset{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NewNotFoundError("asset", id)
	}
	return deleteAssets(r.db, []uint{id})
}
