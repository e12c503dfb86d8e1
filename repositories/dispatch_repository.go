package repositories

import (
	"asset-tracker/models"
	"asset-tracker/utils"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DispatchRepository struct {
	db *gorm.DB
}

func NewDispatchRepository(db *gorm.DB) *DispatchRepository {
	return &DispatchRepository{db: db}
}

type DispatchFilter struct {
	Q      string
	Status string
}

func (r *DispatchRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Asset").
		Preload("User").
		Preload("Approver").
		Preload("Location")
}

// List searches q over the asset tag and the requester and approver usernames.
func (r *DispatchRepository) List(f DispatchFilter) ([]models.Dispatch, error) {
	q := r.preloaded().Scopes(StatusIs("status", f.Status))

	if term := strings.TrimSpace(f.Q); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		assets := r.db.Model(&models.Asset{}).Select("id").Where("LOWER(tag_number) LIKE ?", like)
		users := r.db.Model(&models.User{}).Select("id").Where("LOWER(username) LIKE ?", like)
		q = q.Where("(asset_id IN (?) OR user_id IN (?) OR approver_id IN (?))", assets, users, users)
	}

	var out []models.Dispatch
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *DispatchRepository) FindByID(id uint) (*models.Dispatch, error) {
	var d models.Dispatch
	if err := r.preloaded().First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("dispatch", id)
		}
		return nil, err
	}
	return &d, nil
}

func (r *DispatchRepository) Save(d *models.Dispatch) error {
	return r.db.Omit(clause.Associations).Save(d).Error
}

func (r *DispatchRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Dispatch{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NewNotFoundError("dispatch", id)
	}
	return nil
}
