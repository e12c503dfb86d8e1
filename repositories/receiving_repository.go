package repositories

import (
	"asset-tracker/models"
	"asset-tracker/utils"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReceivingRepository struct {
	db *gorm.DB
}

func NewReceivingRepository(db *gorm.DB) *ReceivingRepository {
	return &ReceivingRepository{db: db}
}

type ReceivingFilter struct {
	Q          string
	Status     string
	CategoryID *uint
}

func (r *ReceivingRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Consignment").
		Preload("Category").
		Preload("ReceivedBy").
		Preload("Location")
}

func (r *ReceivingRepository) List(f ReceivingFilter) ([]models.Receiving, error) {
	q := r.preloaded().
		Scopes(
			Search(f.Q, "serial_number", "name", "description", "supplier", "invoice_number"),
			StatusIs("status", f.Status),
		)
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	var out []models.Receiving
	err := q.Order("id").Find(&out).Error
	return out, err
}

// ListApproved is the set of receivings an asset may be created from.
func (r *ReceivingRepository) ListApproved() ([]models.Receiving, error) {
	return r.List(ReceivingFilter{Status: string(models.ReceivingApproved)})
}

func (r *ReceivingRepository) FindByID(id uint) (*models.Receiving, error) {
	var rec models.Receiving
	if err := r.preloaded().First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("receiving", id)
		}
		return nil, err
	}
	return &rec, nil
}

// FindApproved returns the receiving only when it belongs to the approved set. An unknown id is a
// NotFoundError; a known but unapproved one is a ValidationError on receiving_id.
func (r *ReceivingRepository) FindApproved(id uint) (*models.Receiving, error) {
	var rec models.Receiving
	err := r.db.Where("status = ?", models.ReceivingApproved).First(&rec, id).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var count int64
	if err := r.db.Model(&models.Receiving{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, utils.NewNotFoundError("receiving", id)
	}
	return nil, utils.NewValidationError("receiving_id", id, "Select a valid choice. That choice is not one of the available choices.")
}

// SerialInUse reports whether any receiving other than excludeID already carries serial,
// whatever consignment it belongs to.
func (r *ReceivingRepository) SerialInUse(serial string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Receiving{}).
		Where("serial_number = ? AND id <> ?", serial, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Save writes rec; the BeforeSave hook re-derives the consignment fields first. A unique index
// rejection is reported as the consignment-scoped duplicate serial error.
func (r *ReceivingRepository) Save(rec *models.Receiving) error {
	if err := r.db.Omit(clause.Associations).Save(rec).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return utils.DuplicateSerialError(rec.SerialNumber, "consignment")
		}
		return err
	}
	return nil
}

func (r *ReceivingRepository) Delete(id uint) error {
	var count int64
	if err := r.db.Model(&models.Receiving{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.NewNotFoundError("receiving", id)
	}
	return deleteReceivings(r.db, []uint{id})
}
