package repositories

import (
	"asset-tracker/models"
	"asset-tracker/utils"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConsignmentRepository struct {
	db *gorm.DB
}

func NewConsignmentRepository(db *gorm.DB) *ConsignmentRepository {
	return &ConsignmentRepository{db: db}
}

type ConsignmentFilter struct {
	Q string
}

// FormatConsignmentCode renders n as SLK followed by at least three digits: SLK001, SLK042, SLK1000.
func FormatConsignmentCode(n uint) string {
	return fmt.Sprintf("SLK%03d", n)
}

// NextIdentifier is the code the next insert would receive if nothing else is inserted first.
// It is informational only; Create assigns the real code.
func (r *ConsignmentRepository) NextIdentifier() (string, error) {
	var maxID uint
	if err := r.db.Model(&models.Consignment{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return "", err
	}
	return FormatConsignmentCode(maxID + 1), nil
}

// Create inserts c and assigns its SLK code from the serial id the store handed out. Both writes
// must run inside the caller's transaction; the unique index on slk_id is the final guard.
func (r *ConsignmentRepository) Create(c *models.Consignment) error {
	c.SlkID = nil
	if err := r.db.Omit(clause.Associations).Create(c).Error; err != nil {
		return err
	}

	code := FormatConsignmentCode(c.ID)
	if err := r.db.Model(c).UpdateColumn("slk_id", code).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return utils.NewValidationError("slk_id", code, "Consignment with this identifier already exists.")
		}
		return err
	}
	c.SlkID = &code
	return nil
}

// Update saves the editable columns. The SLK code never changes after creation.
func (r *ConsignmentRepository) Update(c *models.Consignment) error {
	return r.db.Omit(clause.Associations, "slk_id", "created_at").Save(c).Error
}

func (r *ConsignmentRepository) FindByID(id uint) (*models.Consignment, error) {
	var c models.Consignment
	err := r.db.Preload("Location").Preload("ReceivedBy").First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("consignment", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *ConsignmentRepository) FindByCode(code string) (*models.Consignment, error) {
	var c models.Consignment
	err := r.db.Where("slk_id = ?", code).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("consignment", code)
		}
		return nil, err
	}
	return &c, nil
}

func (r *ConsignmentRepository) List(f ConsignmentFilter) ([]models.Consignment, error) {
	var out []models.Consignment
	err := r.db.
		Preload("Location").
		Preload("ReceivedBy").
		Scopes(Search(f.Q, "slk_id", "supplier", "invoice_number", "project")).
		Order("id").
		Find(&out).Error
	return out, err
}

// Delete removes the consignment together with its receivings and everything below them.
func (r *ConsignmentRepository) Delete(id uint) error {
	if _, err := r.FindByID(id); err != nil {
		return err
	}
	return deleteConsignments(r.db, []uint{id})
}
