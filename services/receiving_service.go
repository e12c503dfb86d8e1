package services

import (
	"asset-tracker/controllers/helpers"
	"asset-tracker/models"
	"asset-tracker/repositories"
	"asset-tracker/utils"
	"strings"

	"gorm.io/gorm"
)

type ReceivingService struct {
	DB *gorm.DB
}

func NewReceivingService(db *gorm.DB) *ReceivingService {
	return &ReceivingService{DB: db}
}

// ReceivingInput carries only inspector-supplied fields. Supplier, received_by, invoice_number
// and location always come from the consignment.
type ReceivingInput struct {
	ConsignmentID uint                   `json:"consignment_id" validate:"required"`
	SerialNumber  string                 `json:"serial_number" validate:"required,max=255"`
	Description   string                 `json:"description" validate:"required"`
	Name          *string                `json:"name" validate:"omitempty,max=255"`
	Model         *string                `json:"model" validate:"omitempty,max=255"`
	CategoryID    *uint                  `json:"category_id"`
	Status        models.ReceivingStatus `json:"status" validate:"omitempty,oneof=testing approved rejected pending"`
}

type ReceivingRecord struct {
	models.Receiving
	ReceivedByFullName string `json:"received_by_full_name"`
}

func receivingRecord(r *models.Receiving) ReceivingRecord {
	return ReceivingRecord{Receiving: *r, ReceivedByFullName: fullName(r.ReceivedBy)}
}

func (s *ReceivingService) List(f repositories.ReceivingFilter) ([]ReceivingRecord, error) {
	rows, err := repositories.NewReceivingRepository(s.DB).List(f)
	if err != nil {
		return nil, err
	}
	out := make([]ReceivingRecord, 0, len(rows))
	for i := range rows {
		out = append(out, receivingRecord(&rows[i]))
	}
	return out, nil
}

func (s *ReceivingService) Get(id uint) (*ReceivingRecord, error) {
	rec, err := repositories.NewReceivingRepository(s.DB).FindByID(id)
	if err != nil {
		return nil, err
	}
	out := receivingRecord(rec)
	return &out, nil
}

func (s *ReceivingService) Create(input ReceivingInput) (*ReceivingRecord, error) {
	var id uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		rec, err := createReceiving(tx, input)
		if err != nil {
			return err
		}
		id = rec.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Update replaces the inspector-supplied fields and saves, which re-pulls the derived fields from
// the consignment as it stands now.
func (s *ReceivingService) Update(id uint, input ReceivingInput) (*ReceivingRecord, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		rec, err := repositories.NewReceivingRepository(tx).FindByID(id)
		if err != nil {
			return err
		}
		if err := normalizeReceivingInput(&input); err != nil {
			return err
		}

		current := rec.Status
		applyReceivingInput(rec, input)
		if input.Status == "" {
			rec.Status = current
		}
		return saveReceiving(tx, rec)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// UpdateStatus accepts any receiving status and records the change.
func (s *ReceivingService) UpdateStatus(id uint, status string, actor uint) (*ReceivingRecord, error) {
	next := models.ReceivingStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return nil, invalidChoice("status", status)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		rec, err := repositories.NewReceivingRepository(tx).FindByID(id)
		if err != nil {
			return err
		}

		prev := rec.Status
		rec.Status = next
		if err := saveReceiving(tx, rec); err != nil {
			return err
		}
		return helpers.InsertTransactionHistory(tx, "receiving", rec.ID, string(prev), string(next), rec.SerialNumber, actor)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ReceivingService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return repositories.NewReceivingRepository(tx).Delete(id)
	})
}

func normalizeReceivingInput(input *ReceivingInput) error {
	input.SerialNumber = strings.TrimSpace(input.SerialNumber)
	input.Description = strings.TrimSpace(input.Description)
	return utils.ValidateStruct(*input)
}

func applyReceivingInput(rec *models.Receiving, input ReceivingInput) {
	rec.ConsignmentID = input.ConsignmentID
	rec.SerialNumber = input.SerialNumber
	rec.Description = input.Description
	rec.Name = input.Name
	rec.Model = input.Model
	rec.CategoryID = input.CategoryID
	rec.Status = input.Status
}

// createReceiving is the single insert path for the API, the spreadsheet import and the
// manifest processor. tx must be a transaction.
func createReceiving(tx *gorm.DB, input ReceivingInput) (*models.Receiving, error) {
	if err := normalizeReceivingInput(&input); err != nil {
		return nil, err
	}

	rec := &models.Receiving{}
	applyReceivingInput(rec, input)
	if err := saveReceiving(tx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// saveReceiving checks the parent and both serial rules before writing. The table-wide serial
// check runs first; the unique indexes catch whatever slips past it concurrently.
func saveReceiving(tx *gorm.DB, rec *models.Receiving) error {
	if _, err := repositories.NewConsignmentRepository(tx).FindByID(rec.ConsignmentID); err != nil {
		return err
	}
	if rec.CategoryID != nil {
		if err := requireCategory(tx, *rec.CategoryID); err != nil {
			return err
		}
	}

	repo := repositories.NewReceivingRepository(tx)
	inUse, err := repo.SerialInUse(rec.SerialNumber, rec.ID)
	if err != nil {
		return err
	}
	if inUse {
		return utils.DuplicateSerialError(rec.SerialNumber, "")
	}

	rec.Consignment = nil
	rec.Category = nil
	rec.ReceivedBy = nil
	rec.Location = nil
	return repo.Save(rec)
}

func invalidChoice(field, value string) error {
	return utils.NewValidationError(field, value, "\""+value+"\" is not a valid choice.")
}
