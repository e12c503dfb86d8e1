package services

import (
	"asset-tracker/controllers/helpers"
	"asset-tracker/models"
	"asset-tracker/repositories"
	"asset-tracker/utils"
	"strings"

	"gorm.io/gorm"
)

type DispatchService struct {
	DB *gorm.DB
}

func NewDispatchService(db *gorm.DB) *DispatchService {
	return &DispatchService{DB: db}
}

type DispatchInput struct {
	AssetID     uint                  `json:"asset_id" validate:"required"`
	ApproverID  uint                  `json:"approver_id" validate:"required"`
	Status      models.DispatchStatus `json:"status" validate:"required,oneof=pending dispatched delivered"`
	Comments    *string               `json:"comments"`
	Destination *string               `json:"destination" validate:"omitempty,max=255"`
	LocationID  *uint                 `json:"location_id"`
}

type DispatchRecord struct {
	models.Dispatch
	UserFullName     string `json:"user_full_name"`
	ApproverFullName string `json:"approver_full_name"`
}

func dispatchRecord(d *models.Dispatch) DispatchRecord {
	return DispatchRecord{
		Dispatch:         *d,
		UserFullName:     fullName(d.User),
		ApproverFullName: fullName(d.Approver),
	}
}

// ValidateDispatchCreation is the dispatch gate: only an available asset can be dispatched.
// It is checked once, when the dispatch is created.
func ValidateDispatchCreation(asset *models.Asset) error {
	if asset.Status != models.AssetAvailable {
		return utils.NewPreconditionError("asset not available")
	}
	return nil
}

func (s *DispatchService) List(f repositories.DispatchFilter) ([]DispatchRecord, error) {
	rows, err := repositories.NewDispatchRepository(s.DB).List(f)
	if err != nil {
		return nil, err
	}
	out := make([]DispatchRecord, 0, len(rows))
	for i := range rows {
		out = append(out, dispatchRecord(&rows[i]))
	}
	return out, nil
}

func (s *DispatchService) Get(id uint) (*DispatchRecord, error) {
	d, err := repositories.NewDispatchRepository(s.DB).FindByID(id)
	if err != nil {
		return nil, err
	}
	out := dispatchRecord(d)
	return &out, nil
}

// Create records a dispatch requested by userID. The asset's own status is left as it is.
func (s *DispatchService) Create(input DispatchInput, userID uint) (*DispatchRecord, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	var id uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		asset, err := repositories.NewAssetRepository(tx).FindByID(input.AssetID)
		if err != nil {
			return err
		}
		if err := ValidateDispatchCreation(asset); err != nil {
			return err
		}
		if err := requireUser(tx, "approver_id", input.ApproverID); err != nil {
			return err
		}
		if input.LocationID != nil {
			if err := requireLocation(tx, "location_id", *input.LocationID); err != nil {
				return err
			}
		}

		dispatch := &models.Dispatch{
			AssetID:     asset.ID,
			UserID:      userID,
			ApproverID:  input.ApproverID,
			Status:      input.Status,
			Comments:    input.Comments,
			Destination: input.Destination,
			LocationID:  models.DeriveDispatchLocation(input.LocationID, asset),
		}
		if err := repositories.NewDispatchRepository(tx).Save(dispatch); err != nil {
			return err
		}
		id = dispatch.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *DispatchService) UpdateStatus(id uint, status string, actor uint) (*DispatchRecord, error) {
	next := models.DispatchStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return nil, invalidChoice("status", status)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewDispatchRepository(tx)
		d, err := repo.FindByID(id)
		if err != nil {
			return err
		}

		prev := d.Status
		d.Status = next
		d.Asset = nil
		d.User = nil
		d.Approver = nil
		d.Location = nil
		if err := repo.Save(d); err != nil {
			return err
		}
		return helpers.InsertTransactionHistory(tx, "dispatch", d.ID, string(prev), string(next), "", actor)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *DispatchService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return repositories.NewDispatchRepository(tx).Delete(id)
	})
}
