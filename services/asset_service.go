package services

import (
	"asset-tracker/controllers/helpers"
	"asset-tracker/models"
	"asset-tracker/repositories"
	"asset-tracker/utils"
	"strings"

	"gorm.io/gorm"
)

type AssetService struct {
	DB *gorm.DB
}

func NewAssetService(db *gorm.DB) *AssetService {
	return &AssetService{DB: db}
}

// AssetInput holds the only user-assigned asset fields. Everything descriptive is copied from
// the receiving.
type AssetInput struct {
	ReceivingID uint               `json:"receiving_id" validate:"required"`
	TagNumber   string             `json:"tag_number" validate:"required,max=255"`
	Status      models.AssetStatus `json:"status" validate:"omitempty,oneof=in_use available maintenance decommissioned"`
}

type AssetRecord struct {
	models.Asset
	ReceivedByFullName string `json:"received_by_full_name"`
}

func assetRecord(a *models.Asset) AssetRecord {
	return AssetRecord{Asset: *a, ReceivedByFullName: fullName(a.ReceivedBy)}
}

func (s *AssetService) List(f repositories.AssetFilter) ([]AssetRecord, error) {
	rows, err := repositories.NewAssetRepository(s.DB).List(f)
	if err != nil {
		return nil, err
	}
	out := make([]AssetRecord, 0, len(rows))
	for i := range rows {
		out = append(out, assetRecord(&rows[i]))
	}
	return out, nil
}

func (s *AssetService) Get(id uint) (*AssetRecord, error) {
	a, err := repositories.NewAssetRepository(s.DB).FindByID(id)
	if err != nil {
		return nil, err
	}
	out := assetRecord(a)
	return &out, nil
}

// ReceivingOptions is the valid-parent set for Create: approved receivings only.
func (s *AssetService) ReceivingOptions() ([]ReceivingRecord, error) {
	rows, err := repositories.NewReceivingRepository(s.DB).ListApproved()
	if err != nil {
		return nil, err
	}
	out := make([]ReceivingRecord, 0, len(rows))
	for i := range rows {
		out = append(out, receivingRecord(&rows[i]))
	}
	return out, nil
}

// Create takes its parent from the approved set only. The serial rule is the per-receiving pair;
// there is no table-wide serial check for assets.
func (s *AssetService) Create(input AssetInput) (*AssetRecord, error) {
	input.TagNumber = strings.TrimSpace(input.TagNumber)
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	var id uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		receiving, err := repositories.NewReceivingRepository(tx).FindApproved(input.ReceivingID)
		if err != nil {
			return err
		}

		repo := repositories.NewAssetRepository(tx)
		taken, err := repo.TagInUse(input.TagNumber, 0)
		if err != nil {
			return err
		}
		if taken {
			return utils.NewValidationError("tag_number", input.TagNumber, "Asset with this tag number already exists.")
		}

		dup, err := repo.SerialInUseForReceiving(receiving.SerialNumber, receiving.ID, 0)
		if err != nil {
			return err
		}
		if dup {
			return utils.DuplicateAssetSerialError(receiving.SerialNumber)
		}

		asset := &models.Asset{
			ReceivingID: receiving.ID,
			TagNumber:   input.TagNumber,
			Status:      input.Status,
		}
		if err := repo.Save(asset); err != nil {
			return err
		}
		id = asset.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// UpdateStatus is the only edit an asset takes after creation. Saving re-copies the receiving's
// current fields.
func (s *AssetService) UpdateStatus(id uint, status string, actor uint) (*AssetRecord, error) {
	next := models.AssetStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return nil, invalidChoice("status", status)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewAssetRepository(tx)
		asset, err := repo.FindByID(id)
		if err != nil {
			return err
		}

		prev := asset.Status
		asset.Status = next
		asset.Receiving = nil
		asset.ReceivedBy = nil
		asset.Location = nil
		if err := repo.Save(asset); err != nil {
			return err
		}
		return helpers.InsertTransactionHistory(tx, "asset", asset.ID, string(prev), string(next), asset.TagNumber, actor)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *AssetService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return repositories.NewAssetRepository(tx).Delete(id)
	})
}
