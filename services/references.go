package services

import (
	"asset-tracker/repositories"
	"asset-tracker/utils"
	"fmt"

	"gorm.io/gorm"
)

func invalidReference(field string, id uint) error {
	return utils.NewValidationError(field, id, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
}

func requireLocation(tx *gorm.DB, field string, id uint) error {
	ok, err := repositories.NewLocationRepository(tx).Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return invalidReference(field, id)
	}
	return nil
}

func requireCategory(tx *gorm.DB, id uint) error {
	ok, err := repositories.NewCategoryRepository(tx).Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return invalidReference("category_id", id)
	}
	return nil
}

func requireUser(tx *gorm.DB, field string, id uint) error {
	ok, err := repositories.NewUserRepository(tx).Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return invalidReference(field, id)
	}
	return nil
}
