package services

import (
	"asset-tracker/models"
	"asset-tracker/repositories"
	"asset-tracker/utils"
	"strings"

	"gorm.io/gorm"
)

// CatalogInput is the payload for locations and categories. A nil Slug keeps the stored slug,
// an empty one asks for it to be derived again from Name.
type CatalogInput struct {
	Name string  `json:"name" validate:"required,max=255"`
	Slug *string `json:"slug" validate:"omitempty,max=255"`
}

// resolveSlug applies the slug rules shared by locations and categories.
func resolveSlug(current string, input CatalogInput) (string, error) {
	slug := current
	if input.Slug != nil {
		slug = models.Slugify(*input.Slug)
	}
	if slug == "" {
		slug = models.Slugify(input.Name)
	}
	if slug == "" {
		return "", utils.NewValidationError("slug", input.Name, "Enter a name that produces a valid slug.")
	}
	return slug, nil
}

func normalizeCatalogInput(input *CatalogInput) error {
	input.Name = strings.TrimSpace(input.Name)
	return utils.ValidateStruct(*input)
}

type LocationService struct {
	DB *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{DB: db}
}

func (s *LocationService) GetAll() ([]models.Location, error) {
	return repositories.NewLocationRepository(s.DB).GetAll()
}

func (s *LocationService) Get(id uint) (*models.Location, error) {
	return repositories.NewLocationRepository(s.DB).GetByID(id)
}

func (s *LocationService) Create(input CatalogInput, actor uint) (*models.Location, error) {
	return s.save(0, input, actor)
}

func (s *LocationService) Update(id uint, input CatalogInput, actor uint) (*models.Location, error) {
	return s.save(id, input, actor)
}

func (s *LocationService) save(id uint, input CatalogInput, actor uint) (*models.Location, error) {
	if err := normalizeCatalogInput(&input); err != nil {
		return nil, err
	}

	var location *models.Location
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewLocationRepository(tx)

		location = &models.Location{CreatedBy: actor}
		if id != 0 {
			var err error
			if location, err = repo.GetByID(id); err != nil {
				return err
			}
		}

		slug, err := resolveSlug(location.Slug, input)
		if err != nil {
			return err
		}
		taken, err := repo.SlugInUse(slug, location.ID)
		if err != nil {
			return err
		}
		if taken {
			return utils.NewValidationError("slug", slug, "Location with this slug already exists.")
		}

		location.Name = input.Name
		location.Slug = slug
		location.UpdatedBy = actor
		return repo.Save(location)
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (s *LocationService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return repositories.NewLocationRepository(tx).Delete(id)
	})
}

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) GetAll() ([]models.Category, error) {
	return repositories.NewCategoryRepository(s.DB).GetAll()
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	return repositories.NewCategoryRepository(s.DB).GetByID(id)
}

func (s *CategoryService) Create(input CatalogInput, actor uint) (*models.Category, error) {
	return s.save(0, input, actor)
}

func (s *CategoryService) Update(id uint, input CatalogInput, actor uint) (*models.Category, error) {
	return s.save(id, input, actor)
}

func (s *CategoryService) save(id uint, input CatalogInput, actor uint) (*models.Category, error) {
	if err := normalizeCatalogInput(&input); err != nil {
		return nil, err
	}

	var category *models.Category
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewCategoryRepository(tx)

		category = &models.Category{CreatedBy: actor}
		if id != 0 {
			var err error
			if category, err = repo.GetByID(id); err != nil {
				return err
			}
		}

		slug, err := resolveSlug(category.Slug, input)
		if err != nil {
			return err
		}
		taken, err := repo.SlugInUse(slug, category.ID)
		if err != nil {
			return err
		}
		if taken {
			return utils.NewValidationError("slug", slug, "Category with this slug already exists.")
		}

		category.Name = input.Name
		category.Slug = slug
		category.UpdatedBy = actor
		return repo.Save(category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return repositories.NewCategoryRepository(tx).Delete(id)
	})
}
