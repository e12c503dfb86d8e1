package repositories

import (
	"asset-tracker/models"
	"asset-tracker/utils"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(DB *gorm.DB) *UserRepository {
	return &UserRepository{DB: DB}
}

// Create user
func (r *UserRepository) Create(user *models.User) error {
	return r.DB.Create(user).Error
}

// Get user by ID
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("user", id)
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) UsernameTaken(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Get all users
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

// ActiveToken returns the user's live token, or gorm.ErrRecordNotFound.
func (r *UserRepository) ActiveToken(userID uint, now time.Time) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.DB.
		Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, now).
		Order("id DESC").
		First(&token).Error
	return &token, err
}

func (r *UserRepository) CreateToken(token *models.AuthToken) error {
	return r.DB.Create(token).Error
}

func (r *UserRepository) FindSession(sessionID string, now time.Time) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.DB.
		Where("session_id = ? AND is_active = ? AND expires_at > ?", sessionID, true, now).
		First(&token).Error
	return &token, err
}

func (r *UserRepository) TouchSession(id uint, now time.Time) error {
	return r.DB.Model(&models.AuthToken{}).Where("id = ?", id).UpdateColumn("last_activity_at", now).Error
}

func (r *UserRepository) RevokeSession(sessionID string, now time.Time) (int64, error) {
	res := r.DB.Model(&models.AuthToken{}).
		Where("session_id = ? AND is_active = ?", sessionID, true).
		Updates(map[string]any{"is_active": false, "last_activity_at": now})
	return res.RowsAffected, res.Error
}
