package services

import (
	"asset-tracker/models"
	"asset-tracker/repositories"
)

type UserService struct {
	repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Get user by ID
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// Get all users
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// UserOption is the compact form used when picking a requester or approver.
type UserOption struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func (s *UserService) GetUserOptions() ([]UserOption, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]UserOption, 0, len(users))
	for i := range users {
		out = append(out, UserOption{
			ID:       users[i].ID,
			Username: users[i].Username,
			FullName: fullName(&users[i]),
		})
	}
	return out, nil
}

// fullName is "First Last", or "N/A" when the user is missing or has no name on record.
func fullName(u *models.User) string {
	if name := u.FullName(); name != "" {
		return name
	}
	return "N/A"
}
