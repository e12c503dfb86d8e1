package services

import (
	"asset-tracker/config"
	"asset-tracker/models"
	"asset-tracker/repositories"
	"asset-tracker/utils"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	Username  string  `json:"username" validate:"required,max=150"`
	Password  string  `json:"password" validate:"required"`
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName string  `json:"first_name" validate:"max=150"`
	LastName  string  `json:"last_name" validate:"max=150"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is what the client receives after register or login.
type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

func (s *AuthService) Register(input RegisterInput) (*Session, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var session *Session
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewUserRepository(tx)

		taken, err := repo.UsernameTaken(input.Username)
		if err != nil {
			return err
		}
		if taken {
			return utils.NewValidationError("username", input.Username, "A user with that username already exists.")
		}

		user := &models.User{
			Username:  input.Username,
			Password:  string(hashed),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			IsActive:  true,
		}
		if err := repo.Create(user); err != nil {
			if utils.IsUniqueViolation(err) {
				return utils.NewValidationError("username", input.Username, "A user with that username already exists.")
			}
			return err
		}

		session, err = issueToken(repo, user, time.Now())
		return err
	})
	return session, err
}

// Login reuses the user's live token when there is one and issues a new one otherwise.
func (s *AuthService) Login(input LoginInput) (*Session, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	var session *Session
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewUserRepository(tx)

		user, err := repo.GetByUsername(input.Username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewAuthError("Unable to log in with provided credentials.")
			}
			return err
		}
		if !user.IsActive || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			return utils.NewAuthError("Unable to log in with provided credentials.")
		}

		now := time.Now()
		active, err := repo.ActiveToken(user.ID, now)
		if err == nil {
			session = &Session{Token: active.Key, ExpiresAt: active.ExpiresAt, User: user}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		session, err = issueToken(repo, user, now)
		return err
	})
	return session, err
}

// Authenticate verifies a bearer token and returns the stored session it belongs to.
func (s *AuthService) Authenticate(tokenString string) (*models.AuthToken, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, utils.NewAuthError("Invalid token.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, utils.NewAuthError("Invalid token.")
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return nil, utils.NewAuthError("Invalid token.")
	}

	now := time.Now()
	repo := repositories.NewUserRepository(s.DB)
	stored, err := repo.FindSession(sessionID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAuthError("Invalid token.")
		}
		return nil, err
	}
	if stored.Key != tokenString {
		return nil, utils.NewAuthError("Invalid token.")
	}

	if err := repo.TouchSession(stored.ID, now); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *AuthService) Logout(sessionID string) error {
	n, err := repositories.NewUserRepository(s.DB).RevokeSession(sessionID, time.Now())
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.NewAuthError("Invalid session.")
	}
	return nil
}

func issueToken(repo *repositories.UserRepository, user *models.User, now time.Time) (*Session, error) {
	sessionID := uuid.NewString()
	expiresAt := now.Add(time.Duration(config.JWTExpiration) * time.Second)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
		"jti":        sessionID,
	}).SignedString([]byte(config.JWTSecret))
	if err != nil {
		return nil, err
	}

	token := &models.AuthToken{
		UserID:         user.ID,
		SessionID:      sessionID,
		Key:            signed,
		IsActive:       true,
		ExpiresAt:      expiresAt,
		LastActivityAt: now,
	}
	if err := repo.CreateToken(token); err != nil {
		return nil, err
	}
	return &Session{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}
