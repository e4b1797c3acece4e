package services

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell-be/internal/database"
	"github.com/inkwell/inkwell-be/internal/models"
)

// UserServiceProvider defines the interface for user account services.
type UserServiceProvider interface {
	Register(name, email, password string) (models.PublicUser, error)
	VerifyCredentials(email, password string) (models.User, error)
	GetUserByID(id string) (models.PublicUser, error)
}

// UserService owns password hashing, credential verification and account
// creation.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user, hashing their password with a per-user
// salt. Returns models.ErrDuplicateEmail when the email is taken.
func (s *UserService) Register(name, email, password string) (models.PublicUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if database.IsUniqueConstraintError(err) {
			return models.PublicUser{}, models.ErrDuplicateEmail
		}
		return models.PublicUser{}, err
	}

	return user.Public(), nil
}

// VerifyCredentials checks a plaintext password against the stored hash
// for the account registered under email. Returns models.ErrUserNotFound
// when no such account exists and models.ErrInvalidCredentials when the
// password does not match. The bcrypt comparison is not naive string
// equality; it re-derives the hash under the stored salt.
func (s *UserService) VerifyCredentials(email, password string) (models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, database.ConvertNotFoundError(err, models.ErrUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, models.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.PublicUser, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return models.PublicUser{}, database.ConvertNotFoundError(err, models.ErrUserNotFound)
	}
	return user.Public(), nil
}
