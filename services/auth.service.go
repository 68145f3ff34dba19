package services

import (
	"errors"
	"log"

	"enrollapp/config"
	"enrollapp/models"
	"enrollapp/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns user registration, credential checks and account
// activation state.
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a new account. Only the bcrypt hash of the password is
// stored.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	// Check if email already exists
	if err := s.db.Where("email = ?", input.Email).First(&models.User{}).Error; err == nil {
		return nil, Conflict("User with this email already exists!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, err
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     input.Role,
		IsActive: true,
	}

	if err := s.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("User with this email already exists!")
		}
		log.Printf("Error saving user to database: %v", err)
		return nil, err
	}

	if s.cfg.EmailSender != "" {
		go utils.SendWelcomeEmail(s.cfg, newUser.Email, newUser.Name)
	}

	return &newUser, nil
}

// Login validates credentials and returns the matching account. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, Unauthorized("Invalid credentials!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, Unauthorized("Invalid credentials!")
	}

	if !user.IsActive {
		return nil, Forbidden("Inactive user!")
	}

	return &user, nil
}

// DeactivateUser disables a target account. Admins cannot deactivate
// themselves. Deactivating an already inactive account succeeds with an
// informational message so repeated admin actions stay safe.
func (s *AuthService) DeactivateUser(adminID, targetID uuid.UUID) (string, error) {
	if adminID == targetID {
		return "", Forbidden("Admins cannot deactivate themselves!")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		return "", NotFound("User not found!")
	}

	if !user.IsActive {
		return "User is already inactive.", nil
	}

	user.IsActive = false
	if err := s.db.Save(&user).Error; err != nil {
		return "", err
	}

	return "User deactivated successfully.", nil
}

// ActivateUser is the idempotent counterpart of DeactivateUser.
func (s *AuthService) ActivateUser(targetID uuid.UUID) (string, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		return "", NotFound("User not found!")
	}

	if user.IsActive {
		return "User is already active.", nil
	}

	user.IsActive = true
	if err := s.db.Save(&user).Error; err != nil {
		return "", err
	}

	return "User activated successfully.", nil
}
