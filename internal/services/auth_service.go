package services

import (
	"jobportal/internal/models"
	"jobportal/internal/repositories"
	"jobportal/internal/services/dto"
	"jobportal/pkg/apperrors"

	"gorm.io/gorm"
)

// Hardcoded admin credentials. The admin never exists as a user row; an
// admin session is granted directly at login.
const (
	adminUsername = "admin"
	adminPassword = "admin"
)

type AuthService interface {
	// Login verifies credentials and returns the session identity.
	Login(db *gorm.DB, req *dto.LoginRequest) (username string, role models.UserRole, err error)

	// Signup registers a new user and fires the welcome email best-effort.
	Signup(db *gorm.DB, req *dto.SignupRequest) error
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	notification NotificationService
}

func NewAuthService(userRepo repositories.UserRepository, notification NotificationService) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		notification: notification,
	}
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (string, models.UserRole, error) {
	if req.Username == adminUsername && req.Password == adminPassword {
		return adminUsername, models.UserRoleAdmin, nil
	}

	user, err := s.userRepo.FindByUserName(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", "", apperrors.ErrInvalidCredentials
		}
		return "", "", apperrors.DatabaseError(err)
	}

	// Plaintext comparison is this system's documented behavior.
	if req.Password != user.Password {
		return "", "", apperrors.ErrInvalidCredentials
	}

	return user.UserName, user.Type, nil
}

func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) error {
	user := &models.User{
		UserName: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Type:     models.UserRole(req.Role),
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrUsernameTaken
		}
		return apperrors.DatabaseError(err)
	}

	// Best effort; the redirect does not wait on delivery status.
	s.notification.SendWelcome(user.Email, user.UserName, user.Password, user.Type)

	return nil
}
