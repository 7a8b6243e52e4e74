package services

import (
	"jobportal/internal/models"
	"jobportal/internal/repositories"
	"jobportal/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	ListUsers(db *gorm.DB) ([]models.User, error)
	DeleteUser(db *gorm.DB, userName string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return users, nil
}

// DeleteUser removes the row only. The user's jobs, applications, reviews and
// upvotes are left in place, orphaned references included.
func (s *UserServiceImpl) DeleteUser(db *gorm.DB, userName string) error {
	if err := s.userRepo.Delete(db, userName); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
