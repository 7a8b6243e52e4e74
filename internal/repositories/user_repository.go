package repositories

import (
	"errors"

	"jobportal/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByUserName(db *gorm.DB, userName string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Delete(db *gorm.DB, userName string) error
	FindAll(db *gorm.DB) ([]models.User, error)
	AllEmails(db *gorm.DB) ([]string, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByUserName(db *gorm.DB, userName string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	// Case-sensitive exact match, same as the login lookup.
	var existing models.User
	err := db.First(&existing, "user_name = ?", user.UserName).Error
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userName string) error {
	// No cascading cleanup of the user's jobs, applications, reviews or
	// upvotes. Orphaned references are an accepted property of the system.
	result := db.Delete(&models.User{}, "user_name = ?", userName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("user_name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) AllEmails(db *gorm.DB) ([]string, error) {
	var emails []string
	if err := db.Model(&models.User{}).Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
