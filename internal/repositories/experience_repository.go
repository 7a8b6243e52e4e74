package repositories

import (
	"errors"

	"jobportal/internal/models"

	"gorm.io/gorm"
)

var ErrExperienceNotFound = errors.New("experience not found")

type ExperienceRepository interface {
	FindByUserName(db *gorm.DB, userName string) (*models.Experience, error)
	Create(db *gorm.DB, experience *models.Experience) error
	Update(db *gorm.DB, experience *models.Experience) error
}

type ExperienceRepositoryImpl struct{}

func NewExperienceRepository() ExperienceRepository {
	return &ExperienceRepositoryImpl{}
}

func (r *ExperienceRepositoryImpl) FindByUserName(db *gorm.DB, userName string) (*models.Experience, error) {
	var experience models.Experience
	err := db.First(&experience, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepositoryImpl) Create(db *gorm.DB, experience *models.Experience) error {
	return db.Create(experience).Error
}

func (r *ExperienceRepositoryImpl) Update(db *gorm.DB, experience *models.Experience) error {
	return db.Save(experience).Error
}
