package repositories

import (
	"jobportal/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindAll(db *gorm.DB) ([]models.Application, error)
	FindByUser(db *gorm.DB, userName string) ([]models.Application, error)
	FindByJobIDs(db *gorm.DB, jobIDs []uint) ([]models.Application, error)
	AppliedJobIDs(db *gorm.DB, userName string) ([]uint, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create inserts unconditionally. Neither job existence nor prior application
// is checked; both gaps are documented system behavior.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB) ([]models.Application, error) {
	var applications []models.Application
	if err := db.Order("applied_at desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(db *gorm.DB, userName string) ([]models.Application, error) {
	var applications []models.Application
	if err := db.Where("user_name = ?", userName).Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindByJobIDs(db *gorm.DB, jobIDs []uint) ([]models.Application, error) {
	if len(jobIDs) == 0 {
		return []models.Application{}, nil
	}
	var applications []models.Application
	if err := db.Where("job_id IN ?", jobIDs).Order("applied_at desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) AppliedJobIDs(db *gorm.DB, userName string) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.Application{}).
		Where("user_name = ?", userName).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
