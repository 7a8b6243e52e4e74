package repositories

import (
	"errors"

	"jobportal/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id uint) (*models.Review, error)
	FindAll(db *gorm.DB) ([]models.Review, error)
	FindByJobTitle(db *gorm.DB, jobTitle string) ([]models.Review, error)
	Delete(db *gorm.DB, id uint) error
	IncrementUpvotes(db *gorm.DB, id uint) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindAll(db *gorm.DB) ([]models.Review, error) {
	var reviews []models.Review
	if err := db.Order("id desc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByJobTitle matches the title exactly; there is no substring or fuzzy
// search.
func (r *ReviewRepositoryImpl) FindByJobTitle(db *gorm.DB, jobTitle string) ([]models.Review, error) {
	var reviews []models.Review
	if err := db.Where("job_title = ?", jobTitle).Order("id desc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) IncrementUpvotes(db *gorm.DB, id uint) error {
	return db.Model(&models.Review{}).
		Where("id = ?", id).
		UpdateColumn("upvote_count", gorm.Expr("upvote_count + 1")).Error
}
