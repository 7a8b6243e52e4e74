package repositories

import (
	"errors"

	"jobportal/internal/models"

	"gorm.io/gorm"
)

var ErrUpvoteExists = errors.New("upvote already exists for this review and user")

type UpvoteRepository interface {
	Find(db *gorm.DB, reviewID uint, userName string) (*models.Upvote, error)
	Create(db *gorm.DB, upvote *models.Upvote) error
}

type UpvoteRepositoryImpl struct{}

func NewUpvoteRepository() UpvoteRepository {
	return &UpvoteRepositoryImpl{}
}

func (r *UpvoteRepositoryImpl) Find(db *gorm.DB, reviewID uint, userName string) (*models.Upvote, error) {
	var upvote models.Upvote
	err := db.First(&upvote, "review_id = ? AND user_name = ?", reviewID, userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &upvote, nil
}

// Create inserts a new upvote. A concurrent duplicate loses the race on the
// (review_id, user_name) unique index and gets ErrUpvoteExists back.
func (r *UpvoteRepositoryImpl) Create(db *gorm.DB, upvote *models.Upvote) error {
	err := db.Create(upvote).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUpvoteExists
	}
	return err
}
