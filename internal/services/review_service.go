package services

import (
	"strings"

	"jobportal/internal/models"
	"jobportal/internal/moderation"
	"jobportal/internal/repositories"
	"jobportal/internal/services/dto"
	"jobportal/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	AddReview(db *gorm.DB, req *dto.AddReviewRequest) (*models.Review, error)
	ListReviews(db *gorm.DB) ([]models.Review, error)
	SearchReviews(db *gorm.DB, query string) ([]models.Review, error)
	DeleteReview(db *gorm.DB, reviewID uint) error
	Upvote(db *gorm.DB, reviewID uint, userName string) error
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
	upvoteRepo repositories.UpvoteRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, upvoteRepo repositories.UpvoteRepository) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		upvoteRepo: upvoteRepo,
	}
}

func (s *ReviewServiceImpl) AddReview(db *gorm.DB, req *dto.AddReviewRequest) (*models.Review, error) {
	review := &models.Review{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Department:     req.Department,
		Locations:      req.Locations,
		HourlyPay:      req.HourlyPay,
		Benefits:       req.Benefits,
		Review:         moderation.Filter(req.Review),
		Rating:         req.Rating,
		Recommendation: req.Recommendation,
	}

	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return review, nil
}

func (s *ReviewServiceImpl) ListReviews(db *gorm.DB) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return reviews, nil
}

// SearchReviews returns everything for a blank query and otherwise only
// reviews whose job title equals the query exactly.
func (s *ReviewServiceImpl) SearchReviews(db *gorm.DB, query string) ([]models.Review, error) {
	if strings.TrimSpace(query) == "" {
		return s.ListReviews(db)
	}

	reviews, err := s.reviewRepo.FindByJobTitle(db, query)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return reviews, nil
}

func (s *ReviewServiceImpl) DeleteReview(db *gorm.DB, reviewID uint) error {
	if err := s.reviewRepo.Delete(db, reviewID); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// Upvote records one endorsement per (review, user) pair. The review's
// existence is validated before any write; the upvote insert and the counter
// increment commit in the same transaction. A concurrent duplicate insert is
// resolved by the unique index and reported as "already upvoted".
func (s *ReviewServiceImpl) Upvote(db *gorm.DB, reviewID uint, userName string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.reviewRepo.FindByID(tx, reviewID); err != nil {
			if apperrors.Is(err, repositories.ErrReviewNotFound) {
				return apperrors.ErrReviewNotFound
			}
			return apperrors.DatabaseError(err)
		}

		existing, err := s.upvoteRepo.Find(tx, reviewID, userName)
		if err != nil {
			return apperrors.DatabaseError(err)
		}
		if existing != nil {
			return apperrors.ErrAlreadyUpvoted
		}

		upvote := &models.Upvote{ReviewID: reviewID, UserName: userName}
		if err := s.upvoteRepo.Create(tx, upvote); err != nil {
			if apperrors.Is(err, repositories.ErrUpvoteExists) {
				return apperrors.ErrAlreadyUpvoted
			}
			return apperrors.DatabaseError(err)
		}

		if err := s.reviewRepo.IncrementUpvotes(tx, reviewID); err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
}
