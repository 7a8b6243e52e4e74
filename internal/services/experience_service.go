package services

import (
	"jobportal/internal/models"
	"jobportal/internal/repositories"
	"jobportal/internal/services/dto"
	"jobportal/pkg/apperrors"

	"gorm.io/gorm"
)

type ExperienceService interface {
	GetExperience(db *gorm.DB, userName string) (*models.Experience, error)
	AddExperience(db *gorm.DB, userName string, req *dto.ExperienceRequest) error
	UpdateExperience(db *gorm.DB, userName string, req *dto.ExperienceRequest) error
}

type ExperienceServiceImpl struct {
	experienceRepo repositories.ExperienceRepository
}

func NewExperienceService(experienceRepo repositories.ExperienceRepository) ExperienceService {
	return &ExperienceServiceImpl{experienceRepo: experienceRepo}
}

func (s *ExperienceServiceImpl) GetExperience(db *gorm.DB, userName string) (*models.Experience, error) {
	experience, err := s.experienceRepo.FindByUserName(db, userName)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return experience, nil
}

func (s *ExperienceServiceImpl) AddExperience(db *gorm.DB, userName string, req *dto.ExperienceRequest) error {
	_, err := s.experienceRepo.FindByUserName(db, userName)
	if err == nil {
		return apperrors.ErrExperienceExists
	}
	if !apperrors.Is(err, repositories.ErrExperienceNotFound) {
		return apperrors.DatabaseError(err)
	}

	experience := &models.Experience{
		UserName:       userName,
		LinkedinURL:    req.LinkedinURL,
		CoverLetter:    req.CoverLetter,
		PrevExperience: req.PrevExperience,
	}
	if err := s.experienceRepo.Create(db, experience); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ExperienceServiceImpl) UpdateExperience(db *gorm.DB, userName string, req *dto.ExperienceRequest) error {
	experience, err := s.experienceRepo.FindByUserName(db, userName)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExperienceNotFound) {
			return apperrors.ErrExperienceNotFound
		}
		return apperrors.DatabaseError(err)
	}

	experience.LinkedinURL = req.LinkedinURL
	experience.CoverLetter = req.CoverLetter
	experience.PrevExperience = req.PrevExperience

	if err := s.experienceRepo.Update(db, experience); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}
