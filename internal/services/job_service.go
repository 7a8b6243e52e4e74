package services

import (
	"strconv"
	"strings"

	"jobportal/internal/models"
	"jobportal/internal/repositories"
	"jobportal/internal/services/dto"
	"jobportal/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	AddJob(db *gorm.DB, employerID string, req *dto.AddJobRequest) (*models.Job, error)
	GetJob(db *gorm.DB, jobID uint) (*models.Job, error)
	ListJobs(db *gorm.DB) ([]models.Job, error)
	AppliedJobIDs(db *gorm.DB, userName string) ([]uint, error)
	Apply(db *gorm.DB, jobID uint, userName string) error
	DeleteJob(db *gorm.DB, jobID uint) error

	// Applicants returns the applications visible to the session identity:
	// all of them for an admin, only the employer's own jobs otherwise.
	Applicants(db *gorm.DB, userName string, role models.UserRole) ([]models.Application, []models.Job, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	notification    NotificationService
}

func NewJobService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	notification NotificationService,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		notification:    notification,
	}
}

func (s *JobServiceImpl) AddJob(db *gorm.DB, employerID string, req *dto.AddJobRequest) (*models.Job, error) {
	// Blank pay stays NULL; the form field is optional.
	var pay *int
	if trimmed := strings.TrimSpace(req.Pay); trimmed != "" {
		if v, err := strconv.Atoi(trimmed); err == nil {
			pay = &v
		}
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Pay:         pay,
		EmployerID:  employerID,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// Alert every registered user. Synchronous and best effort; email latency
	// extends this request but failures never surface.
	s.notification.NotifyNewJob(db, job)

	return job, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID uint) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) AppliedJobIDs(db *gorm.DB, userName string) ([]uint, error) {
	ids, err := s.applicationRepo.AppliedJobIDs(db, userName)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return ids, nil
}

// Apply inserts the application without checking job existence or prior
// applications; both omissions are documented behavior.
func (s *JobServiceImpl) Apply(db *gorm.DB, jobID uint, userName string) error {
	application := &models.Application{
		JobID:    jobID,
		UserName: userName,
	}
	if err := s.applicationRepo.Create(db, application); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *JobServiceImpl) DeleteJob(db *gorm.DB, jobID uint) error {
	if err := s.jobRepo.Delete(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *JobServiceImpl) Applicants(db *gorm.DB, userName string, role models.UserRole) ([]models.Application, []models.Job, error) {
	if role == models.UserRoleAdmin {
		applications, err := s.applicationRepo.FindAll(db)
		if err != nil {
			return nil, nil, apperrors.DatabaseError(err)
		}
		jobs, err := s.jobRepo.FindAll(db)
		if err != nil {
			return nil, nil, apperrors.DatabaseError(err)
		}
		return applications, jobs, nil
	}

	jobs, err := s.jobRepo.FindByEmployer(db, userName)
	if err != nil {
		return nil, nil, apperrors.DatabaseError(err)
	}

	jobIDs := make([]uint, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.JobID)
	}

	applications, err := s.applicationRepo.FindByJobIDs(db, jobIDs)
	if err != nil {
		return nil, nil, apperrors.DatabaseError(err)
	}
	return applications, jobs, nil
}
