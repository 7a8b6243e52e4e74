package services

import (
	"fmt"

	"jobportal/internal/email"
	"jobportal/internal/logger"
	"jobportal/internal/models"
	"jobportal/internal/repositories"

	"gorm.io/gorm"
)

// NotificationService sends the portal's transactional emails. Every method
// converts delivery failures into a status and a log line; nothing here ever
// aborts the caller's request.
type NotificationService interface {
	// SendWelcome emails login credentials after signup. Returns delivery status.
	SendWelcome(emailAddr, username, password string, role models.UserRole) bool

	// NotifyNewJob alerts every registered user about a fresh posting.
	NotifyNewJob(db *gorm.DB, job *models.Job)
}

type NotificationServiceImpl struct {
	provider email.Provider
	userRepo repositories.UserRepository
}

func NewNotificationService(provider email.Provider, userRepo repositories.UserRepository) NotificationService {
	return &NotificationServiceImpl{
		provider: provider,
		userRepo: userRepo,
	}
}

func (s *NotificationServiceImpl) SendWelcome(emailAddr, username, password string, role models.UserRole) bool {
	templateName := email.TemplateWelcomeApplicant
	if role == models.UserRoleEmployer {
		templateName = email.TemplateWelcomeEmployer
	}

	data := email.TemplateData{
		"Username": username,
		"Password": password,
	}

	err := s.provider.SendTemplate([]string{emailAddr}, "Welcome to your Job Portal account!", templateName, data)
	if err != nil {
		logger.Warn("welcome email delivery failed", "to", emailAddr, "error", err)
		return false
	}
	return true
}

func (s *NotificationServiceImpl) NotifyNewJob(db *gorm.DB, job *models.Job) {
	emails, err := s.userRepo.AllEmails(db)
	if err != nil {
		logger.Warn("could not load recipients for new-job alert", "error", err)
		return
	}

	pay := "not specified"
	if job.Pay != nil {
		pay = fmt.Sprintf("%d", *job.Pay)
	}

	data := email.TemplateData{
		"Title":       job.Title,
		"Description": job.Description,
		"Location":    job.Location,
		"Pay":         pay,
	}

	sent := 0
	for _, to := range emails {
		if err := s.provider.SendTemplate([]string{to}, "New job posted: "+job.Title, email.TemplateNewJob, data); err != nil {
			logger.Warn("new-job alert delivery failed", "to", to, "error", err)
			continue
		}
		sent++
	}
	logger.Info("new-job alerts dispatched", "job_id", job.JobID, "sent", sent, "total", len(emails))
}
