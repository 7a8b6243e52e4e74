package services

import "jobportal/internal/email"

// ServiceContainer aggregates all services for dependency injection.
type ServiceContainer struct {
	AuthService         AuthService
	JobService          JobService
	ReviewService       ReviewService
	UserService         UserService
	ExperienceService   ExperienceService
	NotificationService NotificationService
	EmailProvider       email.Provider
}
