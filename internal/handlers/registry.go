package handlers

// AppHandlers aggregates all route handlers for registration.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	PageHandler       *PageHandler
	JobHandler        *JobHandler
	ReviewHandler     *ReviewHandler
	UserHandler       *UserHandler
	ExperienceHandler *ExperienceHandler
}
