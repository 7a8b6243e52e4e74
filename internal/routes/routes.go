package routes

import (
	"jobportal/internal/handlers"
	"jobportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route. Routes carrying only the inline
// admin check (delete_review, view-users, delete_user) are deliberately left
// outside the login guard, matching the portal's authorization layout.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	auth := appHandlers.AuthHandler
	pages := appHandlers.PageHandler
	jobs := appHandlers.JobHandler
	reviews := appHandlers.ReviewHandler
	users := appHandlers.UserHandler
	experience := appHandlers.ExperienceHandler

	// Public surface
	ginRouter.GET("/", pages.Root)
	ginRouter.GET("/login", auth.ShowLogin)
	ginRouter.POST("/login", auth.Login)
	ginRouter.GET("/logout", auth.Logout)
	ginRouter.GET("/signup", auth.ShowSignup)
	ginRouter.POST("/signup", auth.Signup)

	// Inline-admin-gated routes (no login guard, historical layout)
	ginRouter.POST("/delete_review/:review_id", reviews.DeleteReview)
	ginRouter.GET("/view-users", users.ViewUsers)
	ginRouter.POST("/delete_user/:user_name", users.DeleteUser)

	// Guarded surface
	protected := ginRouter.Group("")
	protected.Use(middleware.LoginRequired())
	{
		protected.GET("/home", pages.Home)
		protected.GET("/about", pages.About)
		protected.GET("/contact", pages.Contact)

		protected.GET("/review", reviews.ShowReviewForm)
		protected.GET("/pageContent", reviews.PageContent)
		protected.POST("/pageContentPost", reviews.Search)
		protected.POST("/add", reviews.AddReview)
		protected.POST("/upvote/:review_id", reviews.Upvote)

		protected.GET("/view-jobs", jobs.ViewJobs)
		protected.GET("/add-job", jobs.ShowAddJob)
		protected.POST("/add-job", jobs.AddJob)
		protected.POST("/delete-job/:job_id", jobs.DeleteJob)
		protected.GET("/apply-job/:job_id", jobs.ShowApplyJob)
		protected.POST("/apply/:job_id", jobs.Apply)
		protected.GET("/view-applicants", jobs.ViewApplicants)

		protected.GET("/add-experience", experience.ShowAddExperience)
		protected.POST("/add-experience", experience.AddExperience)
		protected.GET("/update-experience", experience.ShowUpdateExperience)
		protected.POST("/update-experience", experience.UpdateExperience)
	}
}
