package handlers

import (
	"net/http"

	"jobportal/internal/logger"
	"jobportal/internal/middleware"
	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/internal/services/dto"
	"jobportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// ViewJobs lists all postings for applicants and admins. Employers are sent
// back to the home page; they have their own posting views.
func (h *JobHandler) ViewJobs(c *gin.Context) {
	role := middleware.CurrentRole(c)
	if role != models.UserRoleApplicant && role != models.UserRoleAdmin {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	db := h.GetDB(c)

	jobs, err := h.jobService.ListJobs(db)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to list jobs", err)
		h.RedirectWithFlash(c, "/home", "Could not load jobs.")
		return
	}

	// Applied job ids only drive the view layer: the Apply button is hidden,
	// nothing is enforced server-side.
	appliedIDs, err := h.jobService.AppliedJobIDs(db, middleware.CurrentUsername(c))
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to load applied job ids", err)
		appliedIDs = nil
	}

	applied := make(map[uint]bool, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = true
	}

	h.Render(c, http.StatusOK, "view_jobs.html", gin.H{
		"Jobs":    jobs,
		"Applied": applied,
	})
}

func (h *JobHandler) ShowAddJob(c *gin.Context) {
	if middleware.CurrentRole(c) != models.UserRoleEmployer {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	h.Render(c, http.StatusOK, "add_job.html", nil)
}

func (h *JobHandler) AddJob(c *gin.Context) {
	if middleware.CurrentRole(c) != models.UserRoleEmployer {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	var req dto.AddJobRequest
	if msg, ok := h.BindForm(c, &req); !ok {
		h.Render(c, http.StatusOK, "add_job.html", gin.H{"Error": msg})
		return
	}

	if _, err := h.jobService.AddJob(h.GetDB(c), middleware.CurrentUsername(c), &req); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to add job", err)
		h.Render(c, http.StatusOK, "add_job.html", gin.H{"Error": "Could not post the job. Please try again."})
		return
	}

	h.RedirectWithFlash(c, "/home", "Job posted successfully!")
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, ok := h.ParseIDParam(c, "job_id")
	if !ok {
		// Non-numeric ids never match a job URL.
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if middleware.CurrentRole(c) != models.UserRoleAdmin {
		h.RedirectWithFlash(c, "/view-jobs", "You don't have permission to perform this action.")
		return
	}

	if err := h.jobService.DeleteJob(h.GetDB(c), jobID); err != nil {
		if apperrors.Is(err, apperrors.ErrJobNotFound) {
			h.RedirectWithFlash(c, "/view-jobs", "Job not found.")
			return
		}
		logger.CtxWithError(c.Request.Context(), "failed to delete job", err, "job_id", jobID)
		h.RedirectWithFlash(c, "/view-jobs", "Could not delete the job.")
		return
	}

	h.RedirectWithFlash(c, "/view-jobs", "Job deleted successfully.")
}

// ShowApplyJob renders the application page for one posting.
func (h *JobHandler) ShowApplyJob(c *gin.Context) {
	jobID, ok := h.ParseIDParam(c, "job_id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	job, err := h.jobService.GetJob(h.GetDB(c), jobID)
	if err != nil {
		h.RedirectWithFlash(c, "/view-jobs", "Job not found.")
		return
	}

	h.Render(c, http.StatusOK, "apply_job.html", gin.H{"Job": job})
}

// Apply records the application unconditionally; job existence and duplicate
// applications are not checked. Documented system behavior.
func (h *JobHandler) Apply(c *gin.Context) {
	jobID, ok := h.ParseIDParam(c, "job_id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if err := h.jobService.Apply(h.GetDB(c), jobID, middleware.CurrentUsername(c)); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to apply", err, "job_id", jobID)
		h.RedirectWithFlash(c, "/view-jobs", "Could not submit the application.")
		return
	}

	h.RedirectWithFlash(c, "/view-jobs", "Application submitted successfully!")
}

// ViewApplicants shows every application to an admin and only the
// applications for the employer's own jobs otherwise.
func (h *JobHandler) ViewApplicants(c *gin.Context) {
	username := middleware.CurrentUsername(c)
	role := middleware.CurrentRole(c)

	applications, jobs, err := h.jobService.Applicants(h.GetDB(c), username, role)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to load applicants", err)
		h.RedirectWithFlash(c, "/home", "Could not load applicants.")
		return
	}

	h.Render(c, http.StatusOK, "view_applicants.html", gin.H{
		"Applicants": applications,
		"Jobs":       jobs,
	})
}
