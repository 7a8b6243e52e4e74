package handlers

import (
	"net/http"

	"jobportal/internal/logger"
	"jobportal/internal/middleware"
	"jobportal/internal/services"
	"jobportal/internal/services/dto"
	"jobportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	*BaseHandler
	experienceService services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		BaseHandler:       base,
		experienceService: experienceService,
	}
}

func (h *ExperienceHandler) ShowAddExperience(c *gin.Context) {
	h.Render(c, http.StatusOK, "add_experience.html", nil)
}

func (h *ExperienceHandler) AddExperience(c *gin.Context) {
	var req dto.ExperienceRequest
	if msg, ok := h.BindForm(c, &req); !ok {
		h.Render(c, http.StatusOK, "add_experience.html", gin.H{"Error": msg})
		return
	}

	err := h.experienceService.AddExperience(h.GetDB(c), middleware.CurrentUsername(c), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrExperienceExists) {
			h.RedirectWithFlash(c, "/update-experience", "Experience already exists. Please update it instead.")
			return
		}
		logger.CtxWithError(c.Request.Context(), "failed to add experience", err)
		h.Render(c, http.StatusOK, "add_experience.html", gin.H{"Error": "Could not save your experience."})
		return
	}

	h.RedirectWithFlash(c, "/home", "Experience added successfully!")
}

func (h *ExperienceHandler) ShowUpdateExperience(c *gin.Context) {
	experience, err := h.experienceService.GetExperience(h.GetDB(c), middleware.CurrentUsername(c))
	if err != nil {
		h.RedirectWithFlash(c, "/add-experience", "No experience found. Please add your experience first.")
		return
	}

	h.Render(c, http.StatusOK, "update_experience.html", gin.H{"Experience": experience})
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	var req dto.ExperienceRequest
	if msg, ok := h.BindForm(c, &req); !ok {
		h.RedirectWithFlash(c, "/update-experience", msg)
		return
	}

	err := h.experienceService.UpdateExperience(h.GetDB(c), middleware.CurrentUsername(c), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrExperienceNotFound) {
			h.RedirectWithFlash(c, "/add-experience", "No experience found. Please add your experience first.")
			return
		}
		logger.CtxWithError(c.Request.Context(), "failed to update experience", err)
		h.RedirectWithFlash(c, "/update-experience", "Could not update your experience.")
		return
	}

	h.RedirectWithFlash(c, "/home", "Experience updated successfully!")
}
