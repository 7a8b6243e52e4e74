package handlers

import (
	"net/http"

	"jobportal/internal/logger"
	"jobportal/internal/services"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the navbar pages. Each one lists the current reviews.
type PageHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewPageHandler(base *BaseHandler, reviewService services.ReviewService) *PageHandler {
	return &PageHandler{
		BaseHandler: base,
		reviewService: reviewService,
	}
}

func (h *PageHandler) renderWithEntries(c *gin.Context, templateName string) {
	entries, err := h.reviewService.ListReviews(h.GetDB(c))
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to list reviews", err)
	}
	h.Render(c, http.StatusOK, templateName, gin.H{"Entries": entries})
}

func (h *PageHandler) Home(c *gin.Context) {
	h.renderWithEntries(c, "index.html")
}

func (h *PageHandler) About(c *gin.Context) {
	h.renderWithEntries(c, "about.html")
}

func (h *PageHandler) Contact(c *gin.Context) {
	h.renderWithEntries(c, "contact.html")
}

// Root redirects straight to the homepage.
func (h *PageHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/home")
}
