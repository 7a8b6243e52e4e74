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

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler: base,
		reviewService: reviewService,
	}
}

// ShowReviewForm renders the add-review page. Employers are barred.
func (h *ReviewHandler) ShowReviewForm(c *gin.Context) {
	if middleware.CurrentRole(c) == models.UserRoleEmployer {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	entries, err := h.reviewService.ListReviews(h.GetDB(c))
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to list reviews", err)
	}
	h.Render(c, http.StatusOK, "review_page.html", gin.H{"Entries": entries})
}

// PageContent lists every review. Employers are barred.
func (h *ReviewHandler) PageContent(c *gin.Context) {
	if middleware.CurrentRole(c) == models.UserRoleEmployer {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	entries, err := h.reviewService.ListReviews(h.GetDB(c))
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to list reviews", err)
	}
	h.Render(c, http.StatusOK, "page_content.html", gin.H{"Entries": entries})
}

// Search returns all reviews for a blank query and exact job-title matches
// otherwise.
func (h *ReviewHandler) Search(c *gin.Context) {
	var req dto.SearchReviewsRequest
	_ = c.ShouldBind(&req)

	entries, err := h.reviewService.SearchReviews(h.GetDB(c), req.Search)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "review search failed", err, "query", req.Search)
	}
	h.Render(c, http.StatusOK, "page_content.html", gin.H{"Entries": entries})
}

// AddReview stores a review with the profanity-filtered body.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req dto.AddReviewRequest
	if msg, ok := h.BindForm(c, &req); !ok {
		h.RedirectWithFlash(c, "/review", msg)
		return
	}

	if _, err := h.reviewService.AddReview(h.GetDB(c), &req); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to add review", err)
		h.RedirectWithFlash(c, "/review", "Could not save the review.")
		return
	}

	c.Redirect(http.StatusFound, "/home")
}

// Upvote endorses a review once per user. The second attempt, concurrent or
// not, flashes "already upvoted" and changes nothing.
func (h *ReviewHandler) Upvote(c *gin.Context) {
	reviewID, ok := h.ParseIDParam(c, "review_id")
	if !ok {
		// Non-numeric ids never match a review URL.
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	err := h.reviewService.Upvote(h.GetDB(c), reviewID, middleware.CurrentUsername(c))
	switch {
	case err == nil:
		h.RedirectWithFlash(c, "/pageContent", "Upvoted successfully!")
	case apperrors.Is(err, apperrors.ErrAlreadyUpvoted):
		h.RedirectWithFlash(c, "/pageContent", "You have already upvoted this review.")
	case apperrors.Is(err, apperrors.ErrReviewNotFound):
		c.Redirect(http.StatusFound, "/pageContent")
	default:
		logger.CtxWithError(c.Request.Context(), "upvote failed", err, "review_id", reviewID)
		c.Redirect(http.StatusFound, "/pageContent")
	}
}

// DeleteReview is admin-gated inline, not by the auth guard.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := h.ParseIDParam(c, "review_id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if middleware.CurrentRole(c) != models.UserRoleAdmin {
		h.RedirectWithFlash(c, "/pageContent", "You do not have permission to delete reviews.")
		return
	}

	if err := h.reviewService.DeleteReview(h.GetDB(c), reviewID); err != nil {
		if apperrors.Is(err, apperrors.ErrReviewNotFound) {
			h.RedirectWithFlash(c, "/pageContent", "Review not found.")
			return
		}
		logger.CtxWithError(c.Request.Context(), "failed to delete review", err, "review_id", reviewID)
		h.RedirectWithFlash(c, "/pageContent", "Could not delete the review.")
		return
	}

	h.RedirectWithFlash(c, "/pageContent", "Review deleted successfully.")
}
