package handlers

import (
	"fmt"
	"net/http"

	"jobportal/internal/logger"
	"jobportal/internal/middleware"
	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// ViewUsers lists every account. Inline admin check; anyone else lands on the
// homepage.
func (h *UserHandler) ViewUsers(c *gin.Context) {
	if middleware.CurrentRole(c) != models.UserRoleAdmin {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	users, err := h.userService.ListUsers(h.GetDB(c))
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to list users", err)
		h.RedirectWithFlash(c, "/home", "Could not load users.")
		return
	}

	h.Render(c, http.StatusOK, "view_users.html", gin.H{"Users": users})
}

// DeleteUser removes an account. No cascading cleanup is performed.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if middleware.CurrentRole(c) != models.UserRoleAdmin {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	userName := c.Param("user_name")

	if err := h.userService.DeleteUser(h.GetDB(c), userName); err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			h.RedirectWithFlash(c, "/view-users", fmt.Sprintf("User %s not found.", userName))
			return
		}
		logger.CtxWithError(c.Request.Context(), "failed to delete user", err, "user_name", userName)
		h.RedirectWithFlash(c, "/view-users", "Could not delete the user.")
		return
	}

	c.Redirect(http.StatusFound, "/view-users")
}
