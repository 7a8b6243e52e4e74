package handlers

import (
	"net/http"

	"jobportal/internal/logger"
	"jobportal/internal/services"
	"jobportal/internal/services/dto"
	"jobportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.Render(c, http.StatusOK, "login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if msg, ok := h.BindForm(c, &req); !ok {
		h.Render(c, http.StatusOK, "login.html", gin.H{"Error": msg})
		return
	}

	username, role, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		// Mismatch redisplays the form, never an HTTP error code.
		h.Render(c, http.StatusOK, "login.html", gin.H{"Error": "Invalid Credentials. Please try again."})
		return
	}

	if err := h.Sessions().Establish(c, username, role); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to establish session", err)
		h.Render(c, http.StatusOK, "login.html", gin.H{"Error": "Invalid Credentials. Please try again."})
		return
	}

	c.Redirect(http.StatusFound, "/home")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Sessions().Clear(c)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	h.Render(c, http.StatusOK, "signup.html", nil)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if msg, ok := h.BindForm(c, &req); !ok {
		h.Render(c, http.StatusOK, "signup.html", gin.H{"Error": msg})
		return
	}

	if err := h.authService.Signup(h.GetDB(c), &req); err != nil {
		if apperrors.Is(err, apperrors.ErrUsernameTaken) {
			h.Render(c, http.StatusOK, "signup.html", gin.H{"Error": apperrors.ErrUsernameTaken.Message})
			return
		}
		logger.CtxWithError(c.Request.Context(), "signup failed", err)
		h.Render(c, http.StatusOK, "signup.html", gin.H{"Error": "Something went wrong. Please try again."})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}
