package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"jobportal/internal/logger"
	"jobportal/internal/middleware"
	"jobportal/internal/session"
	"jobportal/internal/validator"
	"jobportal/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs: the validator and the
// session manager. The DB handle comes from the gin context per request.
type BaseHandler struct {
	validator *validator.Validator
	sessions  *session.Manager
}

func NewBaseHandler(v *validator.Validator, sessions *session.Manager) *BaseHandler {
	return &BaseHandler{
		validator: v,
		sessions:  sessions,
	}
}

func (h *BaseHandler) Sessions() *session.Manager {
	return h.sessions
}

// GetDB extracts the *gorm.DB (pool or test transaction) from the gin context.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

// BindForm binds POSTed form fields into obj and validates it. On failure it
// returns a message suitable for inline form re-rendering.
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) (string, bool) {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind form", err, "path", c.Request.URL.Path)
		return "Invalid form submission.", false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "form validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			return vErr.First(), false
		}
		logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
		return "Invalid form submission.", false
	}

	return "", true
}

// Render writes an HTML page, merging the session identity and any pending
// flash message into the template data.
func (h *BaseHandler) Render(c *gin.Context, status int, templateName string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = session.TakeFlash(c)
	}
	data["Username"] = middleware.CurrentUsername(c)
	data["Role"] = string(middleware.CurrentRole(c))
	c.HTML(status, templateName, data)
}

// RedirectWithFlash queues a message and redirects (HTTP 302).
func (h *BaseHandler) RedirectWithFlash(c *gin.Context, location, message string) {
	session.Flash(c, message)
	c.Redirect(http.StatusFound, location)
}

// ParseIDParam reads a numeric path parameter.
func (h *BaseHandler) ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
