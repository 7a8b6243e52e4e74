package session

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// flashCookie holds a single one-shot message shown on the next rendered page.
const flashCookie = "jobportal_flash"

// Flash queues a message for the next render.
func Flash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// TakeFlash returns the pending message, if any, and clears it.
func TakeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
