package helpers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// noticeCookie carries a one-shot success/info notice across a redirect,
// standing in for server-rendered flash messages. The renderer reads and
// clears it on the next page load.
const noticeCookie = "st_notice"

// SetNotice stores a notice to be shown after the next redirect.
func SetNotice(c *gin.Context, message string) {
	c.SetCookie(noticeCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// PopNotice reads and clears the pending notice, if any.
func PopNotice(c *gin.Context) string {
	raw, err := c.Cookie(noticeCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(noticeCookie, "", -1, "/", "", false, true)
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}

// RedirectWithNotice issues a see-other redirect carrying a notice cookie.
func RedirectWithNotice(c *gin.Context, location, message string) {
	SetNotice(c, message)
	c.Redirect(http.StatusSeeOther, location)
}
