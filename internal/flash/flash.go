// Package flash carries one-shot notices across a redirect in a short-lived
// cookie, cleared as soon as the next page reads it.
package flash

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

func Set(c *gin.Context, message string) {
	c.SetCookie(cookieName, url.QueryEscape(message), 60, "/", "", false, true)
}

func Take(c *gin.Context) string {
	v, err := c.Cookie(cookieName)
	if err != nil || v == "" {
		return ""
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	message, err := url.QueryUnescape(v)
	if err != nil {
		return ""
	}
	return message
}
