package auth

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/syedimran-dev/myblog3/internal/flash"
	"github.com/syedimran-dev/myblog3/internal/users"
)

const SessionCookie = "session_token"

func cookieSecure() bool {
	b, err := strconv.ParseBool(os.Getenv("COOKIE_SECURE"))
	return err == nil && b
}

// SetSessionCookie hands the signed token to the client.
func SetSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", cookieSecure(), true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", cookieSecure(), true)
}

// CurrentUser resolves the session cookie, if any, and stores the user in the
// request context. Anonymous requests pass through untouched.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		u, err := UserForToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user", u)
		c.Next()
	}
}

// RequireAuth runs after CurrentUser and bounces anonymous requests to the
// login page with a flash notice.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			flash.Set(c, "You need to login or register to do that.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user for the request, or nil.
func UserFrom(c *gin.Context) *users.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	u, ok := v.(*users.User)
	if !ok {
		return nil
	}
	return u
}
