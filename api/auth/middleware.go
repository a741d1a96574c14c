package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextKeyUser = "user"

// adminDenial is shown verbatim to anyone poking the admin routes without
// the admin role.
const adminDenial = "nuh uh 🚫"

// RequireUser redirects anonymous visitors to the login page. Authenticated
// requests get the decoded SessionUser attached to the gin context.
func RequireUser(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusSeeOther, loginURL)
			c.Abort()
			return
		}
		c.Set(contextKeyUser, user)
	}
}

// RequireAdmin rejects non-admin sessions, anonymous ones included, with an
// inline denial rather than a redirect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !user.IsAdmin() {
			c.String(http.StatusForbidden, adminDenial)
			c.Abort()
			return
		}
		c.Set(contextKeyUser, user)
	}
}

// MustUser returns the SessionUser attached by RequireUser or RequireAdmin.
func MustUser(c *gin.Context) *SessionUser {
	return c.MustGet(contextKeyUser).(*SessionUser)
}
