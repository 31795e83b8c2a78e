package middleware

import (
	"net/http"

	"painterflow/internal/auth"
	"painterflow/internal/httpx"

	"github.com/gin-gonic/gin"
)

// RequireAuth sends anonymous browsers to /login and answers 401 to JSON
// clients.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.FromContext(c); !ok {
			if httpx.WantsJSON(c) {
				httpx.JSONError(c, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectSignedIn skips guest-only pages such as /login for signed-in users.
func RedirectSignedIn(to string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.FromContext(c); ok {
			c.Redirect(http.StatusFound, to)
			c.Abort()
			return
		}
		c.Next()
	}
}
