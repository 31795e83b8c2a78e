package middleware

import (
	"context"
	"log"

	"painterflow/internal/auth"

	"github.com/gin-gonic/gin"
)

// Accounts tells whether a signed-in account still exists.
type Accounts interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// InjectSession puts the cookie session of a still existing account into the
// gin context. A cookie naming a deleted account is dropped.
func InjectSession(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s, ok := auth.Load(c); ok {
			exists, err := accounts.Exists(c.Request.Context(), s.UserID)
			switch {
			case err != nil:
				log.Printf("session lookup failed: %v", err)
			case exists:
				auth.WithSession(c, s)
			default:
				if err := auth.Clear(c); err != nil {
					log.Printf("clear session: %v", err)
				}
			}
		}

		c.Next()
	}
}
