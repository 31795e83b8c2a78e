// Package httpx holds the response helpers shared by every handler. Pages
// answer with HTML unless the client asks for JSON.
package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// WantsJSON reports whether the client prefers a JSON body over HTML.
func WantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

func JSONError(c *gin.Context, status int, msg string, details any) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Details: details})
}
