package handlers

import (
	"time"

	"painterflow/internal/auth"
	"painterflow/internal/config"
	"painterflow/internal/database"

	"github.com/gin-gonic/gin"
)

// Handler serves every page. It is stateless apart from its dependencies.
type Handler struct {
	Store *database.Store
	Auth  *auth.Service
	Cfg   *config.Config
	Now   func() time.Time
}

func New(store *database.Store, svc *auth.Service, cfg *config.Config) *Handler {
	return &Handler{Store: store, Auth: svc, Cfg: cfg, Now: time.Now}
}

// location is the timezone a calendar or "today" is computed in: ?tz= when
// it names a valid zone, the configured default otherwise.
func (h *Handler) location(c *gin.Context) *time.Location {
	tz := c.Query("tz")
	if tz == "" {
		tz = c.PostForm("tz")
	}
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if h.Cfg != nil && h.Cfg.Location != nil {
		return h.Cfg.Location
	}
	return time.UTC
}

// today is the current calendar day in loc, expressed at midnight UTC like
// job dates.
func (h *Handler) today(loc *time.Location) time.Time {
	y, m, d := h.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func userID(c *gin.Context) string {
	if s, ok := auth.FromContext(c); ok {
		return s.UserID
	}
	return ""
}
