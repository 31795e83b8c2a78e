package handlers

import (
	"net/http"

	"painterflow/internal/auth"
	"painterflow/internal/models"
	"painterflow/internal/stats"

	"github.com/gin-gonic/gin"
)

const upcomingOnDashboard = 5

type dashboard struct {
	stats.Summary
	Email    string       `json:"email"`
	Upcoming []models.Job `json:"upcoming"`
}

func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	loc := h.location(c)

	counts, err := h.Store.DashboardCounts(ctx, uid, stats.MonthWindows(h.Now().In(loc)))
	if err != nil {
		fail(c, err, nil)
		return
	}
	upcoming, err := h.Store.UpcomingJobs(ctx, uid, h.today(loc), upcomingOnDashboard)
	if err != nil {
		fail(c, err, nil)
		return
	}
	if upcoming == nil {
		upcoming = []models.Job{}
	}

	d := dashboard{Summary: stats.Summarize(counts), Upcoming: upcoming}
	if s, ok := auth.FromContext(c); ok {
		d.Email = s.Email
	}
	respond(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":     "Dashboard",
		"Nav":       "dashboard",
		"dashboard": d,
	}, d)
}
