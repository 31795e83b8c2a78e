package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"painterflow/internal/config"
	"painterflow/internal/httpx"
	"painterflow/internal/models"
	"painterflow/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPartitionJobs(t *testing.T) {
	today := day(2026, 5, 10)
	jobs := []models.Job{
		{Base: models.Base{ID: "yesterday"}, Date: datatypes.Date(day(2026, 5, 9)), Status: models.JobScheduled},
		{Base: models.Base{ID: "today"}, Date: datatypes.Date(today), Status: models.JobInProgress},
		{Base: models.Base{ID: "done"}, Date: datatypes.Date(day(2026, 5, 20)), Status: models.JobDone},
		{Base: models.Base{ID: "later"}, Date: datatypes.Date(day(2026, 6, 1)), Status: models.JobScheduled},
	}

	list := partitionJobs(jobs, today)

	ids := func(js []models.Job) []string {
		out := []string{}
		for _, j := range js {
			out = append(out, j.ID)
		}
		return out
	}
	assert.Equal(t, []string{"today", "later"}, ids(list.Upcoming))
	assert.Equal(t, []string{"yesterday", "done"}, ids(list.Past))

	empty := partitionJobs(nil, today)
	assert.NotNil(t, empty.Upcoming)
	assert.NotNil(t, empty.Past)
}

func TestJobFormPatch(t *testing.T) {
	p, err := jobForm{Date: "2026-05-10", Areas: " Kitchen ", Finish: "satin"}.patch()
	require.NoError(t, err)
	assert.Equal(t, day(2026, 5, 10), p.Date)
	assert.Equal(t, models.JobScheduled, p.Status)
	assert.Equal(t, "Kitchen", *p.Areas)
	assert.Nil(t, p.Notes)
	assert.Nil(t, p.CustomerID)

	_, err = jobForm{Date: "10/05/2026", Status: "cancelled", Finish: "matte-ish"}.patch()
	var v httpx.Violations
	require.ErrorAs(t, err, &v)
	assert.Equal(t, httpx.Violations{"date": "invalid", "status": "invalid", "finish": "invalid"}, v)

	_, err = jobForm{}.patch()
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "required", v["date"])
}

func TestEventFormUsesWallClockOfLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	e, err := eventForm{Title: "Walkthrough", Date: "2026-01-15", StartTime: "21:30"}.event(ny)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 16, 2, 30, 0, 0, time.UTC), e.StartAt.UTC())
	assert.Equal(t, time.Hour, e.EndAt.Sub(e.StartAt))
	assert.Nil(t, e.CustomerID)

	e, err = eventForm{Title: "Estimate", Date: "2026-01-15", StartTime: "09:00", EndTime: "11:15"}.event(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 135*time.Minute, e.EndAt.Sub(e.StartAt))

	_, err = eventForm{Date: "2026-01-15", StartTime: "25:00", EndTime: "nope"}.event(time.UTC)
	var v httpx.Violations
	require.ErrorAs(t, err, &v)
	assert.Equal(t, httpx.Violations{"title": "required", "start_time": "invalid", "end_time": "invalid"}, v)
}

func TestQuoteFormInput(t *testing.T) {
	in, err := quoteForm{EstimateID: " est-1 ", ValidDays: 30, TaxRate: 8.25, Notes: " thanks "}.input()
	require.NoError(t, err)
	assert.Equal(t, "est-1", in.EstimateID)
	assert.Equal(t, 30, in.ValidDays)
	assert.Equal(t, 8.25, in.TaxRate)
	assert.Equal(t, "thanks", in.Notes)

	_, err = quoteForm{TaxRate: -1, ValidDays: -5}.input()
	var v httpx.Violations
	require.ErrorAs(t, err, &v)
	assert.Equal(t, httpx.Violations{"estimate_id": "required", "tax_rate": "negative", "valid_days": "out_of_range"}, v)

	for _, days := range []pricing.Amount{0, 2.5, pricing.MaxValidDays + 1, 1e20} {
		_, err = quoteForm{EstimateID: "est-1", ValidDays: days}.input()
		require.ErrorAs(t, err, &v, "days=%v", days)
		assert.Equal(t, httpx.Violations{"valid_days": "out_of_range"}, v, "days=%v", days)
	}
}

func TestLocationFallsBackToConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	h := &Handler{Cfg: &config.Config{Location: ny}, Now: time.Now}

	cases := map[string]string{
		"/app/calendar":                 "America/New_York",
		"/app/calendar?tz=Europe/Paris": "Europe/Paris",
		"/app/calendar?tz=Not/A_Zone":   "America/New_York",
	}
	for target, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", target, nil)
		assert.Equal(t, want, h.location(c).String(), target)
	}

	h.Cfg = nil
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/app/calendar", nil)
	assert.Equal(t, time.UTC, h.location(c))
}

func TestTodayIsLocalCalendarDay(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	h := &Handler{Now: func() time.Time { return time.Date(2026, 3, 31, 20, 0, 0, 0, time.UTC) }}

	assert.Equal(t, day(2026, 3, 31), h.today(time.UTC))
	assert.Equal(t, day(2026, 4, 1), h.today(tokyo))
}
