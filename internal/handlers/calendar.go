package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"painterflow/internal/calendar"
	"painterflow/internal/httpx"
	"painterflow/internal/models"

	"github.com/gin-gonic/gin"
)

const timeLayout = "15:04"

type eventForm struct {
	Title      string `form:"title" json:"title"`
	CustomerID string `form:"customer_id" json:"customer_id"`
	Date       string `form:"date" json:"date"`
	StartTime  string `form:"start_time" json:"start_time"`
	EndTime    string `form:"end_time" json:"end_time"`
	Notes      string `form:"notes" json:"notes"`
}

// event reads the date and times as wall-clock values in loc.
func (f eventForm) event(loc *time.Location) (*models.CalendarEvent, error) {
	v := httpx.Violations{}
	v.Required("title", f.Title)
	v.Required("date", f.Date)
	v.Required("start_time", f.StartTime)

	date := strings.TrimSpace(f.Date)
	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+strings.TrimSpace(f.StartTime), loc)
	if err != nil && v["date"] == "" && v["start_time"] == "" {
		v.Add("start_time", "invalid")
	}
	end := start.Add(time.Hour)
	if et := strings.TrimSpace(f.EndTime); et != "" {
		end, err = time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+et, loc)
		if err != nil {
			v.Add("end_time", "invalid")
		}
	}
	if !v.Empty() {
		return nil, v
	}

	return &models.CalendarEvent{
		Title:      strings.TrimSpace(f.Title),
		StartAt:    start,
		EndAt:      end,
		Notes:      models.NullString(strings.TrimSpace(f.Notes)),
		CustomerID: models.NullString(strings.TrimSpace(f.CustomerID)),
	}, nil
}

// requestedMonth is the month in ?year=&month= (zero-based), defaulting to
// the current month in loc.
func (h *Handler) requestedMonth(c *gin.Context, loc *time.Location) calendar.Month {
	m := calendar.MonthOf(h.Now(), loc)
	year, errY := strconv.Atoi(c.Query("year"))
	month0, errM := strconv.Atoi(c.Query("month"))
	if errY == nil && errM == nil {
		return calendar.NewMonth(year, month0)
	}
	return m
}

func calendarURL(m calendar.Month, loc *time.Location) string {
	q := url.Values{}
	q.Set("year", strconv.Itoa(m.Year))
	q.Set("month", strconv.Itoa(m.Index()))
	q.Set("tz", loc.String())
	return "/app/calendar?" + q.Encode()
}

type dayView struct {
	Number  int              `json:"number"`
	Date    string           `json:"date"`
	IsToday bool             `json:"is_today"`
	Entries []calendar.Entry `json:"entries"`
}

type calendarView struct {
	Title         string    `json:"title"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	TZ            string    `json:"tz"`
	LeadingBlanks int       `json:"leading_blanks"`
	Days          []dayView `json:"days"`
}

func viewOf(g calendar.Grid) calendarView {
	v := calendarView{
		Title:         g.Month.String(),
		Year:          g.Month.Year,
		Month:         g.Month.Index(),
		TZ:            g.Location.String(),
		LeadingBlanks: g.LeadingBlanks,
		Days:          make([]dayView, len(g.Days)),
	}
	for i, d := range g.Days {
		entries := d.Entries
		if entries == nil {
			entries = []calendar.Entry{}
		}
		v.Days[i] = dayView{Number: d.Number, Date: d.Date.Format(dateLayout), IsToday: d.IsToday, Entries: entries}
	}
	return v
}

// monthEntries loads the appointments and job days that fall in m.
func (h *Handler) monthEntries(c *gin.Context, m calendar.Month, loc *time.Location) ([]calendar.Entry, error) {
	ctx := c.Request.Context()
	uid := userID(c)

	from, to := m.Range(loc)
	events, err := h.Store.ListEvents(ctx, uid, from, to)
	if err != nil {
		return nil, err
	}
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	jobs, err := h.Store.JobsBetween(ctx, uid, first, first.AddDate(0, 1, -1))
	if err != nil {
		return nil, err
	}

	entries := make([]calendar.Entry, 0, len(events)+len(jobs))
	for _, e := range events {
		entry := calendar.Entry{
			ID:    e.ID,
			Kind:  "event",
			Title: e.Title,
			Start: e.StartAt,
			End:   e.EndAt,
			Link:  "/app/calendar/events/" + e.ID,
		}
		if e.Customer != nil {
			entry.Customer = e.Customer.Name
		}
		entries = append(entries, entry)
	}
	for _, j := range jobs {
		entries = append(entries, calendar.Entry{
			ID:       j.ID,
			Kind:     "job",
			Title:    "Job: " + j.CustomerName(),
			Start:    j.Day(),
			End:      j.Day(),
			Customer: j.CustomerName(),
			Link:     "/app/jobs/" + j.ID,
			AllDay:   true,
		})
	}
	return entries, nil
}

func (h *Handler) Calendar(c *gin.Context) {
	loc := h.location(c)
	h.calendarPage(c, http.StatusOK, "", h.requestedMonth(c, loc), loc, eventForm{})
}

func (h *Handler) calendarPage(c *gin.Context, status int, errMsg string, m calendar.Month, loc *time.Location, form eventForm) {
	entries, err := h.monthEntries(c, m, loc)
	if err != nil {
		fail(c, err, nil)
		return
	}
	grid := calendar.Build(m, loc, entries, h.Now())

	if httpx.WantsJSON(c) {
		c.JSON(status, viewOf(grid))
		return
	}
	customers, err := h.Store.CustomerRefs(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, nil)
		return
	}
	if form.StartTime == "" {
		form.StartTime, form.EndTime = "09:00", "10:00"
	}
	render(c, status, "calendar.html", gin.H{
		"Title":     "Calendar",
		"Nav":       "calendar",
		"grid":      grid,
		"weekdays":  calendar.Weekdays,
		"prevURL":   calendarURL(m.Prev(), loc),
		"nextURL":   calendarURL(m.Next(), loc),
		"tz":        loc.String(),
		"customers": customers,
		"form":      form,
		"ShowForm":  errMsg != "",
		"error":     errMsg,
	})
}

func (h *Handler) CreateEvent(c *gin.Context) {
	loc := h.location(c)
	var form eventForm
	page := func(status int, msg string) {
		h.calendarPage(c, status, msg, h.monthOfForm(form, loc), loc, form)
	}

	if err := c.ShouldBind(&form); err != nil {
		fail(c, httpx.Violations{"form": "invalid"}, page)
		return
	}
	e, err := form.event(loc)
	if err != nil {
		fail(c, err, page)
		return
	}
	if err := h.Store.CreateEvent(c.Request.Context(), userID(c), e); err != nil {
		fail(c, err, page)
		return
	}
	done(c, http.StatusCreated, calendarURL(calendar.MonthOf(e.StartAt, loc), loc), e)
}

// monthOfForm is the month a failed event form returns to.
func (h *Handler) monthOfForm(f eventForm, loc *time.Location) calendar.Month {
	if d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(f.Date), loc); err == nil {
		return calendar.MonthOf(d, loc)
	}
	return calendar.MonthOf(h.Now(), loc)
}

func (h *Handler) ShowEvent(c *gin.Context) {
	e, err := h.Store.GetEvent(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		fail(c, err, nil)
		return
	}
	loc := h.location(c)
	respond(c, http.StatusOK, "event_detail.html", gin.H{
		"Title":   e.Title,
		"Nav":     "calendar",
		"event":   e,
		"start":   e.StartAt.In(loc),
		"end":     e.EndAt.In(loc),
		"tz":      loc.String(),
		"backURL": calendarURL(calendar.MonthOf(e.StartAt, loc), loc),
	}, e)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	if !confirmed(c) {
		fail(c, errNotConfirmed, nil)
		return
	}
	loc := h.location(c)
	if err := h.Store.DeleteEvent(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		fail(c, fmt.Errorf("delete event: %w", err), nil)
		return
	}
	done(c, http.StatusNoContent, calendarURL(calendar.MonthOf(h.Now(), loc), loc), nil)
}
