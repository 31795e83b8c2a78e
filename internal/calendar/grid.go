package calendar

import "time"

// Entry is anything placed on the calendar: appointments and job days.
type Entry struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Customer string    `json:"customer,omitempty"`
	Link     string    `json:"link"`
	// AllDay entries carry a calendar date rather than an instant and are
	// bucketed by their stored year/month/day without a timezone shift.
	AllDay bool `json:"all_day"`
}

// Day is one cell of the month grid.
type Day struct {
	Number  int
	Date    time.Time
	Entries []Entry
	IsToday bool
}

// Grid is a month view: LeadingBlanks empty cells followed by one Day per
// day of the month.
type Grid struct {
	Month         Month
	Location      *time.Location
	LeadingBlanks int
	Days          []Day
}

// Weekdays are the grid column headers, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Build lays out m in loc and files each entry under the day it falls on.
// Entries outside the month are dropped. Today is only highlighted when m is
// the current month in loc.
func Build(m Month, loc *time.Location, entries []Entry, now time.Time) Grid {
	if loc == nil {
		loc = time.UTC
	}

	g := Grid{
		Month:         m,
		Location:      loc,
		LeadingBlanks: m.LeadingBlanks(),
		Days:          make([]Day, m.DaysIn()),
	}
	for i := range g.Days {
		g.Days[i] = Day{
			Number: i + 1,
			Date:   time.Date(m.Year, m.Month, i+1, 0, 0, 0, 0, loc),
		}
	}

	todayDay := -1
	if nowLocal := now.In(loc); MonthOf(nowLocal, loc).Equal(m) {
		todayDay = nowLocal.Day()
	}
	if todayDay > 0 {
		g.Days[todayDay-1].IsToday = true
	}

	for _, e := range entries {
		y, mo, d := e.dayIn(loc)
		if y != m.Year || mo != m.Month {
			continue
		}
		g.Days[d-1].Entries = append(g.Days[d-1].Entries, e)
	}
	return g
}

func (e Entry) dayIn(loc *time.Location) (int, time.Month, int) {
	if e.AllDay {
		return e.Start.Date()
	}
	return e.Start.In(loc).Date()
}

// Cells returns the grid row-major: nil for each leading blank, then a
// pointer to every day.
func (g Grid) Cells() []*Day {
	cells := make([]*Day, 0, g.LeadingBlanks+len(g.Days))
	for i := 0; i < g.LeadingBlanks; i++ {
		cells = append(cells, nil)
	}
	for i := range g.Days {
		cells = append(cells, &g.Days[i])
	}
	return cells
}

// Weeks splits Cells into rows of seven, padding the last row with blanks.
func (g Grid) Weeks() [][]*Day {
	cells := g.Cells()
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}
	weeks := make([][]*Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
