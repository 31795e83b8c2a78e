package calendar

import (
	"strconv"
	"time"
)

// Month is a displayed calendar month. Zero-based month indices (0 = January)
// are accepted at the boundary and normalised here.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth builds a Month from a year and a zero-based month index. Indices
// outside 0..11 roll over into the neighbouring years.
func NewMonth(year, month0 int) Month {
	t := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// MonthOf returns the month containing t as seen from loc.
func MonthOf(t time.Time, loc *time.Location) Month {
	t = t.In(loc)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Index is the zero-based month index.
func (m Month) Index() int { return int(m.Month) - 1 }

func (m Month) Prev() Month { return NewMonth(m.Year, m.Index()-1) }

func (m Month) Next() Month { return NewMonth(m.Year, m.Index()+1) }

// DaysIn uses day 0 of the following month.
func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks is the weekday of the 1st, Sunday = 0.
func (m Month) LeadingBlanks() int {
	return int(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Range returns the first and last instant of the month in loc.
func (m Month) Range(loc *time.Location) (from, to time.Time) {
	from = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
	to = time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)
	return from, to
}

func (m Month) Equal(o Month) bool { return m.Year == o.Year && m.Month == o.Month }

func (m Month) String() string {
	return m.Month.String() + " " + strconv.Itoa(m.Year)
}
