// Package stats computes the month-over-month figures shown on the dashboard.
package stats

import (
	"math"
	"time"
)

// Growth is the percentage change from previous to current, rounded half up.
// With no baseline it reports 100 when anything was added and 0 otherwise.
func Growth(current, previous int64) int {
	if previous > 0 {
		pct := float64(current-previous) / float64(previous) * 100
		return int(math.Floor(pct + 0.5))
	}
	if current > 0 {
		return 100
	}
	return 0
}

// Windows are the month boundaries the dashboard counts against.
type Windows struct {
	ThisMonth time.Time
	PrevMonth time.Time
}

// MonthWindows returns the start of the month containing now and the start of
// the month before it, both in now's location.
func MonthWindows(now time.Time) Windows {
	y, m, _ := now.Date()
	this := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	return Windows{ThisMonth: this, PrevMonth: this.AddDate(0, -1, 0)}
}

// Counts are the four count-only queries behind the dashboard.
type Counts struct {
	TotalCustomers       int64 `json:"total_customers"`
	CustomersBeforeMonth int64 `json:"customers_before_month"`
	JobsThisMonth        int64 `json:"jobs_this_month"`
	JobsPrevMonth        int64 `json:"jobs_prev_month"`
}

type Summary struct {
	Counts
	CustomerGrowth int `json:"customer_growth"`
	JobGrowth      int `json:"job_growth"`
}

func Summarize(c Counts) Summary {
	return Summary{
		Counts:         c,
		CustomerGrowth: Growth(c.TotalCustomers, c.CustomersBeforeMonth),
		JobGrowth:      Growth(c.JobsThisMonth, c.JobsPrevMonth),
	}
}
