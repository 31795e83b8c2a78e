package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGrowth(t *testing.T) {
	tests := []struct {
		name              string
		current, previous int64
		want              int
	}{
		{"no data", 0, 0, 0},
		{"no baseline", 4, 0, 100},
		{"flat", 5, 5, 0},
		{"doubled", 10, 5, 100},
		{"halved", 5, 10, -50},
		{"third", 4, 3, 33},
		{"round half up", 3, 8, -62},
		{"all gone", 0, 7, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Growth(tt.current, tt.previous))
		})
	}
}

func TestMonthWindows(t *testing.T) {
	w := MonthWindows(time.Date(2026, time.January, 19, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), w.ThisMonth)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), w.PrevMonth)
}

func TestSummarize(t *testing.T) {
	s := Summarize(Counts{TotalCustomers: 12, CustomersBeforeMonth: 10, JobsThisMonth: 3, JobsPrevMonth: 0})
	assert.Equal(t, 20, s.CustomerGrowth)
	assert.Equal(t, 100, s.JobGrowth)
	assert.Equal(t, int64(12), s.TotalCustomers)
}
