package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthRollsOver(t *testing.T) {
	assert.Equal(t, Month{Year: 2025, Month: time.December}, NewMonth(2026, -1))
	assert.Equal(t, Month{Year: 2027, Month: time.January}, NewMonth(2026, 12))
	assert.Equal(t, Month{Year: 2026, Month: time.March}, NewMonth(2026, 2))
}

func TestNavigation(t *testing.T) {
	jan := NewMonth(2026, 0)
	assert.Equal(t, Month{Year: 2025, Month: time.December}, jan.Prev())
	assert.Equal(t, Month{Year: 2026, Month: time.February}, jan.Next())

	dec := NewMonth(2026, 11)
	assert.Equal(t, Month{Year: 2027, Month: time.January}, dec.Next())
	assert.Equal(t, 11, dec.Index())
	assert.Equal(t, "December 2026", dec.String())
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, NewMonth(2025, 0).DaysIn())
	assert.Equal(t, 28, NewMonth(2025, 1).DaysIn())
	assert.Equal(t, 29, NewMonth(2024, 1).DaysIn())
	assert.Equal(t, 30, NewMonth(2025, 3).DaysIn())
}

func TestBuildJanuaryStartingWednesday(t *testing.T) {
	// 1 January 2025 is a Wednesday.
	m := NewMonth(2025, 0)
	g := Build(m, time.UTC, nil, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 3, g.LeadingBlanks)
	require.Len(t, g.Days, 31)

	cells := g.Cells()
	require.Len(t, cells, 34)
	for i := 0; i < 3; i++ {
		assert.Nil(t, cells[i])
	}
	assert.Equal(t, 1, cells[3].Number)
	assert.Equal(t, 31, cells[33].Number)
}

func TestGridShapeForEveryMonth(t *testing.T) {
	for year := 2023; year <= 2028; year++ {
		for month0 := 0; month0 < 12; month0++ {
			m := NewMonth(year, month0)
			first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
			g := Build(m, time.UTC, nil, first)

			assert.Equal(t, int(first.Weekday()), g.LeadingBlanks)
			assert.Len(t, g.Cells(), g.LeadingBlanks+m.DaysIn())
			for _, w := range g.Weeks() {
				assert.Len(t, w, 7)
			}
		}
	}
}

func TestBuildBucketsEntries(t *testing.T) {
	m := NewMonth(2026, 9)
	entries := []Entry{
		{ID: "a", Start: time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC)},
		{ID: "b", Start: time.Date(2026, 10, 3, 14, 0, 0, 0, time.UTC)},
		{ID: "c", Start: time.Date(2026, 10, 31, 23, 0, 0, 0, time.UTC)},
		{ID: "d", Start: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
	g := Build(m, time.UTC, entries, time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))

	require.Len(t, g.Days[2].Entries, 2)
	assert.Equal(t, "a", g.Days[2].Entries[0].ID)
	assert.Equal(t, "b", g.Days[2].Entries[1].ID)
	require.Len(t, g.Days[30].Entries, 1)
	assert.Equal(t, "c", g.Days[30].Entries[0].ID)

	total := 0
	for _, d := range g.Days {
		total += len(d.Entries)
	}
	assert.Equal(t, 3, total)
}

func TestBuildUsesViewLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:30 UTC on the 4th is still the evening of the 3rd in New York.
	timed := Entry{ID: "evt", Start: time.Date(2026, 10, 4, 2, 30, 0, 0, time.UTC)}
	// Job days are dates, not instants, and never shift.
	job := Entry{ID: "job", AllDay: true, Start: time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC)}

	m := NewMonth(2026, 9)
	utc := Build(m, time.UTC, []Entry{timed, job}, time.Time{})
	local := Build(m, ny, []Entry{timed, job}, time.Time{})

	assert.Len(t, utc.Days[3].Entries, 2)
	require.Len(t, local.Days[2].Entries, 1)
	assert.Equal(t, "evt", local.Days[2].Entries[0].ID)
	require.Len(t, local.Days[3].Entries, 1)
	assert.Equal(t, "job", local.Days[3].Entries[0].ID)
}

func TestTodayHighlight(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	g := Build(NewMonth(2026, 9), time.UTC, nil, now)
	for _, d := range g.Days {
		assert.Equal(t, d.Number == 19, d.IsToday, "day %d", d.Number)
	}

	other := Build(NewMonth(2026, 10), time.UTC, nil, now)
	for _, d := range other.Days {
		assert.False(t, d.IsToday)
	}
}

func TestRange(t *testing.T) {
	from, to := NewMonth(2026, 1).Range(time.UTC)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999999999, time.UTC), to)
}
