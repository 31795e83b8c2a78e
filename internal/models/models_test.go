package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestJobPartitionIsExclusive(t *testing.T) {
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	days := []time.Time{today.AddDate(0, 0, -3), today, today.AddDate(0, 0, 4)}

	for _, d := range days {
		for _, st := range JobStatuses {
			j := Job{Date: datatypes.Date(d), Status: st}
			upcoming := j.Upcoming(today)
			past := j.Day().Before(today) || st == JobDone
			assert.NotEqual(t, upcoming, past, "date=%s status=%s", d, st)
		}
	}
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, JobInProgress.Valid())
	assert.False(t, JobStatus("cancelled").Valid())
	assert.True(t, QuoteRejected.Valid())
	assert.False(t, QuoteStatus("converted").Valid())
	assert.Equal(t, "In Progress", JobInProgress.Label())
}

func TestNullString(t *testing.T) {
	assert.Nil(t, NullString(""))
	assert.Equal(t, "x", Deref(NullString("x")))
	assert.Equal(t, "", Deref(nil))
}

func TestCustomerName(t *testing.T) {
	assert.Equal(t, "No customer", Job{}.CustomerName())
	assert.Equal(t, "Ann", Job{Customer: &CustomerRef{Name: "Ann"}}.CustomerName())
}
