package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobStatus string

const (
	JobScheduled  JobStatus = "scheduled"
	JobInProgress JobStatus = "in_progress"
	JobDone       JobStatus = "done"
)

var JobStatuses = []JobStatus{JobScheduled, JobInProgress, JobDone}

func (s JobStatus) Valid() bool {
	switch s {
	case JobScheduled, JobInProgress, JobDone:
		return true
	}
	return false
}

func (s JobStatus) Label() string {
	switch s {
	case JobScheduled:
		return "Scheduled"
	case JobInProgress:
		return "In Progress"
	case JobDone:
		return "Done"
	}
	return string(s)
}

// Paint finishes offered on the job form.
var Finishes = []string{"flat", "eggshell", "satin", "semi-gloss", "gloss"}

// Job is a unit of painting work on a calendar day.
type Job struct {
	Base
	CustomerID  *string        `gorm:"type:varchar(36);index" json:"customer_id"`
	Date        datatypes.Date `gorm:"not null;index" json:"date"`
	Status      JobStatus      `gorm:"type:varchar(20);not null" json:"status"`
	Areas       *string        `gorm:"type:text" json:"areas"`
	PaintColors *string        `gorm:"type:text" json:"paint_colors"`
	Finish      *string        `gorm:"size:32" json:"finish"`
	Materials   *string        `gorm:"type:text" json:"materials"`
	Notes       *string        `gorm:"type:text" json:"notes"`

	Customer *CustomerRef `gorm:"-" json:"customer"`
}

func (j *Job) CustomerKey() *string { return j.CustomerID }
func (j *Job) SetCustomer(ref *CustomerRef) { j.Customer = ref }

// Day is the job date at midnight UTC.
func (j Job) Day() time.Time {
	y, m, d := time.Time(j.Date).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Upcoming reports whether the job is still ahead of today and not done.
// Every job is either upcoming or past, never both.
func (j Job) Upcoming(today time.Time) bool {
	return !j.Day().Before(today) && j.Status != JobDone
}

// CustomerName is what the lists show for the assigned customer.
func (j Job) CustomerName() string {
	if j.Customer == nil {
		return "No customer"
	}
	return j.Customer.Name
}
