package database

import (
	"context"
	"time"

	"painterflow/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobPatch carries every editable job field. Nil text fields are stored as
// NULL.
type JobPatch struct {
	CustomerID  *string
	Date        time.Time
	Status      models.JobStatus
	Areas       *string
	PaintColors *string
	Finish      *string
	Materials   *string
	Notes       *string
}

// DateOnly truncates t to its calendar day at midnight UTC.
func DateOnly(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func jobsLinked(jobs []models.Job) []models.CustomerLinked {
	out := make([]models.CustomerLinked, len(jobs))
	for i := range jobs {
		out[i] = &jobs[i]
	}
	return out
}

// ListJobs returns every job of the account ordered by date.
func (s *Store) ListJobs(ctx context.Context, userID string) ([]models.Job, error) {
	db := s.conn(ctx)
	var jobs []models.Job
	if err := owned(db, userID).
		Order("jobs.date asc").Order("created_at asc").Order("id asc").
		Find(&jobs).Error; err != nil {
		return nil, mapError(err)
	}
	return jobs, attachCustomers(db, userID, jobsLinked(jobs))
}

// JobsBetween returns the jobs whose date falls in [from, to].
func (s *Store) JobsBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Job, error) {
	db := s.conn(ctx)
	var jobs []models.Job
	if err := owned(db, userID).
		Where("jobs.date >= ? AND jobs.date <= ?", DateOnly(from), DateOnly(to)).
		Order("jobs.date asc").Order("id asc").
		Find(&jobs).Error; err != nil {
		return nil, mapError(err)
	}
	return jobs, attachCustomers(db, userID, jobsLinked(jobs))
}

// UpcomingJobs returns up to limit jobs on or after today that are not done.
func (s *Store) UpcomingJobs(ctx context.Context, userID string, today time.Time, limit int) ([]models.Job, error) {
	db := s.conn(ctx)
	var jobs []models.Job
	if err := owned(db, userID).
		Where("jobs.date >= ? AND status <> ?", DateOnly(today), models.JobDone).
		Order("jobs.date asc").Order("id asc").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, mapError(err)
	}
	return jobs, attachCustomers(db, userID, jobsLinked(jobs))
}

func (s *Store) GetJob(ctx context.Context, userID, id string) (*models.Job, error) {
	db := s.conn(ctx)
	var j models.Job
	if err := owned(db, userID).Where("id = ?", id).First(&j).Error; err != nil {
		return nil, mapError(err)
	}
	if err := attachCustomers(db, userID, []models.CustomerLinked{&j}); err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *Store) CreateJob(ctx context.Context, userID string, j *models.Job) error {
	if j.Status == "" {
		j.Status = models.JobScheduled
	}
	if !j.Status.Valid() {
		return ErrInvalidStatus
	}
	j.UserID = userID
	j.Date = DateOnly(time.Time(j.Date))

	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCustomer(tx, userID, j.CustomerID); err != nil {
			return err
		}
		return mapError(tx.Create(j).Error)
	})
}

// UpdateJob overwrites the editable fields of a job.
func (s *Store) UpdateJob(ctx context.Context, userID, id string, p JobPatch) (*models.Job, error) {
	if !p.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Job
		if err := owned(tx, userID).Where("id = ?", id).First(&existing).Error; err != nil {
			return mapError(err)
		}
		if err := checkCustomer(tx, userID, p.CustomerID); err != nil {
			return err
		}
		return mapError(tx.Model(&existing).Updates(map[string]any{
			"customer_id":  p.CustomerID,
			"date":         DateOnly(p.Date),
			"status":       p.Status,
			"areas":        p.Areas,
			"paint_colors": p.PaintColors,
			"finish":       p.Finish,
			"materials":    p.Materials,
			"notes":        p.Notes,
		}).Error)
	})
	if err != nil {
		return nil, err
	}
	return s.GetJob(ctx, userID, id)
}

func (s *Store) DeleteJob(ctx context.Context, userID, id string) error {
	res := owned(s.conn(ctx), userID).Where("id = ?", id).Delete(&models.Job{})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
