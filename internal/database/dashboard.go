package database

import (
	"context"
	"fmt"

	"painterflow/internal/models"
	"painterflow/internal/stats"
)

// DashboardCounts runs the four count-only queries behind the growth figures.
func (s *Store) DashboardCounts(ctx context.Context, userID string, w stats.Windows) (stats.Counts, error) {
	var c stats.Counts
	db := s.conn(ctx)

	queries := []struct {
		name  string
		model any
		where string
		args  []any
		dst   *int64
	}{
		{"total customers", &models.Customer{}, "", nil, &c.TotalCustomers},
		{"customers before month", &models.Customer{}, "created_at < ?", []any{w.ThisMonth.UTC()}, &c.CustomersBeforeMonth},
		{"jobs this month", &models.Job{}, "created_at >= ?", []any{w.ThisMonth.UTC()}, &c.JobsThisMonth},
		{"jobs previous month", &models.Job{}, "created_at >= ? AND created_at < ?", []any{w.PrevMonth.UTC(), w.ThisMonth.UTC()}, &c.JobsPrevMonth},
	}
	for _, q := range queries {
		tx := owned(db.Model(q.model), userID)
		if q.where != "" {
			tx = tx.Where(q.where, q.args...)
		}
		if err := tx.Count(q.dst).Error; err != nil {
			return stats.Counts{}, fmt.Errorf("count %s: %w", q.name, err)
		}
	}
	return c, nil
}
