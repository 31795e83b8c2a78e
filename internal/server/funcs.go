package server

import (
	"html/template"
	"strconv"
	"time"

	"painterflow/internal/models"
	"painterflow/internal/pricing"

	"gorm.io/datatypes"
)

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	case datatypes.Date:
		return time.Time(t), true
	case *datatypes.Date:
		if t != nil {
			return time.Time(*t), true
		}
	}
	return time.Time{}, false
}

// formatDate renders dates the way every list shows them. Calendar days are
// printed as stored, with no timezone shift.
func formatDate(v any) string {
	t, ok := asTime(v)
	if !ok || t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

func formatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

func isoDate(v any) string {
	t, ok := asTime(v)
	if !ok || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// growth renders a percentage with its sign.
func growth(pct int) string {
	if pct > 0 {
		return "+" + strconv.Itoa(pct) + "%"
	}
	return strconv.Itoa(pct) + "%"
}

// picker is the argument of the customerOptions template.
func picker(customers []models.CustomerRef, selected string) map[string]any {
	return map[string]any{"customers": customers, "selected": selected}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money":   pricing.FormatMoney,
		"date":    formatDate,
		"isoDate": isoDate,
		"clock":   formatClock,
		"deref":   models.Deref,
		"growth":  growth,
		"sub":     func(a, b int) int { return a - b },
		"picker":  picker,
	}
}
