package httpx

import (
	"sort"
	"strings"
)

// Violations maps a form field to what is wrong with it.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func (v Violations) Add(field, problem string) {
	v[field] = problem
}

// Error renders the violations as one sentence for an HTML form.
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strings.ReplaceAll(f, "_", " ") + " is " + strings.ReplaceAll(v[f], "_", " ")
	}
	s := strings.Join(parts, ", ")
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
