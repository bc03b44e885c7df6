package revive

import (
	"strings"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

// dateLayout is the calendar date format accepted on input.
const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD (or RFC 3339) input date. Empty input
// yields nil.
func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, domain.Invalid(field, "must be a date in YYYY-MM-DD format, got %q", s)
}

// parseDatePtr is parseDate for optional update fields.
func parseDatePtr(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(field, *s)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.Invalid(field, "must not be empty")
	}
	return t, nil
}

func checkDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domain.Invalid("endDate", "must not be before startDate")
	}
	return nil
}

func requireID(field string, id int) error {
	if id <= 0 {
		return domain.Invalid(field, "must be a positive integer")
	}
	return nil
}

func requireName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.Required(field)
	}
	return nil
}

func checkEnum(field, v string, set []string) error {
	if v != "" && !domain.OneOf(v, set) {
		return domain.Invalid(field, "must be one of %v", set)
	}
	return nil
}

func checkEnumPtr(field string, v *string, set []string) error {
	if v == nil {
		return nil
	}
	if !domain.OneOf(*v, set) {
		return domain.Invalid(field, "must be one of %v", set)
	}
	return nil
}

func checkNonNegative(field string, v *int) error {
	if v != nil && *v < 0 {
		return domain.Invalid(field, "must not be negative")
	}
	return nil
}

func checkPositive(field string, v *int) error {
	if v != nil && *v <= 0 {
		return domain.Invalid(field, "must be positive")
	}
	return nil
}

func checkBudget(v *float64) error {
	if v != nil && *v < 0 {
		return domain.Invalid("budget", "must not be negative")
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
