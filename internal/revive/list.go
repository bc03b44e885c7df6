package revive

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

// ListOptions shapes a list result client-side.
type ListOptions struct {
	// Limit caps the number of results; nil means unbounded
	Limit *int
	// Offset skips results; nil means 0
	Offset *int
	// SortBy names the field to sort on; empty keeps server order
	SortBy string
	// SortOrder is asc (default) or desc
	SortOrder string
}

// Validate checks the pagination and ordering arguments.
func (o ListOptions) Validate() error {
	if o.Limit != nil && *o.Limit < 0 {
		return domain.Invalid("limit", "must not be negative")
	}
	if o.Offset != nil && *o.Offset < 0 {
		return domain.Invalid("offset", "must not be negative")
	}
	if o.SortOrder != "" && !domain.OneOf(o.SortOrder, domain.SortOrders) {
		return domain.Invalid("sortOrder", "must be one of %v", domain.SortOrders)
	}
	return nil
}

// fielder is a record that exposes named fields for filtering and sorting.
type fielder interface {
	Field(name string) (any, bool)
}

// filter is an exact-match predicate on one field.
type filter struct {
	field string
	value any
}

// shape applies filters, then a stable sort, then offset and limit.
func shape[T fielder](items []T, filters []filter, opts ListOptions) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, filters) {
			out = append(out, item)
		}
	}

	if opts.SortBy != "" {
		desc := opts.SortOrder == "desc"
		slices.SortStableFunc(out, func(a, b T) int {
			c := compareFields(a, b, opts.SortBy)
			if desc {
				return -c
			}
			return c
		})
	}

	offset := 0
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if offset >= len(out) {
		return out[:0]
	}
	out = out[offset:]
	if opts.Limit != nil && *opts.Limit < len(out) {
		out = out[:*opts.Limit]
	}
	return out
}

func matches(item fielder, filters []filter) bool {
	for _, f := range filters {
		v, ok := item.Field(f.field)
		if !ok || !equalValues(v, f.value) {
			return false
		}
	}
	return true
}

// equalValues compares a field value with a filter value. Numbers compare
// by value regardless of their Go type.
func equalValues(v, want any) bool {
	if n, ok := number(want); ok {
		got, ok := number(v)
		return ok && got == n
	}
	return v == want
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// compareFields orders a and b by field; an absent value sorts before a
// present one.
func compareFields(a, b fielder, field string) int {
	av, aok := a.Field(field)
	bv, bok := b.Field(field)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return compareValues(av, bv)
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	return 0
}
