package mapper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/domain"
)

// dateLayouts are tried in order when a date arrives as text.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"20060102T15:04:05",
	"20060102T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Int parses v as an integer, returning def when v is absent or not numeric.
// Fractional values are truncated toward zero, whether they arrive as
// numbers or as numeric text.
func Int(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return int(math.Trunc(n))
	case float32:
		return Int(float64(n), def)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(math.Trunc(f))
		}
	}
	return def
}

// Float parses v as a float, returning def when v is absent or not numeric.
// The result is never NaN or infinite.
func Float(v any, def float64) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		f = parsed
	default:
		return def
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// IntPtr is Int for optional fields: absent or unparseable yields nil.
func IntPtr(v any) *int {
	const sentinel = math.MinInt
	if i := Int(v, sentinel); i != sentinel {
		return &i
	}
	return nil
}

// FloatPtr is Float for optional fields: absent or unparseable yields nil.
func FloatPtr(v any) *float64 {
	f := Float(v, math.NaN())
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

// Date parses v into a timestamp. Empty or unparseable values yield nil,
// never a zero or invalid time.
func Date(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		c := *t
		return &c
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return &parsed
			}
		}
	}
	return nil
}

// String renders scalar wire values as text. Absent values yield "".
func String(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case int, int64, int32, float32, bool:
		return fmt.Sprint(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

// Status normalizes a status that may arrive as text or as a numeric code.
func Status(v any) string {
	switch s := v.(type) {
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return domain.StatusFromCode(i)
		}
		return strings.ToLower(strings.TrimSpace(s))
	case int, int64, int32, float64:
		return domain.StatusFromCode(Int(s, -1))
	}
	return ""
}

func stringList(v any) []string {
	switch l := v.(type) {
	case []string:
		return append([]string(nil), l...)
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			if s := String(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if l == "" {
			return nil
		}
		return []string{l}
	}
	return nil
}

func ints(v any) []int {
	const sentinel = math.MinInt
	switch l := v.(type) {
	case []int:
		return append([]int(nil), l...)
	case []any:
		out := make([]int, 0, len(l))
		for _, item := range l {
			if i := Int(item, sentinel); i != sentinel {
				out = append(out, i)
			}
		}
		return out
	}
	return nil
}
