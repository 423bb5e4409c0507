package trendyol

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Page size ceilings. Sizes above a ceiling are clamped, not rejected.
const (
	MaxLegacyPageSize          = 200
	MaxUnapprovedPageSize      = 1000
	MaxApprovedPageSize        = 100
	MaxAttributeValuesPageSize = 1000
)

// Query accumulates filter values for a request query string.
type Query struct {
	values url.Values
}

// NewQuery returns an empty Query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Set records value under key unless it is unset: nil, a nil pointer, an
// empty string, an empty slice or a zero Date. Zero numbers and false are
// kept. Slices are joined with commas.
func (q *Query) Set(key string, value any) *Query {
	if s, ok := formatValue(value); ok {
		q.values.Set(key, s)
	}
	return q
}

// Paginate sets page and size, clamping size to ceiling.
func (q *Query) Paginate(page, size *int, ceiling int) *Query {
	return q.Set("page", page).Set("size", ClampSize(size, ceiling))
}

// Len returns the number of keys that survived filtering.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.values)
}

// Get returns the encoded value of key.
func (q *Query) Get(key string) string {
	if q == nil {
		return ""
	}
	return q.values.Get(key)
}

// Encode returns the query string with its leading "?", or "" when no key
// survived filtering.
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}
	return "?" + q.values.Encode()
}

// BuildQuery encodes a sparse filter map. See Query.Set for the rules.
func BuildQuery(filters map[string]any) string {
	q := NewQuery()
	for k, v := range filters {
		q.Set(k, v)
	}
	return q.Encode()
}

// ClampSize caps size at ceiling. A nil size stays nil.
func ClampSize(size *int, ceiling int) *int {
	if size == nil {
		return nil
	}
	v := min(*size, ceiling)
	return &v
}

func formatValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case Date:
		if v.IsZero() {
			return "", false
		}
		return strconv.FormatInt(v.Millis(), 10), true
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		s := v.String()
		return s, s != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return formatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			if s, ok := formatValue(rv.Index(i).Interface()); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ","), true
	case reflect.String:
		s := rv.String()
		return s, s != ""
	default:
		return fmt.Sprint(value), true
	}
}

// Date is an instant transmitted as epoch milliseconds. The zero Date is
// unset and omitted from queries.
type Date struct {
	ms  int64
	set bool
}

var dateLayouts = []struct {
	layout string
	loc    *time.Location
}{
	{time.RFC3339Nano, time.UTC},
	{"2006-01-02T15:04:05.999999999", time.Local},
	{"2006-01-02 15:04:05", time.Local},
	{time.DateOnly, time.UTC},
}

// DateFromMillis returns the Date at ms milliseconds since the Unix epoch.
func DateFromMillis(ms int64) Date {
	return Date{ms: ms, set: true}
}

// DateFromTime returns the Date at t.
func DateFromTime(t time.Time) Date {
	return DateFromMillis(t.UnixMilli())
}

// ParseDate parses an ISO-8601 timestamp. Date-only values are UTC midnight;
// date-times without an offset are local time.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if t, err := time.ParseInLocation(l.layout, s, l.loc); err == nil {
			return DateFromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date format: %q", s)
}

// Millis returns the epoch milliseconds.
func (d Date) Millis() int64 {
	return d.ms
}

// Time returns the instant as a time.Time in UTC.
func (d Date) Time() time.Time {
	return time.UnixMilli(d.ms).UTC()
}

// IsZero reports whether the Date is unset.
func (d Date) IsZero() bool {
	return !d.set
}

// DaysAgo returns the Date n days before now.
func DaysAgo(n int, now time.Time) Date {
	return DateFromTime(now.Add(-time.Duration(n) * 24 * time.Hour))
}
