package http

import "time"

// Form datetime layouts. Browsers submit datetime-local inputs without a
// zone; we interpret them as local clinic time.
const (
	formDateTimeLayout = "2006-01-02T15:04"
	formDateLayout     = time.DateOnly
)

// parseFormDateTime parses a datetime-local form value. The zero time is
// returned for empty or malformed input; services treat zero as missing and
// produce the field error.
func parseFormDateTime(s string) time.Time {
	t, err := time.ParseInLocation(formDateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseFormDate parses a date-only form value.
func parseFormDate(s string) time.Time {
	t, err := time.ParseInLocation(formDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
