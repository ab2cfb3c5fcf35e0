package model

import "time"

// TIMESTAMP_LAYOUT matches the ISO-8601 form produced by browsers, so stored
// timestamps sort lexicographically in time order.
const TIMESTAMP_LAYOUT = "2006-01-02T15:04:05.000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TIMESTAMP_LAYOUT)
}

func Now() string {
	return FormatTimestamp(time.Now())
}

// ParseTimestamp accepts any RFC 3339 timestamp. Unparsable values yield the zero time.
func ParseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
