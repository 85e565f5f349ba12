package kernel

import "time"

// TimestampLayout is the fixed, locale-independent layout used when timestamps
// are rendered for people.
const TimestampLayout = "2006-01-02 15:04:05"

// Clock returns the current time. It is injected wherever a timestamp is recorded.
type Clock func() time.Time

// SystemClock returns a Clock reading the wall clock in UTC.
func SystemClock() Clock {
	return func() time.Time {
		return time.Now().UTC()
	}
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
