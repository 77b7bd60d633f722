package utils

import "time"

const dateLayout = "2006-01-02"

// DaysBetween returns the number of whole calendar days from `from` to `to`.
// Both instants are reduced to their date in to's location first, so a task
// touched yesterday evening counts as 1 day old this morning regardless of
// the hour. The dates are rebuilt in UTC before subtracting: every UTC day
// is exactly 24h, so DST transitions cannot shave a day off the count.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.In(to.Location()).Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	u := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(u.Sub(f).Hours() / 24)
}

func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD value as a UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
