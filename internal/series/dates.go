package series

import (
	"strconv"
	"strings"
	"time"
)

// FormatDayLabel turns a "YYYY-MM-DD" date into a short label like "Sep 8".
// The date is assembled from explicit year/month/day components in UTC:
// parsing the bare string generically would pin it to UTC midnight and let a
// westward local timezone render it as the previous day. Anything that does
// not look like a calendar date is returned unchanged.
func FormatDayLabel(d string) string {
	if len(d) < 10 || d[4] != '-' || d[7] != '-' {
		return d
	}
	year, err := strconv.Atoi(d[:4])
	if err != nil {
		return d
	}
	month, err := strconv.Atoi(d[5:7])
	if err != nil || month < 1 || month > 12 {
		return d
	}
	day, err := strconv.Atoi(d[8:10])
	if err != nil || day < 1 || day > 31 {
		return d
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("Jan 2")
}

// dayOf extracts the date portion of a feed timestamp: everything before the
// time separator ('T' per ISO-8601, with a space accepted for lenience).
func dayOf(timestamp string) string {
	timestamp = strings.TrimSpace(timestamp)
	if idx := strings.IndexAny(timestamp, "T "); idx > 0 {
		return timestamp[:idx]
	}
	return timestamp
}
