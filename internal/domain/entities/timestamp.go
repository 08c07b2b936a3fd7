package entities

import (
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is used for every server-stamped time: UTC, microseconds,
// literal Z.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

var reportDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,6}Z$`)

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseReportDate accepts YYYY-MM-DDTHH:MM:SS.ffffffZ with 1 to 6 fraction
// digits.
func ParseReportDate(s string) (time.Time, error) {
	if !reportDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("report date %q does not match YYYY-MM-DDTHH:MM:SS.ffffffZ", s)
	}
	// time.Parse accepts a fractional second after the seconds field even
	// when the layout has none.
	return time.Parse("2006-01-02T15:04:05Z", s)
}
