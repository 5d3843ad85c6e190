package domain

import (
	"time"

	"github.com/dustin/go-humanize"
)

// TimeAgo renders ISO-8601 date relative to now, e.g. "3 hours ago".
// Returns empty string for dates it can't parse.
func TimeAgo(date string, now time.Time) string {
	ts, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return ""
	}
	if now.Sub(ts) < time.Minute {
		return "Just now"
	}
	return humanize.RelTime(ts, now, "ago", "from now")
}
