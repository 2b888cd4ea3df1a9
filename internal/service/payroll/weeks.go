package payroll

import (
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
)

const weekKeyFormat = "2006-01-02"

// WeekStart returns the most recent Monday at local midnight for the given
// instant. Sunday maps to the Monday six days prior, so weeks run
// Monday through Sunday.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	offset := (int(lt.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	day := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return day.AddDate(0, 0, -offset)
}

// BucketByWeek groups closed ranges by the Monday-start week of their start
// instant in the entry's local timezone. Keys are week start dates in
// YYYY-MM-DD form. Open ranges are dropped before bucketing so they cannot
// skew a week's totals. Only membership matters; order within a bucket is
// irrelevant.
func BucketByWeek(entries []payroll.TimeRange) map[string][]payroll.TimeRange {
	buckets := make(map[string][]payroll.TimeRange)
	for _, e := range entries {
		if e.Open() {
			continue
		}
		ws := WeekStart(e.Start, e.Location)
		key := ws.Format(weekKeyFormat)
		buckets[key] = append(buckets[key], e)
	}
	return buckets
}
