package payroll

import (
	"testing"
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart_MondayThroughSunday(t *testing.T) {
	// 2025-03-10 is a Monday.
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2025, 3, 12, 23, 59, 0, 0, time.UTC)},
		{"sunday maps back six days", time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, WeekStart(tc.in, time.UTC).Equal(monday))
		})
	}
}

func TestWeekStart_UsesLocalTimezone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-17 02:00 UTC is still Sunday evening 2025-03-16 in New York,
	// so locally the shift belongs to the week of Monday 2025-03-10.
	instant := time.Date(2025, 3, 17, 2, 0, 0, 0, time.UTC)

	utcWeek := WeekStart(instant, time.UTC)
	nyWeek := WeekStart(instant, ny)

	assert.Equal(t, "2025-03-17", utcWeek.Format("2006-01-02"))
	assert.Equal(t, "2025-03-10", nyWeek.Format("2006-01-02"))
}

func TestWeekStart_NilLocationDefaultsToUTC(t *testing.T) {
	instant := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	assert.True(t, WeekStart(instant, nil).Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func closedRange(id string, start time.Time, hours float64, loc *time.Location) payroll.TimeRange {
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return payroll.TimeRange{EntryID: id, Start: start, End: &end, Location: loc}
}

func TestBucketByWeek_GroupsByMondayStart(t *testing.T) {
	entries := []payroll.TimeRange{
		closedRange("a", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 8, time.UTC),
		closedRange("b", time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), 8, time.UTC),
		closedRange("c", time.Date(2025, 3, 18, 9, 0, 0, 0, time.UTC), 8, time.UTC),
	}

	buckets := BucketByWeek(entries)

	require.Len(t, buckets, 2)
	assert.Len(t, buckets["2025-03-10"], 2)
	assert.Len(t, buckets["2025-03-17"], 1)
}

func TestBucketByWeek_DropsOpenEntries(t *testing.T) {
	open := payroll.TimeRange{
		EntryID:  "open",
		Start:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Location: time.UTC,
	}
	entries := []payroll.TimeRange{
		open,
		closedRange("closed", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 8, time.UTC),
	}

	buckets := BucketByWeek(entries)

	require.Len(t, buckets, 1)
	require.Len(t, buckets["2025-03-10"], 1)
	assert.Equal(t, "closed", buckets["2025-03-10"][0].EntryID)
}
