package payroll

import (
	"testing"
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

func weekBucket(hoursPerEntry ...float64) []payroll.TimeRange {
	bucket := make([]payroll.TimeRange, 0, len(hoursPerEntry))
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for _, h := range hoursPerEntry {
		end := start.Add(time.Duration(h * float64(time.Hour)))
		bucket = append(bucket, payroll.TimeRange{Start: start, End: &end, Location: time.UTC})
		start = start.Add(24 * time.Hour)
	}
	return bucket
}

func TestCalculateWeek_AllRegularUnderThreshold(t *testing.T) {
	week := CalculateWeek(weekBucket(8, 8, 8, 8), payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 32, week.Regular, 1e-9)
	assert.Zero(t, week.Overtime)
	assert.Zero(t, week.DoubleTime)
}

func TestCalculateWeek_ExactlyAtThreshold(t *testing.T) {
	week := CalculateWeek(weekBucket(8, 8, 8, 8, 8), payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 40, week.Regular, 1e-9)
	assert.Zero(t, week.Overtime)
	assert.Zero(t, week.DoubleTime)
}

func TestCalculateWeek_OvertimeBeyondForty(t *testing.T) {
	week := CalculateWeek(weekBucket(9, 9, 9, 9, 9), payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 40, week.Regular, 1e-9)
	assert.InDelta(t, 5, week.Overtime, 1e-9)
	assert.Zero(t, week.DoubleTime)
}

func TestCalculateWeek_DoubleTimeTier(t *testing.T) {
	threshold := 60.0
	config := payroll.DefaultOvertimeConfig()
	config.DoubleTimeThresholdHours = &threshold

	// 65 hours: 40 regular, 20 overtime (40..60), 5 double time (60..65).
	week := CalculateWeek(weekBucket(13, 13, 13, 13, 13), config)

	assert.InDelta(t, 40, week.Regular, 1e-9)
	assert.InDelta(t, 20, week.Overtime, 1e-9)
	assert.InDelta(t, 5, week.DoubleTime, 1e-9)
}

func TestCalculateWeek_NoDoubleTimeWithoutThreshold(t *testing.T) {
	week := CalculateWeek(weekBucket(13, 13, 13, 13, 13), payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 40, week.Regular, 1e-9)
	assert.InDelta(t, 25, week.Overtime, 1e-9)
	assert.Zero(t, week.DoubleTime)
}

func TestCalculateWeek_TiersSumToTotal(t *testing.T) {
	threshold := 50.0
	config := payroll.DefaultOvertimeConfig()
	config.DoubleTimeThresholdHours = &threshold

	bucket := weekBucket(7.25, 9.5, 11.75, 10.0, 12.25, 6.5)
	var total float64
	for _, e := range bucket {
		total += e.Hours()
	}

	week := CalculateWeek(bucket, config)

	assert.InDelta(t, total, week.Total(), 1e-9)
	assert.GreaterOrEqual(t, week.Regular, 0.0)
	assert.GreaterOrEqual(t, week.Overtime, 0.0)
	assert.GreaterOrEqual(t, week.DoubleTime, 0.0)
}

func TestCalculateWeek_EmptyBucket(t *testing.T) {
	week := CalculateWeek(nil, payroll.DefaultOvertimeConfig())

	assert.Zero(t, week.Regular)
	assert.Zero(t, week.Overtime)
	assert.Zero(t, week.DoubleTime)
}

func TestCalculateWeek_ClampedEntryFeedsTiers(t *testing.T) {
	// A 30 hour entry counts as 24; combined with a 20 hour entry the week
	// totals 44, not 50.
	week := CalculateWeek(weekBucket(30, 20), payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 44, week.Total(), 1e-9)
	assert.InDelta(t, 40, week.Regular, 1e-9)
	assert.InDelta(t, 4, week.Overtime, 1e-9)
}
