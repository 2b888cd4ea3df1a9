package payroll

import (
	"fmt"
	"testing"
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawShift(id string, start time.Time, hours float64) payroll.RawEntry {
	return payroll.RawEntry{
		EntryID: id,
		Start:   payroll.NativeTimestamp(start),
		End:     payroll.NativeTimestamp(start.Add(time.Duration(hours * float64(time.Hour)))),
	}
}

// weekOfShifts spreads the given daily hours across consecutive days
// starting at the given Monday.
func weekOfShifts(monday time.Time, dailyHours ...float64) []payroll.RawEntry {
	entries := make([]payroll.RawEntry, 0, len(dailyHours))
	for i, h := range dailyHours {
		start := monday.AddDate(0, 0, i).Add(9 * time.Hour)
		entries = append(entries, rawShift(fmt.Sprintf("day-%d", i), start, h))
	}
	return entries
}

func TestCalculate_FortyFiveHourWeekAtTwentyDollars(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := weekOfShifts(monday, 9, 9, 9, 9, 9)
	rates := []payrate.RateRecord{rateRecord(2000, "2025-01-01")}

	result := Calculate(entries, rates, payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 40, result.RegularHours, 1e-9)
	assert.InDelta(t, 5, result.OvertimeHours, 1e-9)
	assert.Zero(t, result.DoubleTimeHours)
	assert.InDelta(t, 45, result.TotalHours, 1e-9)
	assert.Equal(t, int64(2000), result.HourlyRateCents)
	assert.False(t, result.RateMissing)
	// 40h * $20 + 5h * $20 * 1.5 = $800 + $150 = $950
	assert.Equal(t, int64(95000), result.GrossPayCents)
	assert.Len(t, result.SourceEntryIDs, 5)
}

func TestCalculate_DoubleTimeWeek(t *testing.T) {
	threshold := 60.0
	config := payroll.DefaultOvertimeConfig()
	config.DoubleTimeThresholdHours = &threshold

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := weekOfShifts(monday, 13, 13, 13, 13, 13)
	rates := []payrate.RateRecord{rateRecord(2000, "2025-01-01")}

	result := Calculate(entries, rates, config)

	assert.InDelta(t, 40, result.RegularHours, 1e-9)
	assert.InDelta(t, 20, result.OvertimeHours, 1e-9)
	assert.InDelta(t, 5, result.DoubleTimeHours, 1e-9)
	// 40*$20 + 20*$20*1.5 + 5*$20*2 = $800 + $600 + $200 = $1600
	assert.Equal(t, int64(160000), result.GrossPayCents)
}

func TestCalculate_MultipleWeeksBucketedIndependently(t *testing.T) {
	// 45 hours in week one and 20 hours in week two: overtime applies only
	// within week one, never across the combined 65.
	week1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	entries := append(weekOfShifts(week1, 9, 9, 9, 9, 9), weekOfShifts(week2, 10, 10)...)
	rates := []payrate.RateRecord{rateRecord(1000, "2025-01-01")}

	result := Calculate(entries, rates, payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 60, result.RegularHours, 1e-9)
	assert.InDelta(t, 5, result.OvertimeHours, 1e-9)
	// 60*$10 + 5*$10*1.5 = $600 + $75
	assert.Equal(t, int64(67500), result.GrossPayCents)
}

func TestCalculate_EmptyInputYieldsZeroResult(t *testing.T) {
	result := Calculate(nil, []payrate.RateRecord{rateRecord(2000, "2025-01-01")}, payroll.DefaultOvertimeConfig())

	assert.Zero(t, result.TotalHours)
	assert.Zero(t, result.GrossPayCents)
	assert.Zero(t, result.HourlyRateCents)
	assert.False(t, result.RateMissing)
	assert.Empty(t, result.SourceEntryIDs)
}

func TestCalculate_OpenAndInvalidEntriesExcluded(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	open := payroll.RawEntry{
		EntryID: "open",
		Start:   payroll.NativeTimestamp(monday.Add(9 * time.Hour)),
		End:     payroll.NoTimestamp(),
	}
	broken := payroll.RawEntry{
		EntryID: "broken",
		Start:   payroll.NoTimestamp(),
	}
	entries := []payroll.RawEntry{open, broken, rawShift("good", monday.Add(9*time.Hour), 8)}
	rates := []payrate.RateRecord{rateRecord(1500, "2025-01-01")}

	result := Calculate(entries, rates, payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 8, result.TotalHours, 1e-9)
	assert.Equal(t, []string{"good"}, result.SourceEntryIDs)
}

func TestCalculate_RateMissingFlagsZeroPay(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := weekOfShifts(monday, 8, 8)

	result := Calculate(entries, nil, payroll.DefaultOvertimeConfig())

	assert.InDelta(t, 16, result.TotalHours, 1e-9)
	assert.True(t, result.RateMissing)
	assert.Zero(t, result.GrossPayCents)
}

func TestCalculate_RateResolvedAtEarliestEntryStart(t *testing.T) {
	// The batch spans a rate change; the whole batch is priced at the rate
	// in effect when the earliest entry started.
	rates := []payrate.RateRecord{
		rateRecord(1500, "2025-01-01"),
		rateRecord(1800, "2025-03-12"),
	}

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := weekOfShifts(monday, 8, 8, 8, 8) // Mon through Thu

	result := Calculate(entries, rates, payroll.DefaultOvertimeConfig())

	assert.Equal(t, int64(1500), result.HourlyRateCents)
	assert.Equal(t, int64(48000), result.GrossPayCents)
}

func TestCalculate_RepeatedRunsAreIdentical(t *testing.T) {
	threshold := 55.0
	config := payroll.DefaultOvertimeConfig()
	config.DoubleTimeThresholdHours = &threshold

	week1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	week3 := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
	entries := append(weekOfShifts(week1, 7.25, 9.5, 11.75, 10.0, 12.25),
		append(weekOfShifts(week2, 8.1, 8.2, 8.3), weekOfShifts(week3, 12, 12, 12, 12, 12)...)...)
	rates := []payrate.RateRecord{rateRecord(1725, "2025-01-01")}

	first := Calculate(entries, rates, config)
	for i := 0; i < 10; i++ {
		again := Calculate(entries, rates, config)
		require.Equal(t, first, again)
	}
}

func TestDeltaFromResult(t *testing.T) {
	res := payroll.PayrollResult{
		RegularHours:    40,
		OvertimeHours:   5,
		DoubleTimeHours: 1,
		TotalHours:      46,
		GrossPayCents:   99999,
	}

	delta := DeltaFromResult(res)

	assert.Equal(t, 46.0, delta.TotalHours)
	assert.Equal(t, 40.0, delta.RegularHours)
	assert.Equal(t, 5.0, delta.OvertimeHours)
	assert.Equal(t, 1.0, delta.DoubleTimeHours)
	assert.Equal(t, int64(99999), delta.PayCents)
}

func TestMergeSummary_SeedsAndAccumulates(t *testing.T) {
	delta := payroll.SummaryDelta{
		TotalHours:   8,
		RegularHours: 8,
		PayCents:     12000,
	}

	fresh := MergeSummary(nil, delta)
	assert.Equal(t, 8.0, fresh.TotalHours)
	assert.Equal(t, int64(12000), fresh.TotalPayCents)

	merged := MergeSummary(&fresh, payroll.SummaryDelta{
		TotalHours:    4,
		RegularHours:  4,
		OvertimeHours: 0,
		PayCents:      6000,
	})
	assert.Equal(t, 12.0, merged.TotalHours)
	assert.Equal(t, 12.0, merged.RegularHours)
	assert.Equal(t, int64(18000), merged.TotalPayCents)
}
