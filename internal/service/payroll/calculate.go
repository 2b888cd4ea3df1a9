package payroll

import (
	"sort"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculate computes tiered hours and gross pay for a set of raw entries.
// Pure function: no I/O, no clock reads.
//
// Invalid entries are excluded, open entries contribute nothing, and an
// empty (or all-open) input yields a zero-valued result rather than an
// error. The hourly rate is resolved once per batch at the earliest entry's
// start date (payroll.RateResolutionBatch); pay arithmetic runs in decimal
// and is rounded to whole cents exactly once at the end.
func Calculate(entries []payroll.RawEntry, rateRecords []payrate.RateRecord, config payroll.OvertimeConfig) payroll.PayrollResult {
	ranges := make([]payroll.TimeRange, 0, len(entries))
	for _, raw := range entries {
		rng, err := Normalize(raw)
		if err != nil {
			continue
		}
		if rng.Open() {
			continue
		}
		ranges = append(ranges, rng)
	}

	var result payroll.PayrollResult
	if len(ranges) == 0 {
		return result
	}

	earliest := ranges[0].Start
	for _, r := range ranges[1:] {
		if r.Start.Before(earliest) {
			earliest = r.Start
		}
	}
	rateCents, rateOK := ResolveRate(rateRecords, earliest)
	result.HourlyRateCents = rateCents
	result.RateMissing = !rateOK

	buckets := BucketByWeek(ranges)

	// Iterate weeks in key order so repeated runs over the same input sum
	// floats in the same order and stay bit-identical.
	weekKeys := make([]string, 0, len(buckets))
	for key := range buckets {
		weekKeys = append(weekKeys, key)
	}
	sort.Strings(weekKeys)

	rate := decimal.NewFromInt(rateCents)
	pay := decimal.Zero

	for _, key := range weekKeys {
		week := CalculateWeek(buckets[key], config)

		result.RegularHours += week.Regular
		result.OvertimeHours += week.Overtime
		result.DoubleTimeHours += week.DoubleTime
		result.TotalHours += week.Total()

		weekPay := decimal.NewFromFloat(week.Regular).Mul(rate).
			Add(decimal.NewFromFloat(week.Overtime).Mul(rate).Mul(config.OvertimeMultiplier)).
			Add(decimal.NewFromFloat(week.DoubleTime).Mul(rate).Mul(config.DoubleTimeMultiplier))
		pay = pay.Add(weekPay)
	}

	result.GrossPayCents = pay.Round(0).IntPart()

	result.SourceEntryIDs = make([]string, 0, len(ranges))
	for _, r := range ranges {
		result.SourceEntryIDs = append(result.SourceEntryIDs, r.EntryID)
	}

	return result
}

// DeltaFromResult converts a calculation result into the increment a shift
// close adds to its daily summary.
func DeltaFromResult(res payroll.PayrollResult) payroll.SummaryDelta {
	return payroll.SummaryDelta{
		TotalHours:      res.TotalHours,
		RegularHours:    res.RegularHours,
		OvertimeHours:   res.OvertimeHours,
		DoubleTimeHours: res.DoubleTimeHours,
		PayCents:        res.GrossPayCents,
	}
}

// MergeSummary additively merges a delta into an existing daily summary, or
// seeds a fresh one when existing is nil. The merge itself is not
// synchronized; concurrent merges for the same key must run under the
// serializing transaction in the repository layer or updates get lost.
func MergeSummary(existing *payroll.DailySummary, delta payroll.SummaryDelta) payroll.DailySummary {
	var s payroll.DailySummary
	if existing != nil {
		s = *existing
	}
	s.TotalHours += delta.TotalHours
	s.RegularHours += delta.RegularHours
	s.OvertimeHours += delta.OvertimeHours
	s.DoubleTimeHours += delta.DoubleTimeHours
	s.TotalPayCents += delta.PayCents
	return s
}
