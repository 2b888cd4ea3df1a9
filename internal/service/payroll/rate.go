package payroll

import (
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
)

// ResolveRate picks the hourly rate (in cents) in effect on the given date
// from an unordered, append-only set of rate records.
//
// Records with a non-positive rate are ignored. Among records effective on
// or before the date, the latest effective_from wins; ties go to the most
// recently inserted record (slice order), which keeps resolution
// deterministic. When no record is effective yet - the rate was entered
// after time entries already existed - the most recent positive-rate record
// wins regardless of date, so payroll still computes. Whether applying a
// future rate retroactively is correct is an open business question; this
// mirrors observed behavior and must not change silently, since changing it
// would alter historical payroll amounts.
//
// ok is false only when there are zero positive-rate records at all.
// Callers treat that as "rate unknown" and compute zero pay with a
// rate-missing flag rather than failing.
func ResolveRate(records []payrate.RateRecord, onDate time.Time) (cents int64, ok bool) {
	var effective *payrate.RateRecord
	var latest *payrate.RateRecord

	for i := range records {
		r := &records[i]
		if r.HourlyRateCents <= 0 {
			continue
		}
		if latest == nil || !r.EffectiveFrom.Before(latest.EffectiveFrom) {
			latest = r
		}
		if r.EffectiveFrom.After(onDate) {
			continue
		}
		if effective == nil || !r.EffectiveFrom.Before(effective.EffectiveFrom) {
			effective = r
		}
	}

	if effective != nil {
		return effective.HourlyRateCents, true
	}
	if latest != nil {
		return latest.HourlyRateCents, true
	}
	return 0, false
}
