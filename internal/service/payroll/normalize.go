package payroll

import (
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
)

// Normalize converts a raw stored entry into a canonical TimeRange.
// Timestamps arrive as a tagged union (ISO-8601 string, epoch seconds, or a
// native time value) and are resolved exactly once here; everything
// downstream works with UTC instants.
//
// Returns an error for malformed entries (no parseable start, unparseable
// end, end before start). Batch callers exclude such entries rather than
// failing the whole calculation. An absent end is not an error: the range
// is open and contributes zero hours.
func Normalize(raw payroll.RawEntry) (payroll.TimeRange, error) {
	start, ok := raw.Start.Resolve()
	if !ok {
		return payroll.TimeRange{}, payroll.ErrMissingStart
	}

	loc := time.UTC
	if raw.Timezone != "" {
		if l, err := time.LoadLocation(raw.Timezone); err == nil {
			loc = l
		}
	}

	rng := payroll.TimeRange{
		EntryID:  raw.EntryID,
		Start:    start,
		Location: loc,
	}

	if raw.End.Absent() {
		return rng, nil
	}

	end, ok := raw.End.Resolve()
	if !ok {
		return payroll.TimeRange{}, payroll.ErrUnparseableEnd
	}
	if end.Before(start) {
		return payroll.TimeRange{}, payroll.ErrEndBeforeStart
	}

	rng.End = &end
	return rng, nil
}
