package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxShiftHours caps how many hours a single entry can contribute.
// Protects weekly totals from clock errors and bogus clock-outs.
const MaxShiftHours = 24.0

// RateResolutionGranularity - how often the hourly rate is resolved during
// a calculation. The engine resolves once per batch using the earliest entry
// start date; a rate change inside the window is priced at the window-start
// rate. Kept as a named policy so it can be revisited without re-deriving
// the calculator.
type RateResolutionGranularity string

const RateResolutionBatch RateResolutionGranularity = "batch"

// TimestampKind enum for the raw timestamp union
type TimestampKind int

const (
	TimestampAbsent TimestampKind = iota
	TimestampString
	TimestampUnix
	TimestampNative
)

// Timestamp is the tagged union of stored timestamp representations
// (ISO-8601 string, epoch-seconds wrapper, native time value). It is resolved
// once at the boundary into a canonical UTC instant.
type Timestamp struct {
	kind TimestampKind
	str  string
	unix int64
	t    time.Time
}

func StringTimestamp(s string) Timestamp {
	return Timestamp{kind: TimestampString, str: s}
}

func UnixTimestamp(sec int64) Timestamp {
	return Timestamp{kind: TimestampUnix, unix: sec}
}

func NativeTimestamp(t time.Time) Timestamp {
	return Timestamp{kind: TimestampNative, t: t}
}

func NoTimestamp() Timestamp {
	return Timestamp{kind: TimestampAbsent}
}

func (ts Timestamp) Kind() TimestampKind {
	return ts.kind
}

func (ts Timestamp) Absent() bool {
	return ts.kind == TimestampAbsent
}

// Resolve converts the union to a UTC instant. ok is false when the
// representation cannot be parsed; absent timestamps also report false.
func (ts Timestamp) Resolve() (time.Time, bool) {
	switch ts.kind {
	case TimestampString:
		t, err := time.Parse(time.RFC3339, ts.str)
		if err != nil {
			t, err = time.Parse(time.RFC3339Nano, ts.str)
		}
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	case TimestampUnix:
		if ts.unix <= 0 {
			return time.Time{}, false
		}
		return time.Unix(ts.unix, 0).UTC(), true
	case TimestampNative:
		if ts.t.IsZero() {
			return time.Time{}, false
		}
		return ts.t.UTC(), true
	default:
		return time.Time{}, false
	}
}

// RawEntry is the engine-facing view of a stored time entry before
// normalization.
type RawEntry struct {
	EntryID  string
	Start    Timestamp
	End      Timestamp
	Timezone string // IANA name; blank means UTC
}

// TimeRange is a normalized, validated clock-in/clock-out pair.
// End is nil while the entry is still open.
type TimeRange struct {
	EntryID  string
	Start    time.Time
	End      *time.Time
	Location *time.Location
}

func (r TimeRange) Open() bool {
	return r.End == nil
}

// Hours returns the clamped duration in hours. Open ranges contribute zero.
// The clamp applies to the hours computation only; the literal endpoints
// stay untouched for display.
func (r TimeRange) Hours() float64 {
	if r.End == nil {
		return 0
	}
	hours := r.End.Sub(r.Start).Hours()
	if hours > MaxShiftHours {
		return MaxShiftHours
	}
	return hours
}

// OvertimeConfig - per-business overtime tiers, immutable per calculation
type OvertimeConfig struct {
	RegularHoursPerWeek      float64
	OvertimeMultiplier       decimal.Decimal
	DoubleTimeMultiplier     decimal.Decimal
	DoubleTimeThresholdHours *float64
}

func DefaultOvertimeConfig() OvertimeConfig {
	return OvertimeConfig{
		RegularHoursPerWeek:      40,
		OvertimeMultiplier:       decimal.NewFromFloat(1.5),
		DoubleTimeMultiplier:     decimal.NewFromInt(2),
		DoubleTimeThresholdHours: nil,
	}
}

// WeekHours - tiered hour breakdown for a single Monday-start week
type WeekHours struct {
	Regular    float64
	Overtime   float64
	DoubleTime float64
}

func (w WeekHours) Total() float64 {
	return w.Regular + w.Overtime + w.DoubleTime
}

// PayrollResult - computed totals for a worker over a set of entries.
// Value object, recomputed on demand, carries no identity.
type PayrollResult struct {
	RegularHours    float64
	OvertimeHours   float64
	DoubleTimeHours float64
	TotalHours      float64
	HourlyRateCents int64
	// RateMissing marks a zero gross pay caused by having no usable rate
	// record, so reports can flag "rate missing" instead of a true $0.
	RateMissing    bool
	GrossPayCents  int64
	SourceEntryIDs []string
}

// SummaryDelta - the increment one shift close adds to a daily summary
type SummaryDelta struct {
	TotalHours      float64
	RegularHours    float64
	OvertimeHours   float64
	DoubleTimeHours float64
	PayCents        int64
}

// DailySummary - persisted per (worker, local work date) aggregate.
// Created on first shift close, additively merged on later ones, never
// deleted by the engine.
type DailySummary struct {
	ID              string
	BusinessID      string
	LocationID      string
	UserID          string
	Date            time.Time // local work date, midnight
	TotalHours      float64
	RegularHours    float64
	OvertimeHours   float64
	DoubleTimeHours float64
	TotalPayCents   int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OvertimeSettings - persisted business-level overtime configuration
type OvertimeSettings struct {
	ID                       string
	BusinessID               string
	RegularHoursPerWeek      float64
	OvertimeMultiplier       decimal.Decimal
	DoubleTimeMultiplier     decimal.Decimal
	DoubleTimeThresholdHours *float64
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (s OvertimeSettings) Config() OvertimeConfig {
	return OvertimeConfig{
		RegularHoursPerWeek:      s.RegularHoursPerWeek,
		OvertimeMultiplier:       s.OvertimeMultiplier,
		DoubleTimeMultiplier:     s.DoubleTimeMultiplier,
		DoubleTimeThresholdHours: s.DoubleTimeThresholdHours,
	}
}
