package payroll

import (
	"testing"
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StringTimestamps(t *testing.T) {
	raw := payroll.RawEntry{
		EntryID:  "e1",
		Start:    payroll.StringTimestamp("2025-03-10T09:00:00Z"),
		End:      payroll.StringTimestamp("2025-03-10T17:30:00Z"),
		Timezone: "America/Chicago",
	}

	rng, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "e1", rng.EntryID)
	assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), rng.Start)
	require.NotNil(t, rng.End)
	assert.Equal(t, time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC), *rng.End)
	assert.Equal(t, "America/Chicago", rng.Location.String())
	assert.False(t, rng.Open())
	assert.InDelta(t, 8.5, rng.Hours(), 1e-9)
}

func TestNormalize_UnixTimestamps(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	raw := payroll.RawEntry{
		EntryID: "e2",
		Start:   payroll.UnixTimestamp(start.Unix()),
		End:     payroll.UnixTimestamp(end.Unix()),
	}

	rng, err := Normalize(raw)
	require.NoError(t, err)

	assert.True(t, rng.Start.Equal(start))
	assert.True(t, rng.End.Equal(end))
}

func TestNormalize_MissingStart(t *testing.T) {
	raw := payroll.RawEntry{
		EntryID: "e3",
		Start:   payroll.NoTimestamp(),
		End:     payroll.StringTimestamp("2025-03-10T17:00:00Z"),
	}

	_, err := Normalize(raw)
	assert.ErrorIs(t, err, payroll.ErrMissingStart)
}

func TestNormalize_UnparseableStart(t *testing.T) {
	raw := payroll.RawEntry{
		EntryID: "e4",
		Start:   payroll.StringTimestamp("not-a-timestamp"),
	}

	_, err := Normalize(raw)
	assert.ErrorIs(t, err, payroll.ErrMissingStart)
}

func TestNormalize_UnparseableEnd(t *testing.T) {
	raw := payroll.RawEntry{
		EntryID: "e5",
		Start:   payroll.StringTimestamp("2025-03-10T09:00:00Z"),
		End:     payroll.StringTimestamp("garbage"),
	}

	_, err := Normalize(raw)
	assert.ErrorIs(t, err, payroll.ErrUnparseableEnd)
}

func TestNormalize_EndBeforeStart(t *testing.T) {
	raw := payroll.RawEntry{
		EntryID: "e6",
		Start:   payroll.StringTimestamp("2025-03-10T17:00:00Z"),
		End:     payroll.StringTimestamp("2025-03-10T09:00:00Z"),
	}

	_, err := Normalize(raw)
	assert.ErrorIs(t, err, payroll.ErrEndBeforeStart)
}

func TestNormalize_AbsentEndIsOpenRange(t *testing.T) {
	raw := payroll.RawEntry{
		EntryID: "e7",
		Start:   payroll.StringTimestamp("2025-03-10T09:00:00Z"),
		End:     payroll.NoTimestamp(),
	}

	rng, err := Normalize(raw)
	require.NoError(t, err)

	assert.True(t, rng.Open())
	assert.Zero(t, rng.Hours())
}

func TestNormalize_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	raw := payroll.RawEntry{
		EntryID:  "e8",
		Start:    payroll.StringTimestamp("2025-03-10T09:00:00Z"),
		Timezone: "Mars/Olympus_Mons",
	}

	rng, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, rng.Location)
}

func TestTimeRangeHours_ClampedAt24(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Hour)

	rng := payroll.TimeRange{Start: start, End: &end}

	// A 30 hour entry is a clock-out mistake; it contributes at most one
	// full day. The endpoints themselves stay untouched.
	assert.Equal(t, payroll.MaxShiftHours, rng.Hours())
	assert.True(t, rng.End.Equal(end))
}
