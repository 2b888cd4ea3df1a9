package payroll

import (
	"testing"
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
	"github.com/stretchr/testify/assert"
)

func rateRecord(cents int64, effectiveFrom string) payrate.RateRecord {
	from, _ := time.Parse("2006-01-02", effectiveFrom)
	return payrate.RateRecord{
		UserID:          "worker-1",
		HourlyRateCents: cents,
		EffectiveFrom:   from,
	}
}

func TestResolveRate_PicksLatestEffectiveRecord(t *testing.T) {
	records := []payrate.RateRecord{
		rateRecord(1500, "2025-01-01"),
		rateRecord(1800, "2025-06-01"),
	}

	may := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	cents, ok := ResolveRate(records, may)
	assert.True(t, ok)
	assert.Equal(t, int64(1500), cents)

	june := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	cents, ok = ResolveRate(records, june)
	assert.True(t, ok)
	assert.Equal(t, int64(1800), cents)
}

func TestResolveRate_ExactEffectiveDateApplies(t *testing.T) {
	records := []payrate.RateRecord{
		rateRecord(1500, "2025-01-01"),
		rateRecord(1800, "2025-06-01"),
	}

	onDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cents, ok := ResolveRate(records, onDate)
	assert.True(t, ok)
	assert.Equal(t, int64(1800), cents)
}

func TestResolveRate_SameEffectiveDateLaterInsertWins(t *testing.T) {
	// Two records with the same effective date; the correction inserted
	// later must win.
	records := []payrate.RateRecord{
		rateRecord(1500, "2025-01-01"),
		rateRecord(1600, "2025-01-01"),
	}

	onDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	cents, ok := ResolveRate(records, onDate)
	assert.True(t, ok)
	assert.Equal(t, int64(1600), cents)
}

func TestResolveRate_NonPositiveRatesIgnored(t *testing.T) {
	records := []payrate.RateRecord{
		rateRecord(0, "2025-01-01"),
		rateRecord(-500, "2025-02-01"),
		rateRecord(1500, "2025-03-01"),
	}

	onDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	cents, ok := ResolveRate(records, onDate)
	assert.True(t, ok)
	assert.Equal(t, int64(1500), cents)
}

func TestResolveRate_FallsBackToLatestWhenNoneEffectiveYet(t *testing.T) {
	// The rate was entered after time entries already existed: nothing is
	// effective on the date, but payroll still computes with the most
	// recent positive rate.
	records := []payrate.RateRecord{
		rateRecord(1500, "2025-06-01"),
		rateRecord(1800, "2025-07-01"),
	}

	onDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cents, ok := ResolveRate(records, onDate)
	assert.True(t, ok)
	assert.Equal(t, int64(1800), cents)
}

func TestResolveRate_NoUsableRecords(t *testing.T) {
	onDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	cents, ok := ResolveRate(nil, onDate)
	assert.False(t, ok)
	assert.Zero(t, cents)

	cents, ok = ResolveRate([]payrate.RateRecord{rateRecord(0, "2025-01-01")}, onDate)
	assert.False(t, ok)
	assert.Zero(t, cents)
}
