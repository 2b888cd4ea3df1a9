package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/timeentry"
	"github.com/shiftly-hq/timeclock-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryRepository_CreateAndGet(t *testing.T) {
	truncateTables(t)
	ctx := context.Background()

	businessID := uuid.NewString()
	userID := uuid.NewString()
	locationID := createTestLocation(t, businessID, "America/Chicago")

	repo := postgresql.NewTimeEntryRepository(testDB)

	created, err := repo.Create(ctx, timeentry.TimeEntry{
		BusinessID: businessID,
		LocationID: locationID,
		UserID:     userID,
		ClockInAt:  time.Now().UTC().Truncate(time.Second),
		CalcStatus: timeentry.CalcPending,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID, businessID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, timeentry.CalcPending, got.CalcStatus)
	assert.Nil(t, got.ClockOutAt)
	// The location join fills the timezone for the calculation path.
	require.NotNil(t, got.LocationTimezone)
	assert.Equal(t, "America/Chicago", *got.LocationTimezone)
}

func TestTimeEntryRepository_GetByID_WrongBusiness(t *testing.T) {
	truncateTables(t)
	ctx := context.Background()

	businessID := uuid.NewString()
	locationID := createTestLocation(t, businessID, "UTC")
	entryID := createTestEntry(t, businessID, locationID, uuid.NewString(), time.Now().UTC(), nil)

	repo := postgresql.NewTimeEntryRepository(testDB)

	// Another tenant must not see the entry.
	_, err := repo.GetByID(ctx, entryID, uuid.NewString())
	assert.ErrorIs(t, err, timeentry.ErrEntryNotFound)
}

func TestTimeEntryRepository_GetOpenEntry(t *testing.T) {
	truncateTables(t)
	ctx := context.Background()

	businessID := uuid.NewString()
	userID := uuid.NewString()
	locationID := createTestLocation(t, businessID, "UTC")

	repo := postgresql.NewTimeEntryRepository(testDB)

	_, err := repo.GetOpenEntry(ctx, userID, businessID)
	assert.ErrorIs(t, err, timeentry.ErrEntryNotFound)

	closedOut := time.Now().UTC().Add(-time.Hour)
	createTestEntry(t, businessID, locationID, userID, time.Now().UTC().Add(-9*time.Hour), &closedOut)
	openID := createTestEntry(t, businessID, locationID, userID, time.Now().UTC().Add(-30*time.Minute), nil)

	open, err := repo.GetOpenEntry(ctx, userID, businessID)
	require.NoError(t, err)
	assert.Equal(t, openID, open.ID)
	assert.Nil(t, open.ClockOutAt)
}

func TestTimeEntryRepository_SetCalculation(t *testing.T) {
	truncateTables(t)
	ctx := context.Background()

	businessID := uuid.NewString()
	locationID := createTestLocation(t, businessID, "UTC")
	clockOut := time.Now().UTC()
	entryID := createTestEntry(t, businessID, locationID, uuid.NewString(), clockOut.Add(-8*time.Hour), &clockOut)

	repo := postgresql.NewTimeEntryRepository(testDB)

	err := repo.SetCalculation(ctx, entryID, 8.0, 16000, timeentry.CalcCalculated)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, entryID, businessID)
	require.NoError(t, err)

	require.NotNil(t, got.CalculatedHours)
	assert.InDelta(t, 8.0, *got.CalculatedHours, 1e-9)
	require.NotNil(t, got.CalculatedPayCents)
	assert.Equal(t, int64(16000), *got.CalculatedPayCents)
	assert.Equal(t, timeentry.CalcCalculated, got.CalcStatus)
	assert.False(t, got.NeedsCalculation())
}

func TestTimeEntryRepository_ListUncalculated(t *testing.T) {
	truncateTables(t)
	ctx := context.Background()

	businessID := uuid.NewString()
	locationID := createTestLocation(t, businessID, "UTC")
	userID := uuid.NewString()

	clockOut := time.Now().UTC().Add(-time.Hour)
	pendingID := createTestEntry(t, businessID, locationID, userID, clockOut.Add(-8*time.Hour), &clockOut)

	// Open entry: not eligible.
	createTestEntry(t, businessID, locationID, userID, time.Now().UTC(), nil)

	// Calculated entry: not eligible.
	calculatedID := createTestEntry(t, businessID, locationID, userID, clockOut.Add(-20*time.Hour), &clockOut)
	repo := postgresql.NewTimeEntryRepository(testDB)
	require.NoError(t, repo.SetCalculation(ctx, calculatedID, 8, 12000, timeentry.CalcCalculated))

	// Failed entry: eligible for reconciliation.
	failedOut := time.Now().UTC().Add(-2 * time.Hour)
	failedID := createTestEntry(t, businessID, locationID, userID, failedOut.Add(-4*time.Hour), &failedOut)
	require.NoError(t, repo.SetCalcStatus(ctx, failedID, timeentry.CalcFailed))

	entries, err := repo.ListUncalculated(ctx, 10)
	require.NoError(t, err)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{pendingID, failedID}, ids)
}

func TestTimeEntryRepository_ListForUserWindow(t *testing.T) {
	truncateTables(t)
	ctx := context.Background()

	businessID := uuid.NewString()
	locationID := createTestLocation(t, businessID, "UTC")
	userID := uuid.NewString()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out1 := base.Add(8 * time.Hour)
	inWindow := createTestEntry(t, businessID, locationID, userID, base, &out1)

	before := base.AddDate(0, 0, -10)
	outBefore := before.Add(8 * time.Hour)
	createTestEntry(t, businessID, locationID, userID, before, &outBefore)

	entries, err := postgresql.NewTimeEntryRepository(testDB).ListForUserWindow(
		ctx, userID, businessID,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, inWindow, entries[0].ID)
}
