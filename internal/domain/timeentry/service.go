package timeentry

import "context"

type TimeClockService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context) (TimeEntryResponse, error)
	Get(ctx context.Context, id string) (TimeEntryResponse, error)
	List(ctx context.Context, filter EntryFilter) (ListTimeEntriesResponse, error)
	Update(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
}
