package timeentry

import "errors"

var (
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrAlreadyClockedIn = errors.New("worker already has an open time entry")
	ErrNotClockedIn     = errors.New("worker has no open time entry")
	ErrEntryNotClosed   = errors.New("time entry is still open")
	ErrClockOutBeforeIn = errors.New("clock-out must be after clock-in")
	ErrEntryImmutable   = errors.New("calculated entries require explicit recalculation")
)
