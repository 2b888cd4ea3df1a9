package payroll

import "errors"

var (
	ErrMissingStart           = errors.New("time entry has no parseable start timestamp")
	ErrUnparseableEnd         = errors.New("time entry end timestamp is present but unparseable")
	ErrEndBeforeStart         = errors.New("time entry ends before it starts")
	ErrSummaryNotFound        = errors.New("daily summary not found")
	ErrSettingsNotFound       = errors.New("overtime settings not found")
	ErrInvalidReportWindow    = errors.New("report window is invalid")
	ErrSummaryMergeConflict   = errors.New("daily summary merge conflict after retries")
	ErrEntryAlreadyCalculated = errors.New("time entry already has calculated pay")
)
