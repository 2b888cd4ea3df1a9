package response

import (
	"errors"
	"net/http"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/auth"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/location"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/timeentry"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrMissingClaim):
		Unauthorized(w, "Required claim is missing")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrAlreadyClockedIn):
		Conflict(w, "Worker already has an open time entry")
	case errors.Is(err, timeentry.ErrNotClockedIn):
		Conflict(w, "Worker has no open time entry")
	case errors.Is(err, timeentry.ErrEntryNotClosed):
		BadRequest(w, "Time entry is still open", nil)
	case errors.Is(err, timeentry.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out must be after clock-in", nil)
	case errors.Is(err, timeentry.ErrEntryImmutable):
		Conflict(w, "Calculated entries require explicit recalculation")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidReportWindow):
		BadRequest(w, "Report window is invalid", nil)
	case errors.Is(err, payroll.ErrSummaryNotFound):
		NotFound(w, "Daily summary not found")
	case errors.Is(err, payroll.ErrSettingsNotFound):
		NotFound(w, "Overtime settings not found")
	case errors.Is(err, payroll.ErrEntryAlreadyCalculated):
		Conflict(w, "Time entry already has calculated pay")
	case errors.Is(err, payroll.ErrSummaryMergeConflict):
		Conflict(w, "Daily summary merge conflict, please retry")

	// Pay rate domain errors
	case errors.Is(err, payrate.ErrRateNotFound):
		NotFound(w, "Pay rate record not found")

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
