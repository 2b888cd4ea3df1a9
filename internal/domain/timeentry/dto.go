package timeentry

import (
	"strings"

	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// TIME CLOCK DTOs
// ========================================

type ClockInRequest struct {
	LocationID string `json:"location_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeEntryResponse struct {
	ID                 string   `json:"id"`
	UserID             string   `json:"user_id"`
	LocationID         string   `json:"location_id"`
	ClockInAt          string   `json:"clock_in_at"`
	ClockOutAt         *string  `json:"clock_out_at,omitempty"`
	CalculatedHours    *float64 `json:"calculated_hours,omitempty"`
	CalculatedPayCents *int64   `json:"calculated_pay_cents,omitempty"`
	CalcStatus         string   `json:"calc_status"`
}

// UpdateTimeEntryRequest lets managers fix wrong clock times. Setting a
// clock-out on a never-calculated entry fires the pay calculation the same
// way a kiosk clock-out does.
type UpdateTimeEntryRequest struct {
	ID         string  `json:"-"`
	ClockInAt  *string `json:"clock_in_at,omitempty"`  // RFC3339
	ClockOutAt *string `json:"clock_out_at,omitempty"` // RFC3339
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockInAt != nil && *r.ClockInAt != "" {
		if _, valid := validator.IsValidDateTime(*r.ClockInAt); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in_at",
				Message: "clock_in_at must be an RFC3339 timestamp",
			})
		}
	}

	if r.ClockOutAt != nil && *r.ClockOutAt != "" {
		if _, valid := validator.IsValidDateTime(*r.ClockOutAt); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out_at",
				Message: "clock_out_at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryFilter struct {
	UserID     *string `json:"user_id,omitempty"`
	LocationID *string `json:"location_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	CalcStatus *string `json:"calc_status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.CalcStatus != nil {
		validStatuses := []string{"pending", "calculated", "failed"}
		if !validator.IsInSlice(strings.ToLower(*f.CalcStatus), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "calc_status",
				Message: "calc_status must be one of: pending, calculated, failed",
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListTimeEntriesResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Entries    []TimeEntryResponse `json:"entries"`
}
