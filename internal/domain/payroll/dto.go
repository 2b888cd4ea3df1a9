package payroll

import (
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// REPORT DTOs
// ========================================

type ReportRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	// Window ordering (end not before start) is the service's rule, not a
	// format check; GetReport owns it.
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportResponse struct {
	UserID          string  `json:"user_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	DoubleTimeHours float64 `json:"double_time_hours"`
	TotalHours      float64 `json:"total_hours"`
	HourlyRateCents int64   `json:"hourly_rate_cents"`
	RateMissing     bool    `json:"rate_missing"`
	GrossPayCents   int64   `json:"gross_pay_cents"`
	EntryCount      int     `json:"entry_count"`
}

// ========================================
// OVERTIME SETTINGS DTOs
// ========================================

type UpdateSettingsRequest struct {
	RegularHoursPerWeek      *float64 `json:"regular_hours_per_week,omitempty"`
	OvertimeMultiplier       *string  `json:"overtime_multiplier,omitempty"`
	DoubleTimeMultiplier     *string  `json:"double_time_multiplier,omitempty"`
	DoubleTimeThresholdHours *float64 `json:"double_time_threshold_hours,omitempty"`
	// ClearDoubleTimeThreshold removes the double-time tier entirely.
	ClearDoubleTimeThreshold bool `json:"clear_double_time_threshold,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RegularHoursPerWeek != nil && (*r.RegularHoursPerWeek <= 0 || *r.RegularHoursPerWeek > 168) {
		errs = append(errs, validator.ValidationError{
			Field:   "regular_hours_per_week",
			Message: "regular_hours_per_week must be between 0 and 168",
		})
	}

	if r.OvertimeMultiplier != nil {
		if m, err := decimal.NewFromString(*r.OvertimeMultiplier); err != nil || m.LessThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{
				Field:   "overtime_multiplier",
				Message: "overtime_multiplier must be a decimal number >= 1",
			})
		}
	}

	if r.DoubleTimeMultiplier != nil {
		if m, err := decimal.NewFromString(*r.DoubleTimeMultiplier); err != nil || m.LessThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{
				Field:   "double_time_multiplier",
				Message: "double_time_multiplier must be a decimal number >= 1",
			})
		}
	}

	if r.DoubleTimeThresholdHours != nil && *r.DoubleTimeThresholdHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "double_time_threshold_hours",
			Message: "double_time_threshold_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	BusinessID               string   `json:"business_id"`
	RegularHoursPerWeek      float64  `json:"regular_hours_per_week"`
	OvertimeMultiplier       string   `json:"overtime_multiplier"`
	DoubleTimeMultiplier     string   `json:"double_time_multiplier"`
	DoubleTimeThresholdHours *float64 `json:"double_time_threshold_hours,omitempty"`
}

// ========================================
// DAILY SUMMARY DTOs
// ========================================

type SummaryFilter struct {
	UserID     *string `json:"user_id,omitempty"`
	LocationID *string `json:"location_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

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

type DailySummaryResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	LocationID      string  `json:"location_id"`
	Date            string  `json:"date"`
	TotalHours      float64 `json:"total_hours"`
	RegularHours    float64 `json:"regular_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	DoubleTimeHours float64 `json:"double_time_hours"`
	TotalPayCents   int64   `json:"total_pay_cents"`
}
