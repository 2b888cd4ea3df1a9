package payroll

import (
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
)

// CalculateWeek splits one week's clamped hours into regular, overtime and
// double-time tiers.
//
// regular = min(total, regularHoursPerWeek). Hours beyond the regular
// threshold are overtime, except hours beyond the double-time threshold
// (when configured) which are double time. Invariant:
// regular + overtime + doubleTime == total within floating-point tolerance,
// and every tier is non-negative.
func CalculateWeek(bucket []payroll.TimeRange, config payroll.OvertimeConfig) payroll.WeekHours {
	var total float64
	for _, e := range bucket {
		total += e.Hours()
	}

	if total <= config.RegularHoursPerWeek {
		return payroll.WeekHours{Regular: total}
	}

	week := payroll.WeekHours{Regular: config.RegularHoursPerWeek}
	excess := total - config.RegularHoursPerWeek

	if config.DoubleTimeThresholdHours != nil && total > *config.DoubleTimeThresholdHours {
		week.DoubleTime = total - *config.DoubleTimeThresholdHours
		week.Overtime = excess - week.DoubleTime
	} else {
		week.Overtime = excess
	}

	return week
}
