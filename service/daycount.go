package service

import (
	"fmt"
	"math"
	"time"

	"github.com/kconstable/finance-tools/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// DailyRate converts a nominal annual rate into a daily rate. The system does
// not model day-count conventions like Actual/360.
func DailyRate(annualRate float64) float64 {
	return annualRate / DaysPerYear
}

// DaysBetween returns the calendar-day count from from to to, counting both
// endpoints. Time-of-day is ignored; accrual is daily-granular only.
func DaysBetween(from, to time.Time) (int, error) {
	from = dateOnly(from)
	to = dateOnly(to)
	if to.Before(from) {
		return 0, fmt.Errorf("%w: %s precedes %s",
			domain.ErrInvalidRange, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	return int(to.Sub(from)/(24*time.Hour)) + 1, nil
}

// dateOnly strips the time-of-day component and pins the date to UTC so that
// day arithmetic is exact.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// addMonthsClamped advances a date by whole months, keeping the day-of-month
// and clamping to the last valid day when the target month is shorter
// (Jan 31 + 1 month = Feb 28).
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
