package util

import (
	"fmt"
	"time"
)

// MonthTitle renders "June 2024" style headers.
func MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}

// MonthDates returns the first and last instant of the month containing t.
func MonthDates(t time.Time) (time.Time, time.Time) {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, 0).Add(time.Nanosecond * -1)

	return firstOfMonth, lastOfMonth
}

// DaysInMonth counts the calendar days of the month containing t.
func DaysInMonth(t time.Time) int {
	_, last := MonthDates(t)
	return last.Day()
}
