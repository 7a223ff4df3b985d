package book

import "time"

// dateOf truncates t to its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// yearsBefore moves day back n calendar years. Feb 29 clamps to Feb 28 when
// the target year is not a leap year; time.AddDate would roll to Mar 1.
func yearsBefore(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	y -= n
	if m == time.February && d == 29 && !isLeap(y) {
		d = 28
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
