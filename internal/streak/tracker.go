// Package streak turns consecutive daily saves into a streak counter using
// local calendar day boundaries.
package streak

import "time"

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Next computes the streak after a save at now, given the previous save time
// and the current streak. Must be evaluated before lastSavedAt is overwritten.
//
//   - same calendar day as the last save: streak unchanged
//   - exactly the next calendar day: streak + 1
//   - anything else (gap of two or more days, or no prior save): 1
func Next(current int, lastSavedAt, now time.Time) int {
	if !lastSavedAt.IsZero() && SameDay(lastSavedAt, now) {
		return current
	}

	yesterday := now.AddDate(0, 0, -1)
	if !lastSavedAt.IsZero() && SameDay(lastSavedAt, yesterday) {
		return current + 1
	}

	return 1
}
