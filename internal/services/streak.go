package services

import "time"

// StreakResult is the corrected streak state of a user.
type StreakResult struct {
	ShouldReset bool
	NewStreak   int
}

// CalculateStreak checks whether a posting streak survived until now.
// A post today or yesterday (in now's location) keeps the streak, an older
// one resets it. It never increments; posting does that.
func CalculateStreak(lastPostedAt *time.Time, currentStreak int, now time.Time) StreakResult {
	if lastPostedAt == nil {
		return StreakResult{ShouldReset: false, NewStreak: 0}
	}

	if calendarDaysBetween(*lastPostedAt, now) <= 1 {
		return StreakResult{ShouldReset: false, NewStreak: currentStreak}
	}
	return StreakResult{ShouldReset: true, NewStreak: 0}
}

// calendarDaysBetween counts midnights between from and to in to's location.
func calendarDaysBetween(from, to time.Time) int {
	from = from.In(to.Location())
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	// UTC dates avoid DST-shortened days
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
