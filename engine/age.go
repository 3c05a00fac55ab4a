package engine

import (
	"time"
)

// Age returns the number of completed years between dob and now. The
// (month, day) pair is compared lexicographically so a birthday later in the
// year, including later in the current month, does not count as a full year.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
