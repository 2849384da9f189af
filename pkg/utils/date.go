package utils

import (
	"time"
)

var istLocation = loadLocation("Asia/Kolkata")

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TimeNowIST returns the current time in Indian Standard Time, or UTC when tzdata is unavailable.
func TimeNowIST() time.Time {
	return time.Now().In(istLocation)
}

// PrettyDate formats t in IST for chat messages.
func PrettyDate(t time.Time) string {
	return t.In(istLocation).Format("Mon, 02 Jan 2006 15:04 MST")
}

// LocationIST returns the Asia/Kolkata location, or UTC when tzdata is unavailable.
func LocationIST() *time.Location {
	return istLocation
}
