package ai

import (
	"strconv"
	"strings"
)

// DefaultDuration is used when the end time does not follow the start time.
const DefaultDuration = 60

// MeetingDuration returns the length in minutes between two "HH:mm" times.
// Times are compared as HHmm integers; an end at or before the start, or an
// unparseable value, yields DefaultDuration.
func MeetingDuration(startTime, endTime string) int {
	start, err := hhmm(startTime)
	if err != nil {
		return DefaultDuration
	}
	end, err := hhmm(endTime)
	if err != nil {
		return DefaultDuration
	}
	if end <= start {
		return DefaultDuration
	}
	return (end/100*60 + end%100) - (start/100*60 + start%100)
}

func hhmm(s string) (int, error) {
	return strconv.Atoi(strings.Replace(strings.TrimSpace(s), ":", "", 1))
}
