package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is 24 hours * 60 minutes.
const MinutesPerDay = 1440

// ParseClock parses a wall-clock string ("HH:MM" or "HH:MM:SS") into minutes
// since midnight. Malformed input reports ok=false; scheduling code treats
// such values as "no time set" and excludes the activity rather than failing.
func ParseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			return 0, false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return 0, false
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, false
		}
		nums[i] = n
	}

	hour, minute := nums[0], nums[1]
	if hour > 23 || minute > 59 {
		return 0, false
	}
	if len(nums) == 3 && nums[2] > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// FormatClock renders minutes since midnight as "HH:MM:SS", zero-padded.
// Out-of-range input is clamped into [0, 1439] so the result is always a
// valid time of day. ParseClock(FormatClock(m)) == m for every valid m.
func FormatClock(m int) string {
	if m < 0 {
		m = 0
	}
	if m > MinutesPerDay-1 {
		m = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d:00", m/60, m%60)
}
