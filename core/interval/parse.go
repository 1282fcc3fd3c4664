package interval

import (
	"strconv"
	"strings"
)

// ParseTimeInterval parses the textual form "HH:mm - HH:mm" (24-hour,
// optional seconds on either bound) into a TimeInterval. It never returns
// an error: the second result is false on malformed text, out-of-range
// clock components, or an end before the start.
func ParseTimeInterval(s string) (TimeInterval, bool) {
	lhs, rhs, found := strings.Cut(s, "-")
	if !found {
		return TimeInterval{}, false
	}
	start, ok := parseTimeOfDay(strings.TrimSpace(lhs))
	if !ok {
		return TimeInterval{}, false
	}
	end, ok := parseTimeOfDay(strings.TrimSpace(rhs))
	if !ok {
		return TimeInterval{}, false
	}
	i, err := New(start, end)
	if err != nil {
		return TimeInterval{}, false
	}
	return i, true
}

// parseTimeOfDay accepts "HH:mm" or "HH:mm:ss".
func parseTimeOfDay(s string) (TimeOfDay, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if len(p) == 0 || len(p) > 2 || strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return TimeOfDay{}, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, false
		}
		nums[i] = n
	}
	t, err := NewTimeOfDay(nums[0], nums[1], nums[2])
	if err != nil {
		return TimeOfDay{}, false
	}
	return t, true
}
