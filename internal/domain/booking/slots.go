package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotMinutes is the fixed length of every bookable slot.
const SlotMinutes = 30

func parseClock(s string) (h, m int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// GenerateSlots expands a working window into the ordered list of slot
// start times it contains. Slots are half-open intervals: a window ending
// at 12:00 yields "11:30" as its last slot, never "12:00". A malformed or
// empty window yields no slots.
func GenerateSlots(start, end string) []string {
	h, m, ok := parseClock(start)
	if !ok {
		return nil
	}
	endH, endM, ok := parseClock(end)
	if !ok {
		return nil
	}

	var slots []string
	for h < endH || (h == endH && m < endM) {
		slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		m += SlotMinutes
		if m >= 60 {
			m -= 60
			h++
		}
	}
	return slots
}
