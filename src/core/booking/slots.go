package booking

import (
	"fmt"
	"sort"
	"time"
)

// EnumerateSlots lists every slot-start label of an operating day, in order.
// Labels are "HH:MM"; the last slot ends exactly at closeHour.
func EnumerateSlots(openHour, closeHour, slotMinutes int) []string {
	var slots []string
	if slotMinutes <= 0 {
		return slots
	}
	for m := openHour * 60; m+slotMinutes <= closeHour*60; m += slotMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Ends are exclusive, so touching boundaries do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func parseSlotLabel(label string) (int, error) {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return 0, fmt.Errorf("%w: bad slot label %q", ErrInvalidArgument, label)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func slotMinutesOf(labels []string) ([]int, error) {
	minutes := make([]int, 0, len(labels))
	for _, label := range labels {
		m, err := parseSlotLabel(label)
		if err != nil {
			return nil, err
		}
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)
	return minutes, nil
}

// SlotsToTimeRange maps a slot selection onto a concrete [start, end) range
// on the given date: from the earliest label to one slot duration past the
// latest. Labels need not arrive sorted.
func SlotsToTimeRange(date time.Time, labels []string, slotMinutes int) (time.Time, time.Time, error) {
	if len(labels) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: no slots selected", ErrInvalidArgument)
	}
	minutes, err := slotMinutesOf(labels)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	start := day.Add(time.Duration(minutes[0]) * time.Minute)
	end := day.Add(time.Duration(minutes[len(minutes)-1]+slotMinutes) * time.Minute)
	return start, end, nil
}

// ContiguousSlots reports whether the selection forms one unbroken run of
// slots with no duplicates. Non-contiguous selections are rejected before
// pricing, since price is derived from slot count while the reserved range
// spans earliest to latest.
func ContiguousSlots(labels []string, slotMinutes int) (bool, error) {
	minutes, err := slotMinutesOf(labels)
	if err != nil {
		return false, err
	}
	for i := 1; i < len(minutes); i++ {
		if minutes[i]-minutes[i-1] != slotMinutes {
			return false, nil
		}
	}
	return true, nil
}
