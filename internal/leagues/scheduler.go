package leagues

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const timeOfDayLayout = "15:04"

// Timing carries the event parameters needed to place fixtures on courts.
// A nil or partially filled Timing means fixtures stay unscheduled.
type Timing struct {
	StartTime     string
	MatchDuration time.Duration
	RestTime      time.Duration
}

func (t *Timing) Complete() bool {
	return t != nil && strings.TrimSpace(t.StartTime) != "" && t.MatchDuration > 0 && t.RestTime >= 0
}

// AssignTimeSlots gives each match, in order, the court that frees up
// first (lowest court number on ties) and advances that court by the
// match duration plus rest. The slice is then sorted by start time and
// court. Incomplete timing leaves the matches untouched.
func AssignTimeSlots(matches []*Match, courts int, timing *Timing) error {
	if !timing.Complete() {
		return nil
	}
	if courts < 1 {
		return fmt.Errorf("%w: at least one court is required", ErrInvalidArgument)
	}
	start, err := ParseTimeOfDay(timing.StartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q: %v", ErrInvalidArgument, timing.StartTime, err)
	}

	step := timing.MatchDuration + timing.RestTime
	nextFree := make([]time.Duration, courts)
	offsets := make(map[*Match]time.Duration, len(matches))

	for _, match := range matches {
		if match == nil {
			continue
		}
		court := 0
		for idx := 1; idx < courts; idx++ {
			if nextFree[idx] < nextFree[court] {
				court = idx
			}
		}
		offset := nextFree[court]
		offsets[match] = offset
		match.StartTime = stringPtr(start.Add(offset).Format(timeOfDayLayout))
		match.Court = intPtr(court + 1)
		nextFree[court] += step
	}

	sort.SliceStable(matches, func(i, j int) bool {
		left, right := matches[i], matches[j]
		if left == nil || right == nil {
			return right == nil && left != nil
		}
		if offsets[left] != offsets[right] {
			return offsets[left] < offsets[right]
		}
		return *left.Court < *right.Court
	})
	return nil
}

// ParseTimeOfDay accepts 24-hour "15:04" or 12-hour "3:04 PM" values.
func ParseTimeOfDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("time is required")
	}
	parsed, err := time.Parse(timeOfDayLayout, raw)
	if err != nil {
		formats := []string{"3:04 PM", "03:04 PM", "3:04PM", "03:04PM"}
		for _, format := range formats {
			if parsed, err = time.Parse(format, strings.ToUpper(raw)); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, errors.New("time must be in HH:MM or H:MM AM/PM format")
	}
	return parsed, nil
}
