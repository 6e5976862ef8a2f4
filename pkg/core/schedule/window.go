package schedule

import (
	"math"
	"sort"
	"time"
)

// DateOf truncates a timestamp to midnight of its calendar date, preserving
// the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b (negative when
// b is before a).
func DaysBetween(a, b time.Time) int {
	return int(math.Round(DateOf(b).Sub(DateOf(a)).Hours() / 24))
}

// clockMinutes returns the time-of-day of t expressed as minutes past
// midnight.
func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsFullDay reports whether the shift covers a whole day: its start and end
// share the same time-of-day. Full-day shifts have no overtime boundary.
func (s *Shift) IsFullDay() bool {
	return clockMinutes(s.Start) == clockMinutes(s.End) &&
		s.Start.Second() == s.End.Second()
}

// WindowOn anchors the shift's time-of-day pair to the given calendar date
// and returns the concrete [start, end) window. When the end time-of-day is
// not after the start time-of-day the window wraps past midnight, so the end
// is advanced by one day.
func (s *Shift) WindowOn(date time.Time) Interval {
	d := DateOf(date)
	start := time.Date(d.Year(), d.Month(), d.Day(),
		s.Start.Hour(), s.Start.Minute(), s.Start.Second(), 0, d.Location())
	end := time.Date(d.Year(), d.Month(), d.Day(),
		s.End.Hour(), s.End.Minute(), s.End.Second(), 0, d.Location())
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return Interval{Start: start, End: end}
}

// Interval is a half-open [Start, End) span of time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the interval's length in whole minutes, floored at zero.
func (iv Interval) Minutes() int {
	if !iv.End.After(iv.Start) {
		return 0
	}
	return int(iv.End.Sub(iv.Start) / time.Minute)
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Intersect returns the overlapping portion of two intervals. The result is
// empty (End not after Start) when they do not intersect.
func (iv Interval) Intersect(other Interval) Interval {
	out := iv
	if other.Start.After(out.Start) {
		out.Start = other.Start
	}
	if other.End.Before(out.End) {
		out.End = other.End
	}
	return out
}

// MergeIntervals sorts the given intervals by start and merges any that
// overlap or touch, returning a minimal ordered set covering the same time.
// Empty intervals are dropped. The input slice is not modified.
func MergeIntervals(intervals []Interval) []Interval {
	work := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.End.After(iv.Start) {
			work = append(work, iv)
		}
	}
	sort.Slice(work, func(i, j int) bool {
		return work[i].Start.Before(work[j].Start)
	})

	var merged []Interval
	for _, iv := range work {
		if len(merged) == 0 {
			merged = append(merged, iv)
			continue
		}
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) { // overlap or touch
			if iv.End.After(last.End) {
				last.End = iv.End
			}
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}
