package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(day, hour, minute int) time.Time {
	return time.Date(2030, time.April, day, hour, minute, 0, 0, time.UTC)
}

func TestWindowOn_DayShiftAnchorsToDate(t *testing.T) {
	shift := &Shift{Name: "Morning", Start: ts(1, 6, 0), End: ts(1, 14, 0)}

	w := shift.WindowOn(ts(5, 0, 0))
	assert.Equal(t, ts(5, 6, 0), w.Start)
	assert.Equal(t, ts(5, 14, 0), w.End)
}

func TestWindowOn_NightShiftWrapsPastMidnight(t *testing.T) {
	shift := &Shift{Name: "Night", Start: ts(1, 22, 0), End: ts(2, 6, 0)}

	w := shift.WindowOn(ts(5, 0, 0))
	assert.Equal(t, ts(5, 22, 0), w.Start)
	assert.Equal(t, ts(6, 6, 0), w.End)
}

func TestWindowOn_FullDayShiftSpansWholeDay(t *testing.T) {
	shift := &Shift{Name: "AllDay", Start: ts(1, 0, 0), End: ts(2, 0, 0)}

	w := shift.WindowOn(ts(5, 0, 0))
	assert.Equal(t, ts(5, 0, 0), w.Start)
	assert.Equal(t, ts(6, 0, 0), w.End)
	assert.Equal(t, 24*60, w.Minutes())
}

func TestWindowOn_TimeOfDayComponentOfDateIgnored(t *testing.T) {
	shift := &Shift{Name: "Morning", Start: ts(1, 6, 0), End: ts(1, 14, 0)}

	assert.Equal(t, shift.WindowOn(ts(5, 23, 59)), shift.WindowOn(ts(5, 0, 0)))
}

func TestIsFullDay(t *testing.T) {
	assert.True(t, (&Shift{Start: ts(1, 8, 0), End: ts(2, 8, 0)}).IsFullDay())
	assert.False(t, (&Shift{Start: ts(1, 6, 0), End: ts(1, 14, 0)}).IsFullDay())
	assert.False(t, (&Shift{Start: ts(1, 22, 0), End: ts(2, 6, 0)}).IsFullDay())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(ts(1, 0, 0), ts(1, 23, 59)))
	assert.Equal(t, 2, DaysBetween(ts(1, 12, 0), ts(3, 1, 0)))
	assert.Equal(t, -1, DaysBetween(ts(2, 0, 0), ts(1, 0, 0)))
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Start: ts(1, 10, 0), End: ts(1, 12, 0)}
	b := Interval{Start: ts(1, 11, 0), End: ts(1, 13, 0)}
	c := Interval{Start: ts(1, 12, 0), End: ts(1, 13, 0)}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	// Half-open intervals: touching at the boundary is not overlap.
	assert.False(t, a.Overlaps(c))
}

func TestIntervalIntersect(t *testing.T) {
	a := Interval{Start: ts(1, 10, 0), End: ts(1, 12, 0)}
	b := Interval{Start: ts(1, 11, 0), End: ts(1, 13, 0)}

	got := a.Intersect(b)
	assert.Equal(t, ts(1, 11, 0), got.Start)
	assert.Equal(t, ts(1, 12, 0), got.End)
	assert.Equal(t, 60, got.Minutes())

	disjoint := Interval{Start: ts(1, 13, 0), End: ts(1, 14, 0)}
	assert.Equal(t, 0, a.Intersect(disjoint).Minutes())
}

func TestMergeIntervals(t *testing.T) {
	merged := MergeIntervals([]Interval{
		{Start: ts(1, 12, 0), End: ts(1, 13, 0)},
		{Start: ts(1, 10, 0), End: ts(1, 11, 0)},
		{Start: ts(1, 10, 30), End: ts(1, 11, 30)},
		{Start: ts(1, 11, 30), End: ts(1, 12, 0)}, // touches the previous
	})

	assert.Len(t, merged, 1)
	assert.Equal(t, ts(1, 10, 0), merged[0].Start)
	assert.Equal(t, ts(1, 13, 0), merged[0].End)
}

func TestMergeIntervals_DropsEmptyAndKeepsDisjoint(t *testing.T) {
	merged := MergeIntervals([]Interval{
		{Start: ts(1, 10, 0), End: ts(1, 10, 0)}, // empty
		{Start: ts(1, 8, 0), End: ts(1, 9, 0)},
		{Start: ts(1, 12, 0), End: ts(1, 13, 0)},
	})

	assert.Len(t, merged, 2)
	assert.Equal(t, ts(1, 8, 0), merged[0].Start)
	assert.Equal(t, ts(1, 12, 0), merged[1].Start)
}
