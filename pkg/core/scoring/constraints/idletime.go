package constraints

import (
	"math"
	"time"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// IdleTimeConstraint penalizes idle minutes inside an employee's shift,
// weighted toward the start of the shift: a gap early in the shift is harder
// to backfill than one near the end, so it costs more.
//
// Orders are grouped by (employee, calendar date), clipped to the shift
// window anchored on that date and merged; each remaining gap of g minutes
// is charged g·(1 − position), where position is the gap midpoint normalized
// to the shift duration. The per-group total is rounded to the nearest
// integer before weighting.
type IdleTimeConstraint struct {
	weight int
}

// NewIdleTimeConstraint creates the weighted idle-time preference.
func NewIdleTimeConstraint(weight int) *IdleTimeConstraint {
	return &IdleTimeConstraint{weight: weight}
}

func (c *IdleTimeConstraint) Name() string {
	return "Minimize idle minutes within employee shift"
}

func (c *IdleTimeConstraint) Tier() scoring.Tier {
	return scoring.TierSoft
}

type shiftDayGroup struct {
	shift  *schedule.Shift
	date   time.Time
	orders []schedule.Interval
}

func (c *IdleTimeConstraint) Penalty(s *schedule.Schedule) int {
	groups := make(map[employeeDay]*shiftDayGroup)
	for _, o := range s.Orders {
		if o.Employee == nil || o.Employee.Shift == nil || o.Start == nil {
			continue
		}
		start, end, _ := o.Interval()
		key := employeeDay{employee: o.Employee, date: o.Start.Format(time.DateOnly)}
		group := groups[key]
		if group == nil {
			group = &shiftDayGroup{
				shift: o.Employee.Shift,
				date:  schedule.DateOf(*o.Start),
			}
			groups[key] = group
		}
		group.orders = append(group.orders, schedule.Interval{Start: start, End: end})
	}

	penalty := 0
	for _, group := range groups {
		penalty += c.groupPenalty(group)
	}
	return penalty
}

func (c *IdleTimeConstraint) groupPenalty(group *shiftDayGroup) int {
	window := group.shift.WindowOn(group.date)
	shiftMinutes := window.Minutes()
	if shiftMinutes <= 0 {
		return 0
	}

	// Occupied time inside the shift window, merged so overlapping orders do
	// not hide gaps.
	var occupied []schedule.Interval
	for _, order := range group.orders {
		occupied = append(occupied, order.Intersect(window))
	}
	occupied = schedule.MergeIntervals(occupied)

	// Walk the gaps between shift start, the occupied blocks and shift end.
	weighted := 0.0
	prev := window.Start
	for _, block := range occupied {
		weighted += gapCost(window.Start, prev, block.Start, shiftMinutes)
		if block.End.After(prev) {
			prev = block.End
		}
	}
	weighted += gapCost(window.Start, prev, window.End, shiftMinutes)

	return max(0, int(math.Round(weighted))) * c.weight
}

// gapCost weighs the [from, to) gap by how close its midpoint sits to the
// shift start: weight 1 at the very start of the shift, falling linearly to
// 0 at the end.
func gapCost(shiftStart, from, to time.Time, shiftMinutes int) float64 {
	if !to.After(from) {
		return 0
	}
	gap := schedule.Interval{Start: from, End: to}.Minutes()
	midOffset := float64(schedule.Interval{Start: shiftStart, End: from}.Minutes()) + float64(gap)/2
	position := midOffset / float64(shiftMinutes)
	position = math.Max(0, math.Min(1, position))
	return float64(gap) * (1 - position)
}
