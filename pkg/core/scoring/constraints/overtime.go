package constraints

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// OvertimeMinutesConstraint penalizes one medium unit per minute of work
// falling outside the employee's shift windows.
//
// The candidate windows are the ones anchored on the order's start date, the
// previous date and the order's end date; they are merged into a union
// before measuring, so coinciding windows are not counted twice. Overtime is
// the order duration minus the minutes overlapping that union, floored at
// zero. Full-day shifts never produce overtime.
type OvertimeMinutesConstraint struct{}

// NewOvertimeMinutesConstraint creates the overtime-minutes rule.
func NewOvertimeMinutesConstraint() *OvertimeMinutesConstraint {
	return &OvertimeMinutesConstraint{}
}

func (c *OvertimeMinutesConstraint) Name() string {
	return "Minimize overtime minutes outside shift windows"
}

func (c *OvertimeMinutesConstraint) Tier() scoring.Tier {
	return scoring.TierMedium
}

func (c *OvertimeMinutesConstraint) Penalty(s *schedule.Schedule) int {
	penalty := 0
	for _, o := range s.Orders {
		penalty += overtimeMinutes(o)
	}
	return penalty
}

func overtimeMinutes(o *schedule.Order) int {
	if o.Employee == nil || o.Employee.Shift == nil || o.Start == nil {
		return 0
	}
	shift := o.Employee.Shift
	if shift.IsFullDay() {
		return 0
	}

	start, end, _ := o.Interval()
	order := schedule.Interval{Start: start, End: end}

	windows := schedule.MergeIntervals([]schedule.Interval{
		shift.WindowOn(start),
		shift.WindowOn(start.AddDate(0, 0, -1)),
		shift.WindowOn(end),
	})

	overlap := 0
	for _, w := range windows {
		overlap += order.Intersect(w).Minutes()
	}

	duration := order.Minutes()
	return max(0, duration-min(duration, overlap))
}
