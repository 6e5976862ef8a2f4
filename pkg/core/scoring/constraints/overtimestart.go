package constraints

import (
	"time"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// OvertimeStartConstraint requires overtime work to begin within a short
// grace window after the employee's shift ends. Work that lies fully inside
// a shift window is not overtime and is exempt, as is any order belonging to
// a full-day shift or to an employee with no shift.
//
// An order is checked against the windows anchored on its own start date and
// on the previous date, because an order starting just after midnight may
// still belong to the prior day's night-shift window.
type OvertimeStartConstraint struct {
	graceMinutes int
}

// NewOvertimeStartConstraint creates the overtime-start rule with the given
// grace window in minutes.
func NewOvertimeStartConstraint(graceMinutes int) *OvertimeStartConstraint {
	return &OvertimeStartConstraint{graceMinutes: graceMinutes}
}

func (c *OvertimeStartConstraint) Name() string {
	return "Overtime must start promptly after shift end"
}

func (c *OvertimeStartConstraint) Tier() scoring.Tier {
	return scoring.TierHard
}

func (c *OvertimeStartConstraint) Penalty(s *schedule.Schedule) int {
	penalty := 0
	for _, o := range s.Orders {
		if c.violates(o) {
			penalty++
		}
	}
	return penalty
}

func (c *OvertimeStartConstraint) violates(o *schedule.Order) bool {
	if o.Employee == nil || o.Employee.Shift == nil || o.Start == nil {
		return false
	}
	shift := o.Employee.Shift
	if shift.IsFullDay() {
		return false
	}

	start, end, _ := o.Interval()
	order := schedule.Interval{Start: start, End: end}

	current := shift.WindowOn(start)
	previous := shift.WindowOn(start.AddDate(0, 0, -1))

	// Fully inside either applicable window: not overtime at all.
	if contains(current, order) || contains(previous, order) {
		return false
	}

	// Find the most recent shift-window end at or before the order start.
	var boundary time.Time
	if !previous.End.After(start) {
		boundary = previous.End
	}
	if !current.End.After(start) && current.End.After(boundary) {
		boundary = current.End
	}
	if boundary.IsZero() {
		// The order does not follow any known shift end; other rules handle
		// work placed before or inside the shift.
		return false
	}

	latestAllowed := boundary.Add(time.Duration(c.graceMinutes) * time.Minute)
	return start.After(latestAllowed)
}

// contains reports whether inner lies entirely within outer.
func contains(outer, inner schedule.Interval) bool {
	return !inner.Start.Before(outer.Start) && !inner.End.After(outer.End)
}
