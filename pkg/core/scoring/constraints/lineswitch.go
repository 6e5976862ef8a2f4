package constraints

import (
	"time"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// LineSwitchConstraint prefers employees staying on one line per day: for
// each (employee, calendar date) group using N > 1 distinct lines it charges
// N−1 weighted units. Orders with no line assigned do not contribute a line
// to the group.
type LineSwitchConstraint struct {
	weight int
}

// NewLineSwitchConstraint creates the line-switching preference with the
// given weight per extra line per day.
func NewLineSwitchConstraint(weight int) *LineSwitchConstraint {
	return &LineSwitchConstraint{weight: weight}
}

func (c *LineSwitchConstraint) Name() string {
	return "Minimize employee line switching per day"
}

func (c *LineSwitchConstraint) Tier() scoring.Tier {
	return scoring.TierSoft
}

// employeeDay groups orders by assigned employee and calendar date.
type employeeDay struct {
	employee *schedule.Employee
	date     string
}

func (c *LineSwitchConstraint) Penalty(s *schedule.Schedule) int {
	lines := make(map[employeeDay]map[*schedule.Line]struct{})
	for _, o := range s.Orders {
		if o.Employee == nil || o.Start == nil || o.Line == nil {
			continue
		}
		key := employeeDay{employee: o.Employee, date: o.Start.Format(time.DateOnly)}
		if lines[key] == nil {
			lines[key] = make(map[*schedule.Line]struct{})
		}
		lines[key][o.Line] = struct{}{}
	}

	penalty := 0
	for _, used := range lines {
		if n := len(used); n > 1 {
			penalty += (n - 1) * c.weight
		}
	}
	return penalty
}
