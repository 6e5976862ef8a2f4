package constraints

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// FinishEarlyConstraint prefers scheduling orders close to their earliest
// allowed date: each day of delay past it costs one weighted unit. Orders
// scheduled before their earliest date contribute nothing here (the window
// rule already marks them infeasible).
type FinishEarlyConstraint struct {
	weight int
}

// NewFinishEarlyConstraint creates the finish-early preference with the
// given weight per day of delay.
func NewFinishEarlyConstraint(weight int) *FinishEarlyConstraint {
	return &FinishEarlyConstraint{weight: weight}
}

func (c *FinishEarlyConstraint) Name() string {
	return "Finish orders as early as possible"
}

func (c *FinishEarlyConstraint) Tier() scoring.Tier {
	return scoring.TierSoft
}

func (c *FinishEarlyConstraint) Penalty(s *schedule.Schedule) int {
	penalty := 0
	for _, o := range s.Orders {
		if o.Start == nil || o.EarliestDate.IsZero() {
			continue
		}
		penalty += max(0, schedule.DaysBetween(o.EarliestDate, *o.Start)) * c.weight
	}
	return penalty
}
