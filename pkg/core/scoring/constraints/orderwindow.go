package constraints

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// OrderWindowConstraint requires the scheduled date to fall inside the
// order's [earliest, latest] date window.
//
// Orders with no scheduled start, or with either window boundary unset, are
// skipped.
type OrderWindowConstraint struct{}

// NewOrderWindowConstraint creates the scheduling-window rule.
func NewOrderWindowConstraint() *OrderWindowConstraint {
	return &OrderWindowConstraint{}
}

func (c *OrderWindowConstraint) Name() string {
	return "Order must be scheduled within its allowed window"
}

func (c *OrderWindowConstraint) Tier() scoring.Tier {
	return scoring.TierHard
}

func (c *OrderWindowConstraint) Penalty(s *schedule.Schedule) int {
	penalty := 0
	for _, o := range s.Orders {
		if o.Start == nil || o.EarliestDate.IsZero() || o.LatestDate.IsZero() {
			continue
		}
		date := schedule.DateOf(*o.Start)
		if date.Before(schedule.DateOf(o.EarliestDate)) || date.After(schedule.DateOf(o.LatestDate)) {
			penalty++
		}
	}
	return penalty
}
