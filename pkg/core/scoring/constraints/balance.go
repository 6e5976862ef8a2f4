package constraints

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// EmployeeBalanceConstraint spreads orders across employees by penalizing
// every ordered pair of distinct orders sharing an employee. An employee
// with k orders contributes k·(k−1) units, which grows quadratically with
// load imbalance. Unlike the overlap rules the symmetric double count is
// kept; it only scales the pressure, and no start time is needed.
type EmployeeBalanceConstraint struct {
	weight int
}

// NewEmployeeBalanceConstraint creates the employee balancing preference.
func NewEmployeeBalanceConstraint(weight int) *EmployeeBalanceConstraint {
	return &EmployeeBalanceConstraint{weight: weight}
}

func (c *EmployeeBalanceConstraint) Name() string {
	return "Balance orders across employees"
}

func (c *EmployeeBalanceConstraint) Tier() scoring.Tier {
	return scoring.TierSoft
}

func (c *EmployeeBalanceConstraint) Penalty(s *schedule.Schedule) int {
	return c.weight * countSharedResourcePairs(s.Orders, func(o *schedule.Order) any {
		if o.Employee == nil {
			return nil
		}
		return o.Employee
	})
}

// LineBalanceConstraint spreads orders across lines with the same pairing
// rule as EmployeeBalanceConstraint, keyed on the shared line.
type LineBalanceConstraint struct {
	weight int
}

// NewLineBalanceConstraint creates the line balancing preference.
func NewLineBalanceConstraint(weight int) *LineBalanceConstraint {
	return &LineBalanceConstraint{weight: weight}
}

func (c *LineBalanceConstraint) Name() string {
	return "Balance orders across lines"
}

func (c *LineBalanceConstraint) Tier() scoring.Tier {
	return scoring.TierSoft
}

func (c *LineBalanceConstraint) Penalty(s *schedule.Schedule) int {
	return c.weight * countSharedResourcePairs(s.Orders, func(o *schedule.Order) any {
		if o.Line == nil {
			return nil
		}
		return o.Line
	})
}

// countSharedResourcePairs counts ordered pairs of distinct orders sharing a
// resource, from per-resource counts rather than an all-pairs scan.
func countSharedResourcePairs(orders []*schedule.Order, key func(*schedule.Order) any) int {
	counts := make(map[any]int)
	for _, o := range orders {
		if k := key(o); k != nil {
			counts[k]++
		}
	}
	pairs := 0
	for _, k := range counts {
		pairs += k * (k - 1)
	}
	return pairs
}
