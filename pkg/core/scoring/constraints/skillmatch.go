package constraints

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// SkillMatchConstraint requires an order's assigned employee to carry the
// order's required skill label.
type SkillMatchConstraint struct{}

// NewSkillMatchConstraint creates the employee-skill matching rule.
func NewSkillMatchConstraint() *SkillMatchConstraint {
	return &SkillMatchConstraint{}
}

func (c *SkillMatchConstraint) Name() string {
	return "Employee must have required skill"
}

func (c *SkillMatchConstraint) Tier() scoring.Tier {
	return scoring.TierHard
}

func (c *SkillMatchConstraint) Penalty(s *schedule.Schedule) int {
	penalty := 0
	for _, o := range s.Orders {
		if o.Employee == nil || o.RequiredSkill == "" {
			continue
		}
		if !o.Employee.HasSkill(o.RequiredSkill) {
			penalty++
		}
	}
	return penalty
}
