package constraints

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// LineFunctionConstraint requires an order's assigned line to support the
// order's required line function.
//
// Only evaluated when both the line assignment and the required function are
// present; an order with no line (or no requirement) contributes nothing.
type LineFunctionConstraint struct{}

// NewLineFunctionConstraint creates the line-function matching rule.
func NewLineFunctionConstraint() *LineFunctionConstraint {
	return &LineFunctionConstraint{}
}

func (c *LineFunctionConstraint) Name() string {
	return "Line function must match order requirement"
}

func (c *LineFunctionConstraint) Tier() scoring.Tier {
	return scoring.TierHard
}

func (c *LineFunctionConstraint) Penalty(s *schedule.Schedule) int {
	penalty := 0
	for _, o := range s.Orders {
		if o.Line == nil || o.RequiredLineFunction == "" {
			continue
		}
		if !o.Line.Supports(o.RequiredLineFunction) {
			penalty++
		}
	}
	return penalty
}
