// Package constraints implements the scoring rules for shop-floor order
// schedules: hard rules that mark a schedule infeasible, a medium-tier
// overtime minimizer, and weighted soft preferences.
package constraints

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// Default weights for the soft preferences. The hard rules always penalize
// one unit per violation and the overtime minimizer penalizes one medium
// unit per overtime minute.
const (
	DefaultFinishEarlyWeight    = 20
	DefaultBalanceWeight        = 1
	DefaultLineSwitchWeight     = 50
	DefaultIdleTimeWeight       = 5
	DefaultOvertimeGraceMinutes = 5
	DefaultMediumFoldWeight     = 200
)

// Default returns the canonical rule set in reporting order: hard rules
// first, then the medium tier, then soft preferences.
func Default() []scoring.Constraint {
	return []scoring.Constraint{
		NewLineFunctionConstraint(),
		NewSkillMatchConstraint(),
		NewOrderWindowConstraint(),
		NewLineOverlapConstraint(),
		NewEmployeeOverlapConstraint(),
		NewOvertimeStartConstraint(DefaultOvertimeGraceMinutes),
		NewOvertimeMinutesConstraint(),
		NewFinishEarlyConstraint(DefaultFinishEarlyWeight),
		NewEmployeeBalanceConstraint(DefaultBalanceWeight),
		NewLineBalanceConstraint(DefaultBalanceWeight),
		NewLineSwitchConstraint(DefaultLineSwitchWeight),
		NewIdleTimeConstraint(DefaultIdleTimeWeight),
	}
}
