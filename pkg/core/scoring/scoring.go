package scoring

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
)

// Tier selects which score accumulator a constraint's penalty lands in.
type Tier int

const (
	// TierHard penalties mark infeasible schedules; a feasible schedule has
	// zero hard penalty.
	TierHard Tier = iota

	// TierMedium penalties are preferences that must dominate every soft
	// preference when comparing schedules.
	TierMedium

	// TierSoft penalties are fine-grained preferences.
	TierSoft
)

func (t Tier) String() string {
	switch t {
	case TierHard:
		return "hard"
	case TierMedium:
		return "medium"
	default:
		return "soft"
	}
}

// Constraint is a single scoring rule. Implementations inspect a schedule
// snapshot and report their total weighted penalty for it.
//
// Implementations must be pure: no mutation of the snapshot, no I/O, and
// identical snapshots always produce identical penalties. Malformed input
// (nil references, zero dates) for a single order, pair or group contributes
// zero penalty rather than failing the whole evaluation.
type Constraint interface {
	// Name is a stable human-readable identifier for reporting.
	Name() string

	// Tier is the score accumulator this constraint penalizes.
	Tier() Tier

	// Penalty computes the constraint's total weighted penalty over the
	// snapshot. The result is never negative.
	Penalty(s *schedule.Schedule) int
}
