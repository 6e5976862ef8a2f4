package scoring

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
)

// Engine evaluates an ordered set of constraints against schedule snapshots.
// It is stateless and safe for concurrent use: scoring never mutates the
// snapshot and the engine holds no mutable state of its own.
type Engine struct {
	constraints []Constraint
	mediumFold  int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMediumFolded projects the three-tier score onto a two-tier scheme:
// medium penalties are multiplied by the given weight and added to the soft
// accumulator, leaving the medium accumulator at zero. This reproduces the
// legacy representation that expressed the medium tier as a large-weight
// soft penalty.
func WithMediumFolded(weight int) Option {
	return func(e *Engine) {
		e.mediumFold = weight
	}
}

// NewEngine creates an engine over the given constraints. The constraint
// order is kept for reporting only; penalties are summed, so evaluation
// order never affects the final score.
func NewEngine(constraints []Constraint, opts ...Option) *Engine {
	e := &Engine{constraints: constraints}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score computes the total penalty of the snapshot across all constraints.
func (e *Engine) Score(s *schedule.Schedule) schedule.Score {
	var score schedule.Score
	for _, c := range e.constraints {
		score = score.Add(tierScore(c.Tier(), c.Penalty(s)))
	}
	return e.fold(score)
}

// ConstraintScore is one constraint's contribution to a schedule's score.
type ConstraintScore struct {
	Name    string `json:"name"`
	Tier    string `json:"tier"`
	Penalty int    `json:"penalty"`
}

// Analysis is the per-constraint penalty breakdown of a snapshot.
type Analysis struct {
	Score       schedule.Score    `json:"score"`
	Constraints []ConstraintScore `json:"constraints"`
}

// Analyze scores the snapshot and reports each constraint's contribution
// separately, in the engine's constraint order. Constraints contributing no
// penalty are still listed so callers see the full rule set.
func (e *Engine) Analyze(s *schedule.Schedule) Analysis {
	analysis := Analysis{
		Constraints: make([]ConstraintScore, 0, len(e.constraints)),
	}
	for _, c := range e.constraints {
		penalty := c.Penalty(s)
		analysis.Constraints = append(analysis.Constraints, ConstraintScore{
			Name:    c.Name(),
			Tier:    c.Tier().String(),
			Penalty: penalty,
		})
		analysis.Score = analysis.Score.Add(tierScore(c.Tier(), penalty))
	}
	analysis.Score = e.fold(analysis.Score)
	return analysis
}

func (e *Engine) fold(score schedule.Score) schedule.Score {
	if e.mediumFold == 0 {
		return score
	}
	return schedule.Score{
		Hard: score.Hard,
		Soft: score.Soft + score.Medium*e.mediumFold,
	}
}

func tierScore(tier Tier, penalty int) schedule.Score {
	switch tier {
	case TierHard:
		return schedule.Score{Hard: penalty}
	case TierMedium:
		return schedule.Score{Medium: penalty}
	default:
		return schedule.Score{Soft: penalty}
	}
}
