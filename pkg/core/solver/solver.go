// Package solver implements a simple local-search optimizer over schedule
// snapshots. It consumes the scoring engine as a pure function: random
// single-order moves are proposed, scored, and kept when they do not worsen
// the score. The scoring rules themselves know nothing about the search.
package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// Parameters control the search budget and termination.
type Parameters struct {
	// TimeLimit bounds the wall-clock time spent searching. Zero means no
	// time limit.
	TimeLimit time.Duration

	// MaxSteps bounds the number of proposed moves. Zero means no step
	// limit. At least one of TimeLimit and MaxSteps must be set.
	MaxSteps int

	// BestScoreLimit stops the search early once the best score is at least
	// this good.
	BestScoreLimit *schedule.Score

	// Seed makes runs reproducible. The same seed on the same problem
	// yields the same result.
	Seed int64
}

// Progress is invoked whenever the search finds a new best schedule. The
// passed schedule is a private clone and safe to retain.
type Progress func(best *schedule.Schedule, score schedule.Score, step int)

// Solver runs local search over the assignable fields of a problem's orders.
type Solver struct {
	engine *scoring.Engine
	params Parameters
	logger *zap.Logger
}

// New creates a solver around the given scoring engine.
func New(engine *scoring.Engine, params Parameters, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{engine: engine, params: params, logger: logger}
}

// ErrNoBudget is returned when the parameters give the search no room to
// run at all.
var ErrNoBudget = errors.New("solver: neither TimeLimit nor MaxSteps is set")

// Solve searches for a low-scoring assignment of the problem's orders and
// returns the best schedule found with its score. The input problem is never
// mutated; pinned orders keep their assignments untouched. Cancelling the
// context stops the search and returns the best schedule so far.
func (s *Solver) Solve(ctx context.Context, problem *schedule.Schedule, onBest Progress) (*schedule.Schedule, schedule.Score, error) {
	if s.params.TimeLimit <= 0 && s.params.MaxSteps <= 0 {
		return nil, schedule.Score{}, ErrNoBudget
	}

	rng := rand.New(rand.NewSource(s.params.Seed))
	working := problem.Clone()

	movable := movableOrders(working)
	s.seed(working, movable, rng)

	current := s.engine.Score(working)
	best := working.Clone()
	bestScore := current

	s.logger.Info("solver started",
		zap.Int("orders", len(working.Orders)),
		zap.Int("movable", len(movable)),
		zap.String("initialScore", current.String()))

	if onBest != nil {
		onBest(best.Clone(), bestScore, 0)
	}

	deadline := time.Time{}
	if s.params.TimeLimit > 0 {
		deadline = time.Now().Add(s.params.TimeLimit)
	}

	step := 0
	for {
		if len(movable) == 0 {
			break
		}
		if s.params.MaxSteps > 0 && step >= s.params.MaxSteps {
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
		if ctx.Err() != nil {
			s.logger.Info("solver cancelled", zap.Int("steps", step))
			break
		}
		if s.params.BestScoreLimit != nil && bestScore.Compare(*s.params.BestScoreLimit) <= 0 {
			s.logger.Info("solver reached best-score limit",
				zap.String("score", bestScore.String()))
			break
		}
		step++

		order := movable[rng.Intn(len(movable))]
		undo := s.mutate(working, order, rng)
		if undo == nil {
			continue
		}

		next := s.engine.Score(working)
		if next.Compare(current) > 0 {
			undo()
			continue
		}
		current = next

		if current.Better(bestScore) {
			bestScore = current
			best = working.Clone()
			s.logger.Debug("solver improved",
				zap.Int("step", step),
				zap.String("score", bestScore.String()))
			if onBest != nil {
				onBest(best.Clone(), bestScore, step)
			}
		}
	}

	s.logger.Info("solver finished",
		zap.Int("steps", step),
		zap.String("bestScore", bestScore.String()))
	return best, bestScore, nil
}

// movableOrders returns the orders whose assignments the search may change.
func movableOrders(s *schedule.Schedule) []*schedule.Order {
	var movable []*schedule.Order
	for _, o := range s.Orders {
		if !o.Pinned {
			movable = append(movable, o)
		}
	}
	return movable
}

// seed gives every movable order a full assignment to start from, drawn
// uniformly from the candidate domains. Pre-assigned fields are kept.
func (s *Solver) seed(working *schedule.Schedule, movable []*schedule.Order, rng *rand.Rand) {
	for _, o := range movable {
		if o.Employee == nil && len(working.Employees) > 0 {
			o.Employee = working.Employees[rng.Intn(len(working.Employees))]
		}
		if o.Line == nil && len(working.Lines) > 0 {
			o.Line = working.Lines[rng.Intn(len(working.Lines))]
		}
		if o.Start == nil && len(working.TimeSlots) > 0 {
			slot := working.TimeSlots[rng.Intn(len(working.TimeSlots))]
			o.Start = &slot
		}
	}
}

// mutate applies one random move to the order and returns a function that
// reverts it, or nil when the chosen domain is empty.
func (s *Solver) mutate(working *schedule.Schedule, order *schedule.Order, rng *rand.Rand) func() {
	switch rng.Intn(3) {
	case 0:
		if len(working.Employees) == 0 {
			return nil
		}
		prev := order.Employee
		order.Employee = working.Employees[rng.Intn(len(working.Employees))]
		return func() { order.Employee = prev }
	case 1:
		if len(working.Lines) == 0 {
			return nil
		}
		prev := order.Line
		order.Line = working.Lines[rng.Intn(len(working.Lines))]
		return func() { order.Line = prev }
	default:
		if len(working.TimeSlots) == 0 {
			return nil
		}
		prev := order.Start
		slot := working.TimeSlots[rng.Intn(len(working.TimeSlots))]
		order.Start = &slot
		return func() { order.Start = prev }
	}
}
