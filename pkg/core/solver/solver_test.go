package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring/constraints"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/solver"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2030, time.April, day, hour, minute, 0, 0, time.UTC)
}

// tinyProblem builds a trivially satisfiable problem: two skilled employees,
// two capable lines and enough slots that two one-hour orders can run without
// overlapping anything.
func tinyProblem() *schedule.Schedule {
	shift := &schedule.Shift{Name: "Morning", Start: at(1, 6, 0), End: at(1, 14, 0)}
	ann := &schedule.Employee{Name: "Ann", Skills: []string{"Welding", "Assembly"}, Shift: shift}
	bob := &schedule.Employee{Name: "Bob", Skills: []string{"Welding", "Assembly"}, Shift: shift}
	l1 := &schedule.Line{Name: "L1", Functions: []string{"Cutting", "Packing"}}
	l2 := &schedule.Line{Name: "L2", Functions: []string{"Cutting", "Packing"}}

	return &schedule.Schedule{
		Employees: []*schedule.Employee{ann, bob},
		Lines:     []*schedule.Line{l1, l2},
		TimeSlots: []time.Time{at(1, 8, 0), at(1, 10, 0)},
		Orders: []*schedule.Order{
			{
				ProductName:          "Widget-A",
				Quantity:             5,
				WorkMinutes:          60,
				EarliestDate:         at(1, 0, 0),
				LatestDate:           at(2, 0, 0),
				RequiredSkill:        "Welding",
				RequiredLineFunction: "Cutting",
			},
			{
				ProductName:          "Widget-B",
				Quantity:             5,
				WorkMinutes:          60,
				EarliestDate:         at(1, 0, 0),
				LatestDate:           at(2, 0, 0),
				RequiredSkill:        "Assembly",
				RequiredLineFunction: "Packing",
			},
		},
	}
}

func newSolver(params solver.Parameters) *solver.Solver {
	engine := scoring.NewEngine(constraints.Default())
	return solver.New(engine, params, zap.NewNop())
}

func TestSolve_FindsFeasibleAssignment(t *testing.T) {
	s := newSolver(solver.Parameters{MaxSteps: 20000, Seed: 1})

	best, score, err := s.Solve(context.Background(), tinyProblem(), nil)

	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 0, score.Hard)
	for _, o := range best.Orders {
		assert.NotNil(t, o.Employee, o.ProductName)
		assert.NotNil(t, o.Line, o.ProductName)
		assert.NotNil(t, o.Start, o.ProductName)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	params := solver.Parameters{MaxSteps: 5000, Seed: 42}

	_, first, err := newSolver(params).Solve(context.Background(), tinyProblem(), nil)
	require.NoError(t, err)
	_, second, err := newSolver(params).Solve(context.Background(), tinyProblem(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSolve_HonorsPinned(t *testing.T) {
	problem := tinyProblem()
	pinned := problem.Orders[0]
	pinned.Pinned = true
	pinned.Employee = problem.Employees[0]
	pinned.Line = problem.Lines[0]
	start := at(1, 8, 0)
	pinned.Start = &start

	s := newSolver(solver.Parameters{MaxSteps: 5000, Seed: 7})
	best, _, err := s.Solve(context.Background(), problem, nil)

	require.NoError(t, err)
	got := best.Orders[0]
	assert.Same(t, problem.Employees[0], got.Employee)
	assert.Same(t, problem.Lines[0], got.Line)
	require.NotNil(t, got.Start)
	assert.True(t, got.Start.Equal(start))
}

func TestSolve_DoesNotMutateInput(t *testing.T) {
	problem := tinyProblem()

	s := newSolver(solver.Parameters{MaxSteps: 2000, Seed: 3})
	_, _, err := s.Solve(context.Background(), problem, nil)

	require.NoError(t, err)
	for _, o := range problem.Orders {
		assert.Nil(t, o.Employee)
		assert.Nil(t, o.Line)
		assert.Nil(t, o.Start)
	}
}

func TestSolve_NoBudget(t *testing.T) {
	s := newSolver(solver.Parameters{})

	_, _, err := s.Solve(context.Background(), tinyProblem(), nil)

	assert.ErrorIs(t, err, solver.ErrNoBudget)
}

func TestSolve_CancelledContextReturnsBestSoFar(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newSolver(solver.Parameters{TimeLimit: time.Minute, Seed: 1})
	best, _, err := s.Solve(ctx, tinyProblem(), nil)

	require.NoError(t, err)
	assert.NotNil(t, best)
}

func TestSolve_BestScoreLimitStopsEarly(t *testing.T) {
	limit := schedule.Score{Hard: 0, Medium: 1 << 30, Soft: 1 << 30}
	s := newSolver(solver.Parameters{
		MaxSteps:       1 << 30,
		TimeLimit:      30 * time.Second,
		BestScoreLimit: &limit,
		Seed:           1,
	})

	start := time.Now()
	_, score, err := s.Solve(context.Background(), tinyProblem(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, score.Hard)
	assert.Less(t, time.Since(start), 30*time.Second)
}

func TestSolve_ReportsProgress(t *testing.T) {
	var scores []schedule.Score
	onBest := func(_ *schedule.Schedule, score schedule.Score, _ int) {
		scores = append(scores, score)
	}

	s := newSolver(solver.Parameters{MaxSteps: 5000, Seed: 9})
	_, final, err := s.Solve(context.Background(), tinyProblem(), onBest)

	require.NoError(t, err)
	require.NotEmpty(t, scores)
	assert.Equal(t, final, scores[len(scores)-1])
	for i := 1; i < len(scores); i++ {
		assert.True(t, scores[i].Better(scores[i-1]))
	}
}
