// Package jobs runs solver jobs in the background and keeps a bounded cache
// of their results. Each submitted problem gets a UUID handle; callers poll
// the handle for the current best schedule, terminate it early, or wait for
// completion.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/solver"
)

// Status reports whether a job's solver is still running.
type Status string

const (
	StatusSolving Status = "SOLVING_ACTIVE"
	StatusIdle    Status = "NOT_SOLVING"
)

// DefaultCacheLimit is how many completed jobs are retained before the
// oldest ones are evicted.
const DefaultCacheLimit = 2

// ErrNotFound is returned for unknown job IDs.
var ErrNotFound = errors.New("job not found")

// Job is a point-in-time snapshot of a solver job.
type Job struct {
	ID        string
	Status    Status
	Schedule  *schedule.Schedule
	Score     schedule.Score
	CreatedAt time.Time
	Err       error
}

type job struct {
	id        string
	createdAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}

	status   Status
	schedule *schedule.Schedule
	score    schedule.Score
	err      error
}

// Manager owns the job cache and the solver goroutines.
type Manager struct {
	solver     *solver.Solver
	logger     *zap.Logger
	cacheLimit int

	mu   sync.Mutex
	jobs map[string]*job
	wg   sync.WaitGroup
}

// NewManager creates a manager that solves with the given solver. A
// non-positive cacheLimit falls back to DefaultCacheLimit.
func NewManager(s *solver.Solver, cacheLimit int, logger *zap.Logger) *Manager {
	if cacheLimit <= 0 {
		cacheLimit = DefaultCacheLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		solver:     s,
		logger:     logger,
		cacheLimit: cacheLimit,
		jobs:       make(map[string]*job),
	}
}

// Submit starts solving the problem in the background and returns the job ID.
// The problem is cloned, so the caller may keep mutating its copy.
func (m *Manager) Submit(problem *schedule.Schedule) string {
	ctx, cancel := context.WithCancel(context.Background())
	j := &job{
		id:        uuid.New().String(),
		createdAt: time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
		status:    StatusSolving,
		schedule:  problem.Clone(),
	}

	m.mu.Lock()
	m.jobs[j.id] = j
	m.mu.Unlock()

	m.logger.Info("job submitted",
		zap.String("job_id", j.id),
		zap.Int("orders", len(problem.Orders)))

	m.wg.Add(1)
	go m.run(ctx, j)
	return j.id
}

func (m *Manager) run(ctx context.Context, j *job) {
	defer m.wg.Done()
	defer j.cancel()

	onBest := func(best *schedule.Schedule, score schedule.Score, step int) {
		m.mu.Lock()
		j.schedule = best
		j.score = score
		m.mu.Unlock()
	}

	best, score, err := m.solver.Solve(ctx, j.schedule, onBest)

	m.mu.Lock()
	j.status = StatusIdle
	if err != nil {
		j.err = fmt.Errorf("solving failed: %w", err)
	} else {
		j.schedule = best
		j.score = score
	}
	m.mu.Unlock()
	close(j.done)

	if err != nil {
		m.logger.Error("job failed", zap.String("job_id", j.id), zap.Error(err))
	} else {
		m.logger.Info("job finished",
			zap.String("job_id", j.id),
			zap.String("score", score.String()))
	}

	m.evictCompleted()
}

// List returns the IDs of all cached jobs, newest first.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]*job, 0, len(m.jobs))
	for _, j := range m.jobs {
		all = append(all, j)
	}
	sort.Slice(all, func(i, k int) bool { return all[i].createdAt.After(all[k].createdAt) })

	ids := make([]string, len(all))
	for i, j := range all {
		ids[i] = j.id
	}
	return ids
}

// Get returns the current snapshot of a job. A failed job's snapshot carries
// its error.
func (m *Manager) Get(id string) (Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	j, ok := m.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return snapshot(j), nil
}

// Terminate stops a running job early and returns its snapshot.
func (m *Manager) Terminate(id string) (Job, error) {
	m.mu.Lock()
	j, ok := m.jobs[id]
	m.mu.Unlock()
	if !ok {
		return Job{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	m.logger.Info("job terminated", zap.String("job_id", id))
	j.cancel()
	<-j.done

	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(j), nil
}

// Await blocks until the job completes or the context is cancelled, then
// returns the final snapshot.
func (m *Manager) Await(ctx context.Context, id string) (Job, error) {
	m.mu.Lock()
	j, ok := m.jobs[id]
	m.mu.Unlock()
	if !ok {
		return Job{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	select {
	case <-j.done:
	case <-ctx.Done():
		return Job{}, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(j), nil
}

// Close terminates all running jobs and waits for their goroutines.
func (m *Manager) Close() {
	m.mu.Lock()
	for _, j := range m.jobs {
		j.cancel()
	}
	m.mu.Unlock()
	m.wg.Wait()
}

// evictCompleted drops the oldest completed jobs once the cache exceeds its
// limit. Running jobs are never evicted.
func (m *Manager) evictCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.jobs) <= m.cacheLimit {
		return
	}

	var completed []*job
	for _, j := range m.jobs {
		if j.status == StatusIdle {
			completed = append(completed, j)
		}
	}
	sort.Slice(completed, func(i, k int) bool {
		return completed[i].createdAt.Before(completed[k].createdAt)
	})

	toRemove := len(completed) - m.cacheLimit
	for i := 0; i < toRemove; i++ {
		delete(m.jobs, completed[i].id)
		m.logger.Debug("evicted completed job", zap.String("job_id", completed[i].id))
	}
}

func snapshot(j *job) Job {
	return Job{
		ID:        j.id,
		Status:    j.status,
		Schedule:  j.schedule,
		Score:     j.score,
		CreatedAt: j.createdAt,
		Err:       j.err,
	}
}
