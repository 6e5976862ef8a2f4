package constraints

import (
	"sort"
	"time"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
)

// LineOverlapConstraint forbids two orders on the same line from occupying
// intersecting time intervals. Each unordered pair of overlapping orders is
// penalized exactly once.
type LineOverlapConstraint struct{}

// NewLineOverlapConstraint creates the one-order-per-line-at-a-time rule.
func NewLineOverlapConstraint() *LineOverlapConstraint {
	return &LineOverlapConstraint{}
}

func (c *LineOverlapConstraint) Name() string {
	return "Only one order per line per overlapping time"
}

func (c *LineOverlapConstraint) Tier() scoring.Tier {
	return scoring.TierHard
}

func (c *LineOverlapConstraint) Penalty(s *schedule.Schedule) int {
	return countResourceOverlaps(s.Orders, func(o *schedule.Order) any {
		if o.Line == nil {
			return nil
		}
		return o.Line
	})
}

// EmployeeOverlapConstraint forbids two orders assigned to the same employee
// from occupying intersecting time intervals.
type EmployeeOverlapConstraint struct{}

// NewEmployeeOverlapConstraint creates the one-order-per-employee-at-a-time
// rule.
func NewEmployeeOverlapConstraint() *EmployeeOverlapConstraint {
	return &EmployeeOverlapConstraint{}
}

func (c *EmployeeOverlapConstraint) Name() string {
	return "Only one order per employee per overlapping time"
}

func (c *EmployeeOverlapConstraint) Tier() scoring.Tier {
	return scoring.TierHard
}

func (c *EmployeeOverlapConstraint) Penalty(s *schedule.Schedule) int {
	return countResourceOverlaps(s.Orders, func(o *schedule.Order) any {
		if o.Employee == nil {
			return nil
		}
		return o.Employee
	})
}

type scheduledInterval struct {
	start time.Time
	end   time.Time
}

// countResourceOverlaps buckets scheduled orders by the shared resource
// returned from key (nil keys are skipped) and counts the intersecting
// [start, end) pairs inside each bucket.
//
// Each bucket is sorted by start time, snapshot order breaking ties, and
// scanned with the earlier-starting order first, so every unordered pair is
// evaluated once regardless of snapshot order. Two intervals intersect when
// s1 < e2 && s2 < e1; with the sort in place this reduces to the later start
// falling before the earlier order's end, which also lets the inner scan
// stop at the first non-overlapping start.
func countResourceOverlaps(orders []*schedule.Order, key func(*schedule.Order) any) int {
	buckets := make(map[any][]scheduledInterval)
	for _, o := range orders {
		k := key(o)
		if k == nil {
			continue
		}
		start, end, ok := o.Interval()
		if !ok {
			continue
		}
		buckets[k] = append(buckets[k], scheduledInterval{start: start, end: end})
	}

	penalty := 0
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].start.Before(bucket[j].start)
		})
		for i := range bucket {
			for j := i + 1; j < len(bucket); j++ {
				if !bucket[j].start.Before(bucket[i].end) {
					break
				}
				penalty++
			}
		}
	}
	return penalty
}
