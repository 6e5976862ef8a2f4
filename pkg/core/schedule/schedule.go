package schedule

import (
	"slices"
	"time"
)

// Shift is a recurring work period defined by a start and end timestamp.
// Only the time-of-day components matter for window resolution; the dates on
// Start and End are whatever the problem setup used to describe the shift.
//
// Two special shapes exist:
//   - Start and End share the same time-of-day: a full-day (24h) shift with
//     no overtime boundary
//   - the end time-of-day is not after the start time-of-day: the shift wraps
//     past midnight (night shift)
type Shift struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Employee is immutable reference data: a name, a set of skill labels and an
// optional owning shift. Employees without a shift are never subject to the
// overtime or idle-time rules.
type Employee struct {
	Name   string
	Skills []string
	Shift  *Shift
}

// HasSkill reports whether the employee carries the given skill label.
func (e *Employee) HasSkill(skill string) bool {
	return slices.Contains(e.Skills, skill)
}

// Line is a production line with the list of function labels it supports.
// Duplicates in Functions are allowed but treated as a set.
type Line struct {
	Name      string
	Functions []string
}

// Supports reports whether the line provides the given function label.
func (l *Line) Supports(function string) bool {
	return slices.Contains(l.Functions, function)
}

// Order is the assignable entity. The fixed fields describe the work; the
// three assignable fields (Employee, Line, Start) are the decision variables
// an optimizer controls and each may be nil/unset at any point during search.
type Order struct {
	ProductName          string
	Quantity             int
	WorkMinutes          int
	EarliestDate         time.Time
	LatestDate           time.Time
	RequiredSkill        string
	RequiredLineFunction string

	// Pinned orders must not have their assignable fields altered by an
	// optimizer. The scoring engine treats them like any other order.
	Pinned bool

	Employee *Employee
	Line     *Line
	Start    *time.Time
}

// Duration returns the order's work duration, clamped to at least one minute.
func (o *Order) Duration() time.Duration {
	return time.Duration(max(1, o.WorkMinutes)) * time.Minute
}

// Interval returns the scheduled [start, end) interval. ok is false when the
// order has no scheduled start.
func (o *Order) Interval() (start, end time.Time, ok bool) {
	if o.Start == nil {
		return time.Time{}, time.Time{}, false
	}
	return *o.Start, o.Start.Add(o.Duration()), true
}

// Schedule is an immutable snapshot of a scheduling problem: the candidate
// value domains plus the current assignment state of every order. It is the
// exact input to the scoring engine, which only ever reads it.
type Schedule struct {
	Employees []*Employee
	Lines     []*Line
	TimeSlots []time.Time
	Orders    []*Order
}

// Clone returns a copy of the schedule whose orders can be mutated without
// affecting the receiver. Reference data (employees, lines, time slots) is
// shared, matching its immutable lifecycle.
func (s *Schedule) Clone() *Schedule {
	clone := &Schedule{
		Employees: s.Employees,
		Lines:     s.Lines,
		TimeSlots: s.TimeSlots,
		Orders:    make([]*Order, len(s.Orders)),
	}
	for i, o := range s.Orders {
		copied := *o
		if o.Start != nil {
			start := *o.Start
			copied.Start = &start
		}
		clone.Orders[i] = &copied
	}
	return clone
}
