// Package problem defines the wire format for submitted scheduling problems
// and resolves it into the in-memory model. Employees and lines are referenced
// by name, timestamps are RFC 3339, and the time-slot domain can be given
// either explicitly or as an RRULE.
package problem

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
)

// Definition is a scheduling problem as submitted over HTTP or loaded from a
// YAML file.
type Definition struct {
	Shifts    []ShiftDefinition    `json:"shifts" yaml:"shifts" validate:"required,min=1,dive"`
	Employees []EmployeeDefinition `json:"employees" yaml:"employees" validate:"required,min=1,dive"`
	Lines     []LineDefinition     `json:"lines" yaml:"lines" validate:"required,min=1,dive"`
	TimeSlots TimeSlotDefinition   `json:"timeSlots" yaml:"timeSlots"`
	Orders    []OrderDefinition    `json:"orders" yaml:"orders" validate:"required,min=1,dive"`
}

// ShiftDefinition names a shift and anchors its daily window. A shift whose
// end is not after its start wraps past midnight; identical start and end
// times of day mean the shift covers the whole day.
type ShiftDefinition struct {
	Name  string    `json:"name" yaml:"name" validate:"required"`
	Start time.Time `json:"start" yaml:"start" validate:"required"`
	End   time.Time `json:"end" yaml:"end" validate:"required"`
}

// EmployeeDefinition references its shift by name.
type EmployeeDefinition struct {
	Name   string   `json:"name" yaml:"name" validate:"required"`
	Skills []string `json:"skills,omitempty" yaml:"skills,omitempty"`
	Shift  string   `json:"shift" yaml:"shift" validate:"required"`
}

// LineDefinition names a production line and the functions it supports.
type LineDefinition struct {
	Name      string   `json:"name" yaml:"name" validate:"required"`
	Functions []string `json:"functions,omitempty" yaml:"functions,omitempty"`
}

// TimeSlotDefinition gives the candidate start times, either as an explicit
// list, as an RRULE (with DTSTART and a COUNT or UNTIL bound), or both.
type TimeSlotDefinition struct {
	RRule string      `json:"rrule,omitempty" yaml:"rrule,omitempty"`
	Times []time.Time `json:"times,omitempty" yaml:"times,omitempty"`
}

// OrderDefinition is a production order. Employee, Line and Start are the
// assignable fields; they may be pre-set, and Pinned keeps them fixed during
// solving.
type OrderDefinition struct {
	ProductName          string     `json:"productName" yaml:"productName" validate:"required"`
	Quantity             int        `json:"quantity" yaml:"quantity" validate:"min=0"`
	WorkMinutes          int        `json:"workMinutes" yaml:"workMinutes" validate:"min=0"`
	EarliestDate         time.Time  `json:"earliestDate" yaml:"earliestDate" validate:"required"`
	LatestDate           time.Time  `json:"latestDate" yaml:"latestDate" validate:"required"`
	RequiredSkill        string     `json:"requiredSkill,omitempty" yaml:"requiredSkill,omitempty"`
	RequiredLineFunction string     `json:"requiredLineFunction,omitempty" yaml:"requiredLineFunction,omitempty"`
	Pinned               bool       `json:"pinned,omitempty" yaml:"pinned,omitempty"`
	Employee             string     `json:"employee,omitempty" yaml:"employee,omitempty"`
	Line                 string     `json:"line,omitempty" yaml:"line,omitempty"`
	Start                *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
}

var validate = validator.New()

// Validate runs structural validation on a definition.
func Validate(def *Definition) error {
	if err := validate.Struct(def); err != nil {
		return fmt.Errorf("problem validation failed: %w", err)
	}
	if def.TimeSlots.RRule == "" && len(def.TimeSlots.Times) == 0 {
		return fmt.Errorf("problem validation failed: timeSlots needs an rrule or explicit times")
	}
	return nil
}

// Resolve validates a definition and builds the in-memory problem from it.
// Name references are resolved against the declared shifts, employees and
// lines; unknown or duplicate names are errors.
func Resolve(def *Definition) (*schedule.Schedule, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	shifts := make(map[string]*schedule.Shift, len(def.Shifts))
	for _, s := range def.Shifts {
		if _, ok := shifts[s.Name]; ok {
			return nil, fmt.Errorf("duplicate shift %q", s.Name)
		}
		shifts[s.Name] = &schedule.Shift{Name: s.Name, Start: s.Start, End: s.End}
	}

	employees := make([]*schedule.Employee, 0, len(def.Employees))
	employeeByName := make(map[string]*schedule.Employee, len(def.Employees))
	for _, e := range def.Employees {
		if _, ok := employeeByName[e.Name]; ok {
			return nil, fmt.Errorf("duplicate employee %q", e.Name)
		}
		shift, ok := shifts[e.Shift]
		if !ok {
			return nil, fmt.Errorf("employee %q references unknown shift %q", e.Name, e.Shift)
		}
		employee := &schedule.Employee{Name: e.Name, Skills: e.Skills, Shift: shift}
		employees = append(employees, employee)
		employeeByName[e.Name] = employee
	}

	lines := make([]*schedule.Line, 0, len(def.Lines))
	lineByName := make(map[string]*schedule.Line, len(def.Lines))
	for _, l := range def.Lines {
		if _, ok := lineByName[l.Name]; ok {
			return nil, fmt.Errorf("duplicate line %q", l.Name)
		}
		line := &schedule.Line{Name: l.Name, Functions: l.Functions}
		lines = append(lines, line)
		lineByName[l.Name] = line
	}

	slots, err := ExpandTimeSlots(def.TimeSlots)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("problem has no time slots")
	}

	orders := make([]*schedule.Order, 0, len(def.Orders))
	for _, o := range def.Orders {
		order := &schedule.Order{
			ProductName:          o.ProductName,
			Quantity:             o.Quantity,
			WorkMinutes:          o.WorkMinutes,
			EarliestDate:         o.EarliestDate,
			LatestDate:           o.LatestDate,
			RequiredSkill:        o.RequiredSkill,
			RequiredLineFunction: o.RequiredLineFunction,
			Pinned:               o.Pinned,
		}
		if o.Employee != "" {
			employee, ok := employeeByName[o.Employee]
			if !ok {
				return nil, fmt.Errorf("order %q references unknown employee %q", o.ProductName, o.Employee)
			}
			order.Employee = employee
		}
		if o.Line != "" {
			line, ok := lineByName[o.Line]
			if !ok {
				return nil, fmt.Errorf("order %q references unknown line %q", o.ProductName, o.Line)
			}
			order.Line = line
		}
		if o.Start != nil {
			start := *o.Start
			order.Start = &start
		}
		orders = append(orders, order)
	}

	return &schedule.Schedule{
		Employees: employees,
		Lines:     lines,
		TimeSlots: slots,
		Orders:    orders,
	}, nil
}
