package problem

import (
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/schedule"
)

// Encode converts an in-memory schedule back into the wire format, with
// employees and lines collapsed to name references. Encode(Resolve(d)) is
// equivalent to d with the slot domain made explicit.
func Encode(s *schedule.Schedule) *Definition {
	def := &Definition{
		TimeSlots: TimeSlotDefinition{Times: s.TimeSlots},
	}

	seenShifts := make(map[string]bool)
	for _, e := range s.Employees {
		shiftName := ""
		if e.Shift != nil {
			shiftName = e.Shift.Name
			if !seenShifts[shiftName] {
				seenShifts[shiftName] = true
				def.Shifts = append(def.Shifts, ShiftDefinition{
					Name:  e.Shift.Name,
					Start: e.Shift.Start,
					End:   e.Shift.End,
				})
			}
		}
		def.Employees = append(def.Employees, EmployeeDefinition{
			Name:   e.Name,
			Skills: e.Skills,
			Shift:  shiftName,
		})
	}

	for _, l := range s.Lines {
		def.Lines = append(def.Lines, LineDefinition{Name: l.Name, Functions: l.Functions})
	}

	for _, o := range s.Orders {
		od := OrderDefinition{
			ProductName:          o.ProductName,
			Quantity:             o.Quantity,
			WorkMinutes:          o.WorkMinutes,
			EarliestDate:         o.EarliestDate,
			LatestDate:           o.LatestDate,
			RequiredSkill:        o.RequiredSkill,
			RequiredLineFunction: o.RequiredLineFunction,
			Pinned:               o.Pinned,
		}
		if o.Employee != nil {
			od.Employee = o.Employee.Name
		}
		if o.Line != nil {
			od.Line = o.Line.Name
		}
		if o.Start != nil {
			start := *o.Start
			od.Start = &start
		}
		def.Orders = append(def.Orders, od)
	}

	return def
}
