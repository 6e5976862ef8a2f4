package problem

import (
	"fmt"
	"time"
)

// defaultSlotRRule covers three days of 15-minute slots, from the first day
// at midnight up to and including 23:45 on the third.
const defaultSlotRRule = "DTSTART:20300401T000000Z\nRRULE:FREQ=MINUTELY;INTERVAL=15;UNTIL=20300403T234500Z"

// Default returns the built-in demo problem: a three-shift pattern with an
// overnight shift, six employees, three interchangeable lines and 82 orders
// over a three-day horizon. It is used when a solve request carries no body.
func Default() *Definition {
	day1 := time.Date(2030, time.April, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	at := func(day time.Time, hour int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	}

	def := &Definition{
		Shifts: []ShiftDefinition{
			{Name: "Morning", Start: at(day1, 6), End: at(day1, 14)},
			{Name: "Evening", Start: at(day1, 14), End: at(day1, 22)},
			{Name: "Night", Start: at(day1, 22), End: at(day2, 6)},
		},
		Employees: []EmployeeDefinition{
			{Name: "Ann", Skills: []string{"Assembly", "Welding"}, Shift: "Morning"},
			{Name: "Bob", Skills: []string{"Assembly", "Cutting"}, Shift: "Morning"},
			{Name: "Carl", Skills: []string{"Assembly"}, Shift: "Evening"},
			{Name: "Dana", Skills: []string{"Assembly", "Welding"}, Shift: "Evening"},
			{Name: "Eve", Skills: []string{"Assembly", "Welding", "Cutting"}, Shift: "Night"},
			{Name: "Fay", Skills: []string{"Assembly"}, Shift: "Night"},
		},
		Lines: []LineDefinition{
			{Name: "L1", Functions: []string{"Cutting", "Assembly", "Welding"}},
			{Name: "L2", Functions: []string{"Cutting", "Assembly", "Welding"}},
			{Name: "L3", Functions: []string{"Cutting", "Assembly", "Welding"}},
		},
		TimeSlots: TimeSlotDefinition{RRule: defaultSlotRRule},
		Orders: []OrderDefinition{
			{ProductName: "Widget-A", Quantity: 100, WorkMinutes: 120, EarliestDate: day1, LatestDate: day2, RequiredSkill: "Welding", RequiredLineFunction: "Cutting"},
			{ProductName: "Widget-B", Quantity: 50, WorkMinutes: 60, EarliestDate: day1, LatestDate: day3, RequiredSkill: "Assembly", RequiredLineFunction: "Assembly"},
			{ProductName: "Widget-C", Quantity: 80, WorkMinutes: 30, EarliestDate: day1, LatestDate: day2, RequiredSkill: "Welding", RequiredLineFunction: "Welding"},
			{ProductName: "Widget-D", Quantity: 20, WorkMinutes: 45, EarliestDate: day2, LatestDate: day3, RequiredSkill: "Cutting", RequiredLineFunction: "Cutting"},
			{ProductName: "Widget-E", Quantity: 200, WorkMinutes: 180, EarliestDate: day1, LatestDate: day3, RequiredSkill: "Welding", RequiredLineFunction: "Welding"},
			{ProductName: "Widget-F", Quantity: 10, WorkMinutes: 15, EarliestDate: day2, LatestDate: day2, RequiredSkill: "Assembly", RequiredLineFunction: "Assembly"},
			{ProductName: "Widget-G", Quantity: 60, WorkMinutes: 90, EarliestDate: day3, LatestDate: day3, RequiredSkill: "Cutting", RequiredLineFunction: "Cutting"},
			{ProductName: "Widget-H", Quantity: 40, WorkMinutes: 30, EarliestDate: day1, LatestDate: day3, RequiredSkill: "Assembly", RequiredLineFunction: "Assembly"},
			{ProductName: "Widget-I", Quantity: 25, WorkMinutes: 20, EarliestDate: day2, LatestDate: day3, RequiredSkill: "Welding", RequiredLineFunction: "Cutting"},
			{ProductName: "Widget-J", Quantity: 15, WorkMinutes: 10, EarliestDate: day1, LatestDate: day1, RequiredSkill: "Assembly", RequiredLineFunction: "Assembly"},
			{ProductName: "Widget-K", Quantity: 70, WorkMinutes: 60, EarliestDate: day3, LatestDate: day3, RequiredSkill: "Welding", RequiredLineFunction: "Welding"},
			{ProductName: "Widget-L", Quantity: 5, WorkMinutes: 15, EarliestDate: day1, LatestDate: day3, RequiredSkill: "Cutting", RequiredLineFunction: "Cutting"},
		},
	}

	for i := 0; i < 70; i++ {
		def.Orders = append(def.Orders, OrderDefinition{
			ProductName:          fmt.Sprintf("Order-%d", i+1),
			Quantity:             10,
			WorkMinutes:          45 + (i%5)*15,
			EarliestDate:         day1.AddDate(0, 0, i%3),
			LatestDate:           day3,
			RequiredSkill:        "Assembly",
			RequiredLineFunction: "Assembly",
		})
	}

	return def
}
