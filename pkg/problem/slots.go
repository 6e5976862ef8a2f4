package problem

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// ExpandTimeSlots materializes the candidate start times from a slot
// definition. RRULE occurrences and explicit times are combined, sorted and
// deduplicated. An RRULE must carry a COUNT or UNTIL bound so the domain
// stays finite.
func ExpandTimeSlots(def TimeSlotDefinition) ([]time.Time, error) {
	var slots []time.Time

	if def.RRule != "" {
		upper := strings.ToUpper(def.RRule)
		if !strings.Contains(upper, "COUNT=") && !strings.Contains(upper, "UNTIL=") {
			return nil, fmt.Errorf("time slot rrule must be bounded with COUNT or UNTIL")
		}
		set, err := rrule.StrToRRuleSet(def.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid time slot rrule: %w", err)
		}
		slots = append(slots, set.All()...)
	}

	slots = append(slots, def.Times...)

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	deduped := slots[:0]
	for _, slot := range slots {
		if len(deduped) > 0 && slot.Equal(deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, slot)
	}
	return deduped, nil
}
