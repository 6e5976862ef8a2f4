package schedule

import (
	"fmt"
	"regexp"
	"strconv"
)

// Score holds the three penalty accumulators produced by scoring a schedule.
// All penalties are non-negative, so a lower score is better. Hard must reach
// zero for a schedule to be feasible; Medium dominates Soft when comparing.
type Score struct {
	Hard   int `json:"hard"`
	Medium int `json:"medium"`
	Soft   int `json:"soft"`
}

// Add returns the component-wise sum of two scores.
func (s Score) Add(other Score) Score {
	return Score{
		Hard:   s.Hard + other.Hard,
		Medium: s.Medium + other.Medium,
		Soft:   s.Soft + other.Soft,
	}
}

// Compare orders scores lexicographically: hard first, then medium, then
// soft. It returns a negative value when s is better (smaller penalty) than
// other, zero when equal, and a positive value when worse.
func (s Score) Compare(other Score) int {
	if s.Hard != other.Hard {
		return s.Hard - other.Hard
	}
	if s.Medium != other.Medium {
		return s.Medium - other.Medium
	}
	return s.Soft - other.Soft
}

// Better reports whether s is strictly better than other.
func (s Score) Better(other Score) bool {
	return s.Compare(other) < 0
}

// Feasible reports whether the schedule violates no hard constraint.
func (s Score) Feasible() bool {
	return s.Hard == 0
}

func (s Score) String() string {
	return fmt.Sprintf("%dhard/%dmedium/%dsoft", s.Hard, s.Medium, s.Soft)
}

var scorePattern = regexp.MustCompile(`^(-?\d+)hard/(?:(-?\d+)medium/)?(-?\d+)soft$`)

// ParseScore parses the textual form produced by Score.String. The medium
// component may be omitted ("0hard/10soft"), in which case it is zero.
func ParseScore(text string) (Score, error) {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return Score{}, fmt.Errorf("malformed score %q", text)
	}
	hard, _ := strconv.Atoi(m[1])
	medium := 0
	if m[2] != "" {
		medium, _ = strconv.Atoi(m[2])
	}
	soft, _ := strconv.Atoi(m[3])
	return Score{Hard: hard, Medium: medium, Soft: soft}, nil
}
