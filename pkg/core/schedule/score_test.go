package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCompare_Lexicographic(t *testing.T) {
	// Any hard penalty outweighs all medium and soft ones.
	assert.True(t, Score{Hard: 0, Medium: 9999, Soft: 9999}.Better(Score{Hard: 1}))
	// Medium dominates soft.
	assert.True(t, Score{Medium: 1, Soft: 9999}.Better(Score{Medium: 2, Soft: 0}))
	// Soft breaks the remaining ties.
	assert.True(t, Score{Soft: 10}.Better(Score{Soft: 11}))
	assert.False(t, Score{Soft: 10}.Better(Score{Soft: 10}))
}

func TestScoreAdd(t *testing.T) {
	sum := Score{Hard: 1, Medium: 2, Soft: 3}.Add(Score{Hard: 10, Medium: 20, Soft: 30})
	assert.Equal(t, Score{Hard: 11, Medium: 22, Soft: 33}, sum)
}

func TestScoreFeasible(t *testing.T) {
	assert.True(t, Score{Medium: 5, Soft: 100}.Feasible())
	assert.False(t, Score{Hard: 1}.Feasible())
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "1hard/200medium/35soft", Score{Hard: 1, Medium: 200, Soft: 35}.String())
}

func TestParseScore_ThreeTier(t *testing.T) {
	score, err := ParseScore("1hard/200medium/35soft")
	require.NoError(t, err)
	assert.Equal(t, Score{Hard: 1, Medium: 200, Soft: 35}, score)
}

func TestParseScore_TwoTierFormAllowed(t *testing.T) {
	score, err := ParseScore("0hard/10soft")
	require.NoError(t, err)
	assert.Equal(t, Score{Hard: 0, Medium: 0, Soft: 10}, score)
}

func TestParseScore_RoundTrip(t *testing.T) {
	orig := Score{Hard: 3, Medium: 1, Soft: 42}
	parsed, err := ParseScore(orig.String())
	require.NoError(t, err)
	assert.Equal(t, orig, parsed)
}

func TestParseScore_Malformed(t *testing.T) {
	_, err := ParseScore("not a score")
	assert.Error(t, err)
}

func TestOrderDuration_ClampedToOneMinute(t *testing.T) {
	assert.Equal(t, "1m0s", (&Order{WorkMinutes: 0}).Duration().String())
	assert.Equal(t, "1m0s", (&Order{WorkMinutes: -5}).Duration().String())
	assert.Equal(t, "2h0m0s", (&Order{WorkMinutes: 120}).Duration().String())
}

func TestOrderInterval(t *testing.T) {
	start := ts(1, 9, 0)
	o := &Order{WorkMinutes: 90, Start: &start}

	s, e, ok := o.Interval()
	require.True(t, ok)
	assert.Equal(t, ts(1, 9, 0), s)
	assert.Equal(t, ts(1, 10, 30), e)

	_, _, ok = (&Order{WorkMinutes: 90}).Interval()
	assert.False(t, ok)
}

func TestScheduleClone_OrdersIndependent(t *testing.T) {
	start := ts(1, 9, 0)
	emp := &Employee{Name: "Ann"}
	s := &Schedule{
		Employees: []*Employee{emp},
		Orders:    []*Order{{ProductName: "Widget-A", Employee: emp, Start: &start}},
	}

	clone := s.Clone()
	later := ts(2, 9, 0)
	clone.Orders[0].Start = &later
	clone.Orders[0].Employee = nil

	assert.Equal(t, ts(1, 9, 0), *s.Orders[0].Start)
	assert.Equal(t, emp, s.Orders[0].Employee)
	// Reference data stays shared.
	assert.Equal(t, s.Employees[0], clone.Employees[0])
}
