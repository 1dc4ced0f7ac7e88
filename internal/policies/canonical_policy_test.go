package policies

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kle-placer/internal/types"
)

func groupWithCounts(counts map[int]int) types.MultilayoutGroup {
	group := types.NewMultilayoutGroup(0)
	member := 0
	for option, count := range counts {
		for i := 0; i < count; i++ {
			group.Add(option, member)
			member++
		}
	}
	return group
}

func TestSelectCanonical(t *testing.T) {
	tests := []struct {
		name      string
		counts    map[int]int
		canonical int
		ambiguous bool
	}{
		{name: "equal counts pick default", counts: map[int]int{0: 2, 1: 2, 2: 2}, canonical: 0},
		{name: "equal counts without default pick lowest", counts: map[int]int{3: 1, 2: 1}, canonical: 2},
		{name: "single option", counts: map[int]int{4: 3}, canonical: 4},
		{name: "largest option wins", counts: map[int]int{0: 1, 1: 2}, canonical: 1},
		{name: "largest option wins over default", counts: map[int]int{0: 3, 1: 1, 2: 2}, canonical: 0},
		{name: "tie at maximum picks lowest value", counts: map[int]int{0: 1, 2: 2, 1: 2}, canonical: 1, ambiguous: true},
	}
	policy := NewCanonicalPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, ambiguous, err := policy.SelectCanonical(groupWithCounts(tt.counts))
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, canonical)
			assert.Equal(t, tt.ambiguous, ambiguous)
		})
	}
}

func TestSelectCanonicalEmptyGroup(t *testing.T) {
	_, _, err := NewCanonicalPolicy().SelectCanonical(types.NewMultilayoutGroup(5))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
