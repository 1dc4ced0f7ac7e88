package types

import "sort"

// MultilayoutGroup is the derived set of keys sharing one group index,
// partitioned by option value. Members are indices into the keyboard's
// key slice.
type MultilayoutGroup struct {
	Index   int
	Options map[int][]int
}

func NewMultilayoutGroup(index int) MultilayoutGroup {
	return MultilayoutGroup{Index: index, Options: map[int][]int{}}
}

func (g MultilayoutGroup) Add(option int, member int) {
	g.Options[option] = append(g.Options[option], member)
}

// OptionValues returns the option values in ascending order.
func (g MultilayoutGroup) OptionValues() []int {
	values := make([]int, 0, len(g.Options))
	for value := range g.Options {
		values = append(values, value)
	}
	sort.Ints(values)
	return values
}

func (g MultilayoutGroup) Count(option int) int {
	return len(g.Options[option])
}
