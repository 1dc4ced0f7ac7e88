package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultilayoutGroupOptions(t *testing.T) {
	group := NewMultilayoutGroup(2)
	group.Add(1, 4)
	group.Add(0, 1)
	group.Add(1, 5)

	if diff := cmp.Diff([]int{0, 1}, group.OptionValues()); diff != "" {
		t.Fatalf("unexpected option values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, group.Count(1)); diff != "" {
		t.Fatalf("unexpected option count (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(0, group.Count(7)); diff != "" {
		t.Fatalf("unexpected count for unknown option (-want +got):\n%s", diff)
	}
}
