package ports

import "kle-placer/internal/types"

// CanonicalPolicyPort picks the option every other option of a
// multilayout group is aligned to. The boolean reports whether more than
// one option could have been picked.
type CanonicalPolicyPort interface {
	SelectCanonical(group types.MultilayoutGroup) (int, bool, error)
}
