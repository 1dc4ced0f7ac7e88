package core

import (
	"context"
	"math"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"kle-placer/internal/ports"
	"kle-placer/internal/types"
)

// MultilayoutResolver collapses multilayout groups onto their canonical
// option and normalizes the layout so its bounding box starts at (0, 0).
//
// Non-canonical options are offset onto the canonical option but stay in
// the key list; they overlap the canonical keys after resolution.
type MultilayoutResolver struct {
	Policy ports.CanonicalPolicyPort
}

func NewMultilayoutResolver(policy ports.CanonicalPolicyPort) MultilayoutResolver {
	return MultilayoutResolver{Policy: policy}
}

// Resolve returns a resolved copy of layout; layout itself is not modified.
func (r MultilayoutResolver) Resolve(ctx context.Context, layout types.Keyboard) (types.Keyboard, types.ResolutionReport, error) {
	if r.Policy == nil {
		return types.Keyboard{}, types.ResolutionReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("multilayout resolver requires a canonical policy")
	}
	resolved := layout.Clone()
	keys := resolved.Keys

	groups, refs := collectGroups(ctx, keys)
	report := types.ResolutionReport{Groups: []types.GroupResolution{}}
	canonical := map[int]int{}
	for _, index := range sortedGroupIndices(groups) {
		group := groups[index]
		option, ambiguous, err := r.Policy.SelectCanonical(group)
		if err != nil {
			return types.Keyboard{}, types.ResolutionReport{}, err
		}
		if ambiguous {
			log.Ctx(ctx).Warn().
				Int("group", index).
				Int("canonical", option).
				Msg("ambiguous multilayout option: several options share the largest key count, using the lowest option value")
		}
		canonical[index] = option
		report.Groups = append(report.Groups, types.GroupResolution{
			Group:     index,
			Canonical: option,
			Ambiguous: ambiguous,
		})
	}

	// Offsets are computed the first time an option is seen, before any of
	// its members has moved.
	offsets := map[types.MultilayoutRef]types.Offset{}
	for i := range keys {
		ref, ok := refs[i]
		if !ok || ref.Option == canonical[ref.Group] {
			continue
		}
		offset, cached := offsets[ref]
		if !cached {
			group := groups[ref.Group]
			cx, cy := minXY(keys, group.Options[canonical[ref.Group]])
			ox, oy := minXY(keys, group.Options[ref.Option])
			offset = types.Offset{DX: cx - ox, DY: cy - oy}
			offsets[ref] = offset
			log.Ctx(ctx).Debug().
				Int("group", ref.Group).
				Int("option", ref.Option).
				Float64("dx", offset.DX).
				Float64("dy", offset.DY).
				Msg("multilayout offset computed")
		}
		keys[i].Translate(offset.DX, offset.DY)
	}

	for g := range report.Groups {
		entry := &report.Groups[g]
		group := groups[entry.Group]
		for _, option := range group.OptionValues() {
			entry.Options = append(entry.Options, types.OptionSummary{
				Value:  option,
				Count:  group.Count(option),
				Offset: offsets[types.MultilayoutRef{Group: entry.Group, Option: option}],
			})
		}
	}

	// Plain keys first, then multilayout keys, each in input order.
	ordered := make([]types.Key, 0, len(keys))
	for i, key := range keys {
		if _, ok := refs[i]; !ok {
			ordered = append(ordered, key)
		}
	}
	for i, key := range keys {
		if _, ok := refs[i]; ok {
			ordered = append(ordered, key)
		}
	}
	Normalize(ordered)
	resolved.Keys = ordered

	log.Ctx(ctx).Debug().
		Int("keys", len(ordered)).
		Int("groups", len(report.Groups)).
		Msg("multilayout resolved")
	return resolved, report, nil
}

// Normalize shifts keys so the smallest x and y are exactly zero.
func Normalize(keys []types.Key) {
	if len(keys) == 0 {
		return
	}
	x, y := math.Inf(1), math.Inf(1)
	for _, key := range keys {
		x = math.Min(x, key.X)
		y = math.Min(y, key.Y)
	}
	for i := range keys {
		keys[i].Translate(-x, -y)
	}
}

// Bounds returns the smallest x and y over keys.
func Bounds(keys []types.Key) (float64, float64) {
	members := make([]int, len(keys))
	for i := range keys {
		members[i] = i
	}
	return minXY(keys, members)
}

func collectGroups(ctx context.Context, keys []types.Key) (map[int]types.MultilayoutGroup, map[int]types.MultilayoutRef) {
	groups := map[int]types.MultilayoutGroup{}
	refs := map[int]types.MultilayoutRef{}
	for i, key := range keys {
		ref, ok := key.Multilayout()
		if !ok {
			if text, present := key.Labels.Get(types.LabelMultilayoutGroup); present {
				log.Ctx(ctx).Warn().
					Int("key", i).
					Str("group_label", text).
					Msg("multilayout group label is not an integer, treating key as a plain key")
			}
			continue
		}
		group, exists := groups[ref.Group]
		if !exists {
			group = types.NewMultilayoutGroup(ref.Group)
			groups[ref.Group] = group
		}
		group.Add(ref.Option, i)
		refs[i] = ref
	}
	return groups, refs
}

func sortedGroupIndices(groups map[int]types.MultilayoutGroup) []int {
	indices := make([]int, 0, len(groups))
	for index := range groups {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

func minXY(keys []types.Key, members []int) (float64, float64) {
	if len(members) == 0 {
		return 0, 0
	}
	x, y := math.Inf(1), math.Inf(1)
	for _, i := range members {
		x = math.Min(x, keys[i].X)
		y = math.Min(y, keys[i].Y)
	}
	return x, y
}
