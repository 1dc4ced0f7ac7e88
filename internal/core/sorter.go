package core

import (
	"math"
	"sort"

	"kle-placer/internal/types"
)

// SortKeys orders keys row by row, left to right, by key centre. Keys
// whose vertical centres lie within half the smallest key height of a
// row's first centre share that row. The sort is stable.
func SortKeys(keys []types.Key) {
	if len(keys) < 2 {
		return
	}
	rows := rowBands(keys)
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if rows[ka] != rows[kb] {
			return rows[ka] < rows[kb]
		}
		return keys[ka].CenterX() < keys[kb].CenterX()
	})
	sorted := make([]types.Key, len(keys))
	for i, index := range order {
		sorted[i] = keys[index]
	}
	copy(keys, sorted)
}

// RowTolerance is the largest vertical centre distance two keys of the
// same row may have.
func RowTolerance(keys []types.Key) float64 {
	smallest := math.Inf(1)
	for _, key := range keys {
		smallest = math.Min(smallest, key.Height)
	}
	if math.IsInf(smallest, 1) {
		return 0
	}
	return smallest / 2
}

func rowBands(keys []types.Key) []int {
	tolerance := RowTolerance(keys)
	byCenter := make([]int, len(keys))
	for i := range byCenter {
		byCenter[i] = i
	}
	sort.SliceStable(byCenter, func(a, b int) bool {
		return keys[byCenter[a]].CenterY() < keys[byCenter[b]].CenterY()
	})

	bands := make([]int, len(keys))
	band := -1
	start := 0.0
	for _, index := range byCenter {
		center := keys[index].CenterY()
		if band < 0 || center-start > tolerance {
			band++
			start = center
		}
		bands[index] = band
	}
	return bands
}
