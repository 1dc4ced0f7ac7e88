package adapters

import (
	"math"

	"kle-placer/internal/ports"
	"kle-placer/internal/shared"
	"kle-placer/internal/types"
)

// MemoryBoard is an editable in-memory board. Footprints keep their
// document order.
type MemoryBoard struct {
	version    string
	footprints []*types.Footprint
	byRef      map[string]*types.Footprint
}

func NewMemoryBoard(board types.BoardFile) *MemoryBoard {
	m := &MemoryBoard{
		version: board.Version,
		byRef:   map[string]*types.Footprint{},
	}
	for _, footprint := range board.Footprints {
		fp := footprint
		m.footprints = append(m.footprints, &fp)
		m.byRef[fp.Reference] = &fp
	}
	return m
}

func (m *MemoryBoard) FindFootprint(reference string, required bool) (*types.Footprint, error) {
	footprint, ok := m.byRef[reference]
	if !ok {
		if required {
			return nil, shared.FootprintNotFound(reference)
		}
		return nil, nil
	}
	return footprint, nil
}

func (m *MemoryBoard) Position(footprint *types.Footprint) types.Point {
	return footprint.Position
}

func (m *MemoryBoard) SetPosition(footprint *types.Footprint, position types.Point) error {
	if _, err := m.FindFootprint(footprint.Reference, true); err != nil {
		return err
	}
	footprint.Position = position
	return nil
}

func (m *MemoryBoard) Rotate(footprint *types.Footprint, anchor types.Point, degrees float64) error {
	if _, err := m.FindFootprint(footprint.Reference, true); err != nil {
		return err
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := float64(footprint.Position.X - anchor.X)
	dy := float64(footprint.Position.Y - anchor.Y)
	footprint.Position = types.Point{
		X: anchor.X + int64(math.Round(dx*cos-dy*sin)),
		Y: anchor.Y + int64(math.Round(dx*sin+dy*cos)),
	}
	// Board orientation is counter-clockwise positive.
	footprint.Orientation = normalizeDegrees(footprint.Orientation - degrees)
	return nil
}

func (m *MemoryBoard) Snapshot() types.BoardFile {
	board := types.BoardFile{
		Version:    m.version,
		Footprints: make([]types.Footprint, 0, len(m.footprints)),
	}
	for _, footprint := range m.footprints {
		board.Footprints = append(board.Footprints, *footprint)
	}
	return board
}

func normalizeDegrees(value float64) float64 {
	value = math.Mod(value, 360)
	if value < 0 {
		value += 360
	}
	return value
}

var _ ports.BoardEditorPort = (*MemoryBoard)(nil)
