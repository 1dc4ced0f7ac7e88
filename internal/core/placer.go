package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"kle-placer/internal/ports"
	"kle-placer/internal/shared"
	"kle-placer/internal/types"
)

// Placer commits sorted keys to switch and stabilizer footprints.
//
// Placement is anchored on the first switch footprint: its current
// position is kept and every other key is placed relative to it. Key
// rotation is parsed but not applied, and diodes are not placed.
type Placer struct {
	Board ports.BoardPort
}

func NewPlacer(board ports.BoardPort) Placer {
	return Placer{Board: board}
}

// Place positions one switch per key, numbered from 1 in key order. It
// stops at the first missing switch footprint; positions set before the
// failure stay set and are returned alongside the error.
func (p Placer) Place(ctx context.Context, keys []types.Key, formats types.ReferenceFormats) ([]types.Placement, error) {
	if p.Board == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("placer requires a board")
	}
	assert.NotEmpty(ctx, formats.Switch, "switch format must be set")
	if len(keys) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("layout has no keys to place")
	}

	anchor, err := p.Board.FindFootprint(shared.FormatReference(formats.Switch, 1), true)
	if err != nil {
		return nil, err
	}
	origin := p.Board.Position(anchor).Sub(keyOffset(keys[0]))
	log.Ctx(ctx).Debug().Str("origin", origin.String()).Msg("placement origin anchored on first switch")

	if formats.Diode != "" {
		log.Ctx(ctx).Info().Str("format", formats.Diode).Msg("diode placement is not implemented, skipping diodes")
	}

	placements := make([]types.Placement, 0, len(keys))
	for i, key := range keys {
		index := i + 1
		placement, err := p.placeKey(ctx, index, key, origin, formats)
		if err != nil {
			return placements, err
		}
		placements = append(placements, placement)
	}
	log.Ctx(ctx).Debug().Int("placed", len(placements)).Msg("placement completed")
	return placements, nil
}

func (p Placer) placeKey(ctx context.Context, index int, key types.Key, origin types.Point, formats types.ReferenceFormats) (types.Placement, error) {
	reference := shared.FormatReference(formats.Switch, index)
	log.Ctx(ctx).Debug().Str("reference", reference).Msg("searching for footprint")
	switchFootprint, err := p.Board.FindFootprint(reference, true)
	if err != nil {
		return types.Placement{}, err
	}

	var stabilizer *types.Footprint
	if formats.Stabilizer != "" {
		stabilizer, err = p.Board.FindFootprint(shared.FormatReference(formats.Stabilizer, index), false)
		if err != nil {
			return types.Placement{}, err
		}
	}

	position := origin.Add(keyOffset(key))
	if err := p.Board.SetPosition(switchFootprint, position); err != nil {
		return types.Placement{}, fmt.Errorf("set position of %s: %w", reference, err)
	}
	placement := types.Placement{
		Index:      index,
		Switch:     switchFootprint.Reference,
		Position:   position,
		PositionMM: types.MMPoint{X: ToMM(position.X), Y: ToMM(position.Y)},
		Key:        key,
	}
	if stabilizer != nil {
		if err := p.Board.SetPosition(stabilizer, position); err != nil {
			return types.Placement{}, fmt.Errorf("set position of %s: %w", stabilizer.Reference, err)
		}
		placement.Stabilizer = stabilizer.Reference
	}
	if key.Rotated() {
		log.Ctx(ctx).Debug().
			Str("reference", reference).
			Float64("angle", key.RotationAngle).
			Msg("key rotation is not applied")
	}
	log.Ctx(ctx).Debug().
		Str("reference", reference).
		Str("stabilizer", placement.Stabilizer).
		Str("position", position.String()).
		Msg("footprint placed")
	return placement, nil
}

// keyOffset is the key centre relative to the layout origin in board units.
func keyOffset(key types.Key) types.Point {
	return types.Point{
		X: KeyUnits(key.X) + KeyUnits(key.Width)/2,
		Y: KeyUnits(key.Y) + KeyUnits(key.Height)/2,
	}
}
