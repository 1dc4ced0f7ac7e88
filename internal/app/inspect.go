package app

import (
	"context"

	"kle-placer/internal/shared"
	"kle-placer/internal/types"
)

// Inspect resolves a layout without touching a board and lists keys in
// placement order with the reference each would be assigned.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	format := req.SwitchFormat
	if format == "" {
		format = types.DefaultSwitchFormat
	}
	if err := shared.ValidateReferenceFormat("switch", format); err != nil {
		return InspectResult{}, err
	}
	layout, err := s.loadResolvedLayout(ctx, req.LayoutPath)
	if err != nil {
		return InspectResult{}, err
	}

	keys := make([]InspectKey, 0, len(layout.Resolved.Keys))
	for i, key := range layout.Resolved.Keys {
		entry := InspectKey{
			Index:     i + 1,
			Reference: shared.FormatReference(format, i+1),
			Key:       key,
		}
		if ref, ok := key.Multilayout(); ok {
			entry.Group = &ref
		}
		keys = append(keys, entry)
	}
	return InspectResult{
		Name:       layout.Parsed.Meta.Name,
		Parsed:     len(layout.Parsed.Keys),
		Keys:       keys,
		Resolution: layout.Resolution,
	}, nil
}
