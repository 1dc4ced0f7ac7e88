package app

import (
	"context"

	"kle-placer/internal/shared"
	"kle-placer/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	if err := validateFormats(req.Formats); err != nil {
		return ValidateResult{}, err
	}
	layout, err := s.loadResolvedLayout(ctx, req.LayoutPath)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Name:       layout.Parsed.Meta.Name,
		KeyCount:   len(layout.Resolved.Keys),
		GroupCount: len(layout.Resolution.Groups),
	}, nil
}

// validateFormats requires a switch format; stabilizer and diode formats
// are optional but must carry one slot when set.
func validateFormats(formats types.ReferenceFormats) error {
	if err := shared.ValidateReferenceFormat("switch", formats.Switch); err != nil {
		return err
	}
	if formats.Stabilizer != "" {
		if err := shared.ValidateReferenceFormat("stabilizer", formats.Stabilizer); err != nil {
			return err
		}
	}
	if formats.Diode != "" {
		if err := shared.ValidateReferenceFormat("diode", formats.Diode); err != nil {
			return err
		}
	}
	return nil
}
