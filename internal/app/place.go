package app

import (
	"context"
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"kle-placer/internal/core"
	"kle-placer/internal/types"
)

// Place resolves the layout and moves the board's switch and stabilizer
// footprints. When placement fails part way, the board is still saved so
// that positions set before the failure persist, and the placement error
// is returned.
func (s Service) Place(ctx context.Context, req PlaceRequest) (PlaceResult, error) {
	boardPath := strings.TrimSpace(req.BoardPath)
	if boardPath == "" {
		return PlaceResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("board file path is required")
	}
	if err := validateFormats(req.Formats); err != nil {
		return PlaceResult{}, err
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		outputPath = boardPath
	}

	layout, err := s.loadResolvedLayout(ctx, req.LayoutPath)
	if err != nil {
		return PlaceResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("layout", req.LayoutPath).
		Int("keys", len(layout.Resolved.Keys)).
		Int("groups", len(layout.Resolution.Groups)).
		Msg("layout resolved")

	document, err := s.Boards.Load(boardPath)
	if err != nil {
		return PlaceResult{}, err
	}
	board := s.NewBoard(document)
	placements, placeErr := core.NewPlacer(board).Place(ctx, layout.Resolved.Keys, req.Formats)
	if placeErr != nil {
		log.Ctx(ctx).Error().Err(placeErr).Int("placed", len(placements)).Msg("placement aborted")
	}

	result := PlaceResult{
		Placed:     len(placements),
		KeyCount:   len(layout.Resolved.Keys),
		Placements: placements,
		Resolution: layout.Resolution,
	}
	if !req.DryRun {
		if err := s.Boards.Save(outputPath, board.Snapshot()); err != nil {
			return result, err
		}
		result.BoardPath = outputPath
	}
	if dir := strings.TrimSpace(req.ReportDir); dir != "" {
		if err := s.writeReports(dir, req.LayoutPath, result.BoardPath, placements, layout.Resolution, placeErr); err != nil {
			return result, err
		}
	}
	return result, placeErr
}

func (s Service) writeReports(dir string, layoutPath string, boardPath string, placements []types.Placement, resolution types.ResolutionReport, placeErr error) error {
	reports := s.Reports(dir)
	report := types.PlacementReport{
		Layout:     layoutPath,
		Board:      boardPath,
		Completed:  placeErr == nil,
		Placements: placements,
	}
	if placeErr != nil {
		report.Error = errorMessage(placeErr)
	}
	if err := reports.WritePlacementReport(report); err != nil {
		return err
	}
	return reports.WriteResolutionReport(resolution)
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
