package ports

import "kle-placer/internal/types"

type ReportPort interface {
	WritePlacementReport(report types.PlacementReport) error
	WriteResolutionReport(report types.ResolutionReport) error
}
