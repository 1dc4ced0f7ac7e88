package app

import "kle-placer/internal/types"

type ValidateRequest struct {
	LayoutPath string
	Formats    types.ReferenceFormats
}

type ValidateResult struct {
	Name       string
	KeyCount   int
	GroupCount int
}

type PlaceRequest struct {
	LayoutPath string
	BoardPath  string
	// OutputPath receives the updated board; BoardPath is overwritten
	// when empty.
	OutputPath string
	ReportDir  string
	Formats    types.ReferenceFormats
	DryRun     bool
}

type PlaceResult struct {
	Placed     int
	KeyCount   int
	BoardPath  string
	Placements []types.Placement
	Resolution types.ResolutionReport
}

type InspectRequest struct {
	LayoutPath   string
	SwitchFormat string
}

type InspectKey struct {
	Index     int
	Reference string
	Key       types.Key
	Group     *types.MultilayoutRef
}

type InspectResult struct {
	Name       string
	Parsed     int
	Keys       []InspectKey
	Resolution types.ResolutionReport
}
