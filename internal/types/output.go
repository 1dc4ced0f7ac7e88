package types

// Placement records one committed key placement.
type Placement struct {
	Index      int     `yaml:"index"`
	Switch     string  `yaml:"switch"`
	Stabilizer string  `yaml:"stabilizer,omitempty"`
	Position   Point   `yaml:"position"`
	PositionMM MMPoint `yaml:"position_mm"`
	Key        Key     `yaml:"-"`
}

// MMPoint is a position in millimetres, for reports only.
type MMPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Offset struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// OptionSummary describes one option of a multilayout group after resolution.
type OptionSummary struct {
	Value  int    `yaml:"value"`
	Count  int    `yaml:"count"`
	Offset Offset `yaml:"offset"`
}

// GroupResolution describes how one multilayout group was collapsed.
type GroupResolution struct {
	Group     int             `yaml:"group"`
	Canonical int             `yaml:"canonical"`
	Ambiguous bool            `yaml:"ambiguous,omitempty"`
	Options   []OptionSummary `yaml:"options"`
}

type ResolutionReport struct {
	Groups []GroupResolution `yaml:"groups"`
}

// PlacementReport is written after a placement run.
type PlacementReport struct {
	Layout     string      `yaml:"layout"`
	Board      string      `yaml:"board"`
	Completed  bool        `yaml:"completed"`
	Error      string      `yaml:"error,omitempty"`
	Placements []Placement `yaml:"placements"`
}
