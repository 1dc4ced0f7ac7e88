package types

import "fmt"

// Point is a board position in nanometres.
type Point struct {
	X int64 `yaml:"x" json:"x"`
	Y int64 `yaml:"y" json:"y"`
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Footprint is a placeable component located by its reference designator.
type Footprint struct {
	Reference   string  `yaml:"reference" json:"reference"`
	Value       string  `yaml:"value,omitempty" json:"value,omitempty"`
	Layer       string  `yaml:"layer,omitempty" json:"layer,omitempty"`
	Position    Point   `yaml:"position" json:"position"`
	Orientation float64 `yaml:"orientation" json:"orientation"`
}

// BoardFile is the on-disk board document.
type BoardFile struct {
	Version    string      `yaml:"version"`
	Footprints []Footprint `yaml:"footprints"`
}

// ReferenceFormats holds the naming formats for footprints. Each format
// carries exactly one "{}" slot for the 1-based key index.
type ReferenceFormats struct {
	Switch     string
	Stabilizer string
	Diode      string
}

const (
	DefaultSwitchFormat     = "SW{}"
	DefaultStabilizerFormat = "S{}"
	DefaultDiodeFormat      = "D{}"
)

func DefaultReferenceFormats() ReferenceFormats {
	return ReferenceFormats{
		Switch:     DefaultSwitchFormat,
		Stabilizer: DefaultStabilizerFormat,
		Diode:      DefaultDiodeFormat,
	}
}
