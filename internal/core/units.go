package core

import "math"

const (
	// NanometresPerMM converts millimetres to board units.
	NanometresPerMM = 1_000_000

	// KeyPitch is one key-unit (19.05 mm) in board units.
	KeyPitch = 19_050_000
)

func FromMM(mm float64) int64 {
	return int64(math.Round(mm * NanometresPerMM))
}

func ToMM(nm int64) float64 {
	return float64(nm) / NanometresPerMM
}

// KeyUnits converts a key-unit distance to board units, rounded to the
// nearest nanometre.
func KeyUnits(units float64) int64 {
	return int64(math.Round(units * KeyPitch))
}
