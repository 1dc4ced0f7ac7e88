package ports

import "kle-placer/internal/types"

// BoardPort is the capability the placer needs from the board editor.
type BoardPort interface {
	// FindFootprint looks a footprint up by reference. When required is
	// true a missing footprint is an error; otherwise (nil, nil) is
	// returned.
	FindFootprint(reference string, required bool) (*types.Footprint, error)

	Position(footprint *types.Footprint) types.Point
	SetPosition(footprint *types.Footprint, position types.Point) error

	// Rotate turns the footprint about anchor by degrees, clockwise as
	// seen on screen.
	Rotate(footprint *types.Footprint, anchor types.Point, degrees float64) error
}

// BoardEditorPort is a board that can be edited in memory and
// snapshotted back into a document.
type BoardEditorPort interface {
	BoardPort
	Snapshot() types.BoardFile
}

type BoardStorePort interface {
	Load(path string) (types.BoardFile, error)
	Save(path string, board types.BoardFile) error
}
