package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kle-placer/internal/adapters"
	"kle-placer/internal/types"
	"kle-placer/tests/testutil"
)

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	return testutil.Fixture(t, name)
}

func copyFixture(t *testing.T, name string) string {
	t.Helper()
	return testutil.CopyFixture(t, name)
}

func footprintAt(t *testing.T, path string, reference string) types.Footprint {
	t.Helper()
	board, err := adapters.NewBoardFileAdapter().Load(path)
	require.NoError(t, err)
	for _, footprint := range board.Footprints {
		if footprint.Reference == reference {
			return footprint
		}
	}
	t.Fatalf("footprint %s not found in %s", reference, path)
	return types.Footprint{}
}
