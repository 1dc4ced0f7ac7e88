package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"kle-placer/internal/types"
	"kle-placer/tests/testutil"
)

func TestPlaceCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outDir := t.TempDir()
	boardOut := filepath.Join(outDir, "board.yaml")

	cmd := exec.Command("go", "run", "./cmd/kle-placer", "place",
		"--layout", "fixtures/grid-2x2.json",
		"--board", "fixtures/grid-2x2-board.yaml",
		"--board-output", boardOut,
		"--report-dir", outDir,
		"--log-file", filepath.Join(outDir, "kle-placer.log"),
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, filepath.Join(outDir, "placement.yaml"))
	require.FileExists(t, filepath.Join(outDir, "resolution.yaml"))

	data, err := os.ReadFile(boardOut)
	require.NoError(t, err)
	var board types.BoardFile
	require.NoError(t, yaml.Unmarshal(data, &board))
	positions := map[string]types.Point{}
	for _, footprint := range board.Footprints {
		positions[footprint.Reference] = footprint.Position
	}
	assert.Equal(t, types.Point{X: 69_050_000, Y: 59_050_000}, positions["SW4"])
}

func TestPlaceCommandMissingFootprintE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/kle-placer", "place",
		"--layout", "fixtures/multilayout.json",
		"--board", "fixtures/grid-2x2-board.yaml",
		"--dry-run",
	)
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	require.Error(t, err, string(out))
	assert.Contains(t, string(out), "SW5")
}
