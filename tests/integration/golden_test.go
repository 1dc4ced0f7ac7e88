package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kle-placer/internal/adapters"
	"kle-placer/internal/core"
	"kle-placer/internal/policies"
	"kle-placer/internal/types"
	"kle-placer/tests/testutil"
)

type pipelineResult struct {
	Layout     types.Keyboard
	Resolution types.ResolutionReport
	Placements []types.Placement
	Board      *adapters.MemoryBoard
}

func runPipeline(t *testing.T, root string, layoutName string, boardName string) pipelineResult {
	t.Helper()
	document, err := adapters.NewLayoutFileAdapter().LoadLayout(filepath.Join(root, "fixtures", layoutName))
	require.NoError(t, err)
	parsed, err := core.NewDeserializer().Deserialize(t.Context(), document)
	require.NoError(t, err)

	resolver := core.NewMultilayoutResolver(policies.NewCanonicalPolicy())
	resolved, report, err := resolver.Resolve(t.Context(), parsed)
	require.NoError(t, err)
	core.SortKeys(resolved.Keys)

	boardFile, err := adapters.NewBoardFileAdapter().Load(filepath.Join(root, "fixtures", boardName))
	require.NoError(t, err)
	board := adapters.NewMemoryBoard(boardFile)
	placements, err := core.NewPlacer(board).Place(t.Context(), resolved.Keys, types.DefaultReferenceFormats())
	require.NoError(t, err)

	return pipelineResult{Layout: resolved, Resolution: report, Placements: placements, Board: board}
}

// TestGoldenPlacement runs the full pipeline on the multilayout fixture and
// compares the reports and the saved board against committed golden files.
// Missing golden files are written so they can be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenPlacement(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	result := runPipeline(t, root, "multilayout.json", "multilayout-board.yaml")

	outDir := t.TempDir()
	output := adapters.NewOutputFileAdapter(outDir)
	require.NoError(t, output.WritePlacementReport(types.PlacementReport{
		Layout:     "fixtures/multilayout.json",
		Board:      "board.yaml",
		Completed:  true,
		Placements: result.Placements,
	}))
	require.NoError(t, output.WriteResolutionReport(result.Resolution))
	require.NoError(t, adapters.NewBoardFileAdapter().Save(filepath.Join(outDir, "board.yaml"), result.Board.Snapshot()))

	goldenFiles := map[string]string{
		adapters.PlacementReportFile:  filepath.Join(outDir, adapters.PlacementReportFile),
		adapters.ResolutionReportFile: filepath.Join(outDir, adapters.ResolutionReportFile),
		"board.yaml":                  filepath.Join(outDir, "board.yaml"),
	}

	for name, actualPath := range goldenFiles {
		t.Run(name, func(t *testing.T) {
			actual, err := os.ReadFile(actualPath)
			require.NoError(t, err)

			goldenPath := filepath.Join(goldenDir, name)
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(actual),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
		})
	}
}

// TestGoldenPlacementStructure checks properties of the pipeline output
// that hold independent of exact coordinates.
func TestGoldenPlacementStructure(t *testing.T) {
	root := testutil.RepoRoot(t)
	result := runPipeline(t, root, "multilayout.json", "multilayout-board.yaml")

	t.Run("every key is placed once", func(t *testing.T) {
		require.Len(t, result.Placements, len(result.Layout.Keys))
		seen := map[string]struct{}{}
		for _, placement := range result.Placements {
			_, dup := seen[placement.Switch]
			assert.False(t, dup, "switch %s placed twice", placement.Switch)
			seen[placement.Switch] = struct{}{}
		}
	})

	t.Run("layout is normalized", func(t *testing.T) {
		x, y := core.Bounds(result.Layout.Keys)
		assert.Equal(t, 0.0, x)
		assert.Equal(t, 0.0, y)
	})

	t.Run("placements follow row-major order", func(t *testing.T) {
		for i := 1; i < len(result.Placements); i++ {
			prev, cur := result.Placements[i-1].Position, result.Placements[i].Position
			if cur.Y == prev.Y {
				assert.GreaterOrEqual(t, cur.X, prev.X, "placement %d", i+1)
			} else {
				assert.Greater(t, cur.Y, prev.Y, "placement %d", i+1)
			}
		}
	})

	t.Run("options overlap the canonical option", func(t *testing.T) {
		require.Len(t, result.Resolution.Groups, 1)
		group := result.Resolution.Groups[0]
		assert.Equal(t, 1, group.Canonical)
		assert.False(t, group.Ambiguous)
		require.Len(t, group.Options, 2)
		assert.Equal(t, types.Offset{DX: 3, DY: 2}, group.Options[0].Offset)
	})

	t.Run("anchor switch keeps its position", func(t *testing.T) {
		assert.Equal(t, types.Point{X: 100_000_000, Y: 50_000_000}, result.Placements[0].Position)
	})
}
