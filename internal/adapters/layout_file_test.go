package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFileAdapterLoadsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"x"},[{"w":1.25},"A"]]`), 0644))

	document, err := NewLayoutFileAdapter().LoadLayout(path)
	require.NoError(t, err)
	rows, ok := document.([]any)
	require.True(t, ok)
	require.Len(t, rows, 2)

	row, ok := rows[1].([]any)
	require.True(t, ok)
	props, ok := row[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1.25"), props["w"])
}

func TestLayoutFileAdapterMissingFile(t *testing.T) {
	_, err := NewLayoutFileAdapter().LoadLayout(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestDecodeLayoutRejectsInvalidJSON(t *testing.T) {
	_, err := DecodeLayout([]byte(`[["A",]`))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "malformed layout")
}
