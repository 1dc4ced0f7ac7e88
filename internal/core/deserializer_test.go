package core

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kle-placer/internal/types"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var document any
	require.NoError(t, json.Unmarshal([]byte(raw), &document))
	return document
}

type position struct {
	X, Y, W, H float64
}

func positions(keys []types.Key) []position {
	out := make([]position, 0, len(keys))
	for _, key := range keys {
		out = append(out, position{X: key.X, Y: key.Y, W: key.Width, H: key.Height})
	}
	return out
}

func TestDeserializeRowsAndColumns(t *testing.T) {
	keyboard, err := NewDeserializer().Deserialize(t.Context(), decode(t, `[["A","B"],["C"]]`))
	require.NoError(t, err)
	want := []position{{0, 0, 1, 1}, {1, 0, 1, 1}, {0, 1, 1, 1}}
	if diff := cmp.Diff(want, positions(keyboard.Keys)); diff != "" {
		t.Fatalf("unexpected positions (-want +got):\n%s", diff)
	}
	text, ok := keyboard.Keys[0].Labels.Get(types.LabelTopLeft)
	require.True(t, ok)
	assert.Equal(t, "A", text)
}

func TestDeserializeSizeAndOffsetDirectives(t *testing.T) {
	raw := `[
		[{"w":1.5},"Tab","Q",{"x":0.25},"W"],
		[{"y":0.5,"h":2},"Enter","X"]
	]`
	keyboard, err := NewDeserializer().Deserialize(t.Context(), decode(t, raw))
	require.NoError(t, err)
	want := []position{
		{0, 0, 1.5, 1},
		{1.5, 0, 1, 1},
		{2.75, 0, 1, 1},
		{0, 1.5, 1, 2},
		{1, 1.5, 1, 1},
	}
	if diff := cmp.Diff(want, positions(keyboard.Keys)); diff != "" {
		t.Fatalf("unexpected positions (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1.5, keyboard.Keys[0].Width2)
	assert.Equal(t, 1.0, keyboard.Keys[1].Width2, "secondary size falls back to primary size")
}

func TestDeserializeSecondarySize(t *testing.T) {
	raw := `[[{"w":1.25,"h":2,"w2":1.5,"h2":1,"x2":-0.25},"Enter"]]`
	keyboard, err := NewDeserializer().Deserialize(t.Context(), decode(t, raw))
	require.NoError(t, err)
	require.Len(t, keyboard.Keys, 1)
	key := keyboard.Keys[0]
	assert.Equal(t, 1.25, key.Width)
	assert.Equal(t, 2.0, key.Height)
	assert.Equal(t, 1.5, key.Width2)
	assert.Equal(t, 1.0, key.Height2)
	assert.Equal(t, -0.25, key.X2)
}

func TestDeserializeRotation(t *testing.T) {
	raw := `[
		[{"r":15,"rx":1,"ry":2},"A","B"],
		["C"]
	]`
	keyboard, err := NewDeserializer().Deserialize(t.Context(), decode(t, raw))
	require.NoError(t, err)
	want := []position{{1, 2, 1, 1}, {2, 2, 1, 1}, {1, 3, 1, 1}}
	if diff := cmp.Diff(want, positions(keyboard.Keys)); diff != "" {
		t.Fatalf("unexpected positions (-want +got):\n%s", diff)
	}
	for _, key := range keyboard.Keys {
		assert.Equal(t, 15.0, key.RotationAngle)
		assert.Equal(t, 1.0, key.RotationX)
		assert.Equal(t, 2.0, key.RotationY)
	}
}

func TestDeserializeLabelAlignment(t *testing.T) {
	raw := `[
		["Back\n\n\n\n\n\n2\n1"],
		[{"a":0},"top\nbottom"]
	]`
	keyboard, err := NewDeserializer().Deserialize(t.Context(), decode(t, raw))
	require.NoError(t, err)

	ref, ok := keyboard.Keys[0].Multilayout()
	require.True(t, ok)
	assert.Equal(t, types.MultilayoutRef{Group: 2, Option: 1}, ref)

	text, ok := keyboard.Keys[1].Labels.Get(types.LabelTopLeft)
	require.True(t, ok)
	assert.Equal(t, "top", text)
	text, ok = keyboard.Keys[1].Labels.Get(types.LabelBottomLeft)
	require.True(t, ok)
	assert.Equal(t, "bottom", text)
}

func TestDeserializeFlagsResetAfterKey(t *testing.T) {
	raw := `[[{"n":true,"l":true,"g":true},"F","J"]]`
	keyboard, err := NewDeserializer().Deserialize(t.Context(), decode(t, raw))
	require.NoError(t, err)
	assert.True(t, keyboard.Keys[0].Nub)
	assert.True(t, keyboard.Keys[0].Stepped)
	assert.False(t, keyboard.Keys[1].Nub)
	assert.False(t, keyboard.Keys[1].Stepped)
	assert.True(t, keyboard.Keys[1].Ghost, "ghost carries over")
}

func TestDeserializeMetadata(t *testing.T) {
	raw := `[{"name":"Sixty","author":"me","switchMount":"cherry"},["A"]]`
	keyboard, err := NewDeserializer().Deserialize(t.Context(), decode(t, raw))
	require.NoError(t, err)
	assert.Equal(t, "Sixty", keyboard.Meta.Name)
	assert.Equal(t, "me", keyboard.Meta.Author)
	assert.Equal(t, "cherry", keyboard.Meta.Extra["switchMount"])
	require.Len(t, keyboard.Keys, 1)
	assert.Equal(t, 0.0, keyboard.Keys[0].Y)
}

func TestDeserializeJSONNumbers(t *testing.T) {
	document := []any{
		[]any{map[string]any{"w": json.Number("2.25")}, "Shift", "Z"},
	}
	keyboard, err := NewDeserializer().Deserialize(t.Context(), document)
	require.NoError(t, err)
	assert.Equal(t, 2.25, keyboard.Keys[0].Width)
	assert.Equal(t, 2.25, keyboard.Keys[1].X)
}

func TestDeserializeMalformed(t *testing.T) {
	tests := []struct {
		name     string
		document any
		contains string
	}{
		{name: "top-level object", document: map[string]any{"rows": []any{}}, contains: "top-level"},
		{name: "row is a string", document: []any{"A"}, contains: "row 0"},
		{name: "metadata after first row", document: decode(t, `[["A"],{"name":"x"}]`), contains: "row 1"},
		{name: "non-numeric width", document: decode(t, `[[{"w":"wide"},"A"]]`), contains: `"w"`},
		{name: "rotation after first cell", document: decode(t, `[["A",{"r":10},"B"]]`), contains: "first key in a row"},
		{name: "cell is a number", document: decode(t, `[["A",3]]`), contains: "cell 1"},
		{name: "zero width", document: decode(t, `[[{"w":0},"A"]]`), contains: "positive"},
		{name: "alignment out of range", document: decode(t, `[[{"a":9},"A"]]`), contains: "alignment"},
		{name: "bad flag", document: decode(t, `[[{"n":1},"A"]]`), contains: "boolean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDeserializer().Deserialize(t.Context(), tt.document)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.True(t, strings.Contains(err.Error(), "malformed layout"), err.Error())
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
