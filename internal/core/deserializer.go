package core

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"kle-placer/internal/shared"
	"kle-placer/internal/types"
)

// defaultAlignment is the KLE legend alignment used until a row sets "a".
const defaultAlignment = 4

// labelMap maps a legend line index to a label slot for each KLE
// alignment value; -1 drops the line.
var labelMap = [8][types.LabelCount]int{
	{0, 6, 2, 8, 9, 11, 3, 5, 1, 4, 7, 10},
	{1, 7, -1, -1, 9, 11, 4, -1, -1, -1, -1, 10},
	{3, -1, 5, -1, 9, 11, -1, -1, 4, -1, -1, 10},
	{4, -1, -1, -1, 9, 11, -1, -1, -1, -1, -1, 10},
	{0, 6, 2, 8, 10, -1, 3, 5, 1, 4, 7, -1},
	{1, 7, -1, -1, 10, -1, 4, -1, -1, -1, -1, -1},
	{3, -1, 5, -1, 10, -1, -1, -1, 4, -1, -1, -1},
	{4, -1, -1, -1, 10, -1, -1, -1, -1, -1, -1, -1},
}

// Deserializer turns decoded KLE JSON into a flat key list with absolute
// coordinates.
type Deserializer struct{}

func NewDeserializer() Deserializer {
	return Deserializer{}
}

type cursor struct {
	key       types.Key
	clusterX  float64
	clusterY  float64
	alignment int
}

func newCursor() cursor {
	return cursor{
		key:       types.Key{Width: 1, Height: 1},
		alignment: defaultAlignment,
	}
}

func (d Deserializer) Deserialize(ctx context.Context, document any) (types.Keyboard, error) {
	rows, ok := document.([]any)
	if !ok {
		return types.Keyboard{}, shared.MalformedLayout("top-level value must be a list of rows, got %s", describe(document))
	}

	keyboard := types.Keyboard{Keys: []types.Key{}}
	cur := newCursor()
	for r, raw := range rows {
		switch row := raw.(type) {
		case []any:
			if err := d.readRow(&keyboard, &cur, r, row); err != nil {
				return types.Keyboard{}, err
			}
			cur.key.Y++
			cur.key.X = cur.key.RotationX
		case map[string]any:
			if r != 0 {
				return types.Keyboard{}, shared.MalformedLayout("row %d: metadata object is only allowed as the first row", r)
			}
			keyboard.Meta = readMeta(row)
		default:
			return types.Keyboard{}, shared.MalformedLayout("row %d: expected a list of cells, got %s", r, describe(raw))
		}
	}
	log.Ctx(ctx).Debug().Int("keys", len(keyboard.Keys)).Str("name", keyboard.Meta.Name).Msg("layout deserialized")
	return keyboard, nil
}

func (d Deserializer) readRow(keyboard *types.Keyboard, cur *cursor, r int, row []any) error {
	for c, raw := range row {
		switch cell := raw.(type) {
		case string:
			key, err := cur.emit(cell)
			if err != nil {
				return shared.MalformedLayout("row %d cell %d: %s", r, c, err)
			}
			keyboard.Keys = append(keyboard.Keys, key)
		case map[string]any:
			if err := cur.apply(c, cell); err != nil {
				return shared.MalformedLayout("row %d cell %d: %s", r, c, err)
			}
		default:
			return shared.MalformedLayout("row %d cell %d: expected a legend string or directive object, got %s", r, c, describe(raw))
		}
	}
	return nil
}

// emit produces a key from the current state and advances the cursor.
func (cur *cursor) emit(legend string) (types.Key, error) {
	key := cur.key
	if key.Width <= 0 || key.Height <= 0 {
		return types.Key{}, fmt.Errorf("key size must be positive, got %gx%g", key.Width, key.Height)
	}
	if key.Width2 == 0 {
		key.Width2 = key.Width
	}
	if key.Height2 == 0 {
		key.Height2 = key.Height
	}
	key.Labels = reorderLabels(legend, cur.alignment)

	cur.key.X += cur.key.Width
	cur.key.Width, cur.key.Height = 1, 1
	cur.key.X2, cur.key.Y2, cur.key.Width2, cur.key.Height2 = 0, 0, 0, 0
	cur.key.Nub, cur.key.Stepped, cur.key.Decal = false, false, false
	return key, nil
}

func (cur *cursor) apply(c int, props map[string]any) error {
	for _, name := range []string{"r", "rx", "ry"} {
		if _, ok := props[name]; ok && c != 0 {
			return fmt.Errorf("rotation (%s) can only be specified on the first key in a row", name)
		}
	}
	if v, ok, err := numberProp(props, "r"); err != nil {
		return err
	} else if ok {
		cur.key.RotationAngle = v
	}
	if v, ok, err := numberProp(props, "rx"); err != nil {
		return err
	} else if ok {
		cur.key.RotationX = v
		cur.clusterX = v
		cur.key.X, cur.key.Y = cur.clusterX, cur.clusterY
	}
	if v, ok, err := numberProp(props, "ry"); err != nil {
		return err
	} else if ok {
		cur.key.RotationY = v
		cur.clusterY = v
		cur.key.X, cur.key.Y = cur.clusterX, cur.clusterY
	}
	if v, ok, err := numberProp(props, "a"); err != nil {
		return err
	} else if ok {
		align := int(v)
		if float64(align) != v || align < 0 || align >= len(labelMap) {
			return fmt.Errorf("alignment %v out of range 0-%d", v, len(labelMap)-1)
		}
		cur.alignment = align
	}

	offsets := []struct {
		name  string
		apply func(float64)
	}{
		{"x", func(v float64) { cur.key.X += v }},
		{"y", func(v float64) { cur.key.Y += v }},
		{"w", func(v float64) { cur.key.Width, cur.key.Width2 = v, v }},
		{"h", func(v float64) { cur.key.Height, cur.key.Height2 = v, v }},
		{"x2", func(v float64) { cur.key.X2 = v }},
		{"y2", func(v float64) { cur.key.Y2 = v }},
		{"w2", func(v float64) { cur.key.Width2 = v }},
		{"h2", func(v float64) { cur.key.Height2 = v }},
	}
	for _, offset := range offsets {
		v, ok, err := numberProp(props, offset.name)
		if err != nil {
			return err
		}
		if ok {
			offset.apply(v)
		}
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"l", &cur.key.Stepped},
		{"n", &cur.key.Nub},
		{"d", &cur.key.Decal},
		{"g", &cur.key.Ghost},
	}
	for _, flag := range flags {
		raw, ok := props[flag.name]
		if !ok {
			continue
		}
		value, isBool := raw.(bool)
		if !isBool {
			return fmt.Errorf("directive %q must be a boolean, got %s", flag.name, describe(raw))
		}
		*flag.dst = value
	}
	return nil
}

func reorderLabels(legend string, alignment int) types.Labels {
	var labels types.Labels
	for i, text := range strings.Split(legend, "\n") {
		if i >= types.LabelCount || text == "" {
			continue
		}
		if slot := labelMap[alignment][i]; slot >= 0 {
			labels.Set(types.LabelPosition(slot), text)
		}
	}
	return labels
}

func numberProp(props map[string]any, name string) (float64, bool, error) {
	raw, ok := props[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("directive %q is not numeric: %s", name, v)
		}
		value = parsed
	default:
		return 0, false, fmt.Errorf("directive %q is not numeric, got %s", name, describe(raw))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("directive %q is not finite", name)
	}
	return value, true, nil
}

func readMeta(props map[string]any) types.KeyboardMeta {
	meta := types.KeyboardMeta{}
	for name, raw := range props {
		text, ok := raw.(string)
		if !ok {
			continue
		}
		switch name {
		case "name":
			meta.Name = text
		case "author":
			meta.Author = text
		case "notes":
			meta.Notes = text
		case "background":
			meta.Background = text
		default:
			if meta.Extra == nil {
				meta.Extra = map[string]string{}
			}
			meta.Extra[name] = text
		}
	}
	return meta
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64, json.Number:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
