package types

import "github.com/mohae/deepcopy"

// Key is one physical key position in key-units.
type Key struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	X2      float64 `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2      float64 `json:"y2,omitempty" yaml:"y2,omitempty"`
	Width2  float64 `json:"width2" yaml:"width2"`
	Height2 float64 `json:"height2" yaml:"height2"`

	RotationAngle float64 `json:"rotation_angle" yaml:"rotation_angle"`
	RotationX     float64 `json:"rotation_x" yaml:"rotation_x"`
	RotationY     float64 `json:"rotation_y" yaml:"rotation_y"`

	Labels Labels `json:"labels" yaml:"labels"`

	Stepped bool `json:"stepped,omitempty" yaml:"stepped,omitempty"`
	Nub     bool `json:"nub,omitempty" yaml:"nub,omitempty"`
	Decal   bool `json:"decal,omitempty" yaml:"decal,omitempty"`
	Ghost   bool `json:"ghost,omitempty" yaml:"ghost,omitempty"`
}

func (k Key) Rotated() bool {
	return k.RotationAngle != 0
}

// CenterX and CenterY return the key centre in key-units.
func (k Key) CenterX() float64 {
	return k.X + k.Width/2
}

func (k Key) CenterY() float64 {
	return k.Y + k.Height/2
}

// Translate moves the key by (dx, dy). The rotation anchor moves with
// the key when the key is rotated.
func (k *Key) Translate(dx, dy float64) {
	k.X += dx
	k.Y += dy
	if k.Rotated() {
		k.RotationX += dx
		k.RotationY += dy
	}
}

// MultilayoutRef identifies the multilayout group and option a key belongs to.
type MultilayoutRef struct {
	Group  int
	Option int
}

// Multilayout reports whether the key belongs to a multilayout group.
// A group slot that does not hold an integer does not count. An absent or
// non-numeric option slot selects option 0.
func (k Key) Multilayout() (MultilayoutRef, bool) {
	if _, present := k.Labels.Get(LabelMultilayoutGroup); !present {
		return MultilayoutRef{}, false
	}
	group, ok := k.Labels.Int(LabelMultilayoutGroup)
	if !ok {
		return MultilayoutRef{}, false
	}
	option, _ := k.Labels.Int(LabelMultilayoutOption)
	return MultilayoutRef{Group: group, Option: option}, true
}

// KeyboardMeta carries the optional metadata object of a KLE layout.
type KeyboardMeta struct {
	Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
	Author     string            `json:"author,omitempty" yaml:"author,omitempty"`
	Notes      string            `json:"notes,omitempty" yaml:"notes,omitempty"`
	Background string            `json:"background,omitempty" yaml:"background,omitempty"`
	Extra      map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Keyboard is a full layout. Key order only matters after resolution and
// sorting.
type Keyboard struct {
	Meta KeyboardMeta `json:"meta" yaml:"meta"`
	Keys []Key        `json:"keys" yaml:"keys"`
}

// Clone returns an independent deep copy of the keyboard.
func (k Keyboard) Clone() Keyboard {
	return deepcopy.Copy(k).(Keyboard)
}
