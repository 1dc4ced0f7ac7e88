package adapters

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kle-placer/internal/ports"
)

// LayoutFileAdapter reads KLE JSON layout files.
type LayoutFileAdapter struct{}

func NewLayoutFileAdapter() LayoutFileAdapter {
	return LayoutFileAdapter{}
}

func (a LayoutFileAdapter) LoadLayout(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("layout file not found").
			WithCause(err)
	}
	return DecodeLayout(data)
}

// DecodeLayout decodes KLE JSON, keeping numbers as json.Number.
func DecodeLayout(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var document any
	if err := decoder.Decode(&document); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("malformed layout: invalid JSON").
			WithCause(err)
	}
	return document, nil
}

var _ ports.LayoutSourcePort = LayoutFileAdapter{}
