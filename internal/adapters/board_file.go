package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"kle-placer/internal/ports"
	"kle-placer/internal/types"
)

const boardFileVersion = "1"

// BoardFileAdapter loads and saves YAML board documents.
type BoardFileAdapter struct{}

func NewBoardFileAdapter() BoardFileAdapter {
	return BoardFileAdapter{}
}

func (a BoardFileAdapter) Load(path string) (types.BoardFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BoardFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("board file not found").
			WithCause(err)
	}
	var board types.BoardFile
	if err := yaml.Unmarshal(data, &board); err != nil {
		return types.BoardFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse board yaml").
			WithCause(err)
	}
	seen := map[string]struct{}{}
	for _, footprint := range board.Footprints {
		if footprint.Reference == "" {
			return types.BoardFile{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("board footprint reference must not be empty")
		}
		if _, dup := seen[footprint.Reference]; dup {
			return types.BoardFile{}, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("duplicate board footprint reference: " + footprint.Reference)
		}
		seen[footprint.Reference] = struct{}{}
	}
	return board, nil
}

func (a BoardFileAdapter) Save(path string, board types.BoardFile) error {
	if board.Version == "" {
		board.Version = boardFileVersion
	}
	data, err := yaml.Marshal(board)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode board yaml").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create board directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write board file").
			WithCause(err)
	}
	return nil
}

var _ ports.BoardStorePort = BoardFileAdapter{}
