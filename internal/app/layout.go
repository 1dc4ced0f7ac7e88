package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kle-placer/internal/core"
	"kle-placer/internal/types"
)

// resolvedLayout is a parsed layout together with its resolved, sorted copy.
type resolvedLayout struct {
	Parsed     types.Keyboard
	Resolved   types.Keyboard
	Resolution types.ResolutionReport
}

func (s Service) loadResolvedLayout(ctx context.Context, path string) (resolvedLayout, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return resolvedLayout{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("layout file path is required")
	}
	document, err := s.Layouts.LoadLayout(path)
	if err != nil {
		return resolvedLayout{}, err
	}
	parsed, err := core.NewDeserializer().Deserialize(ctx, document)
	if err != nil {
		return resolvedLayout{}, err
	}
	resolved, report, err := core.NewMultilayoutResolver(s.Policy).Resolve(ctx, parsed)
	if err != nil {
		return resolvedLayout{}, err
	}
	core.SortKeys(resolved.Keys)
	return resolvedLayout{Parsed: parsed, Resolved: resolved, Resolution: report}, nil
}
