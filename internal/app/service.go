package app

import (
	"kle-placer/internal/adapters"
	"kle-placer/internal/policies"
	"kle-placer/internal/ports"
	"kle-placer/internal/types"
)

type Service struct {
	Layouts  ports.LayoutSourcePort
	Boards   ports.BoardStorePort
	Policy   ports.CanonicalPolicyPort
	NewBoard func(types.BoardFile) ports.BoardEditorPort
	Reports  func(dir string) ports.ReportPort
}

func NewService() Service {
	return Service{
		Layouts: adapters.NewLayoutFileAdapter(),
		Boards:  adapters.NewBoardFileAdapter(),
		Policy:  policies.NewCanonicalPolicy(),
		NewBoard: func(board types.BoardFile) ports.BoardEditorPort {
			return adapters.NewMemoryBoard(board)
		},
		Reports: func(dir string) ports.ReportPort {
			return adapters.NewOutputFileAdapter(dir)
		},
	}
}
