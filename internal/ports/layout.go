package ports

// LayoutSourcePort reads a KLE layout and returns the decoded JSON document.
type LayoutSourcePort interface {
	LoadLayout(path string) (any, error)
}
