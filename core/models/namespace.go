package models

// Namespace is one discovered subdirectory of the namespace root. The name is
// taken verbatim from the directory; ImportPath is filled in by the generator
// once the owning module path is known.
type Namespace struct {
	Name       string
	Path       string
	ImportPath string
}
