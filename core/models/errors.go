package models

import "fmt"

// IOError reports a filesystem failure while listing the namespace root,
// reading entry metadata, or writing the aggregator output. Always fatal to
// the build step.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NamingError reports a directory entry whose name cannot be represented as
// valid text and so cannot form a module identifier. Always fatal.
type NamingError struct {
	Path string
	Name string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("namespace name %q in %s is not valid text", e.Name, e.Path)
}
