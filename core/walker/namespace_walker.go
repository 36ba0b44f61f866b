package walker

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"nsgen/core/logger"
	"nsgen/core/models"
)

type NamespaceWalker interface {
	Walk(root string) ([]models.Namespace, error)
}

type NamespaceWalkerImpl struct {
	Exclude []string
}

// NewNamespaceWalker builds a walker that skips entries with the given names.
// The aggregator output lives inside the scanned root, so its base name is
// always passed here to keep it from ever counting as a namespace.
func NewNamespaceWalker(exclude ...string) *NamespaceWalkerImpl {
	return &NamespaceWalkerImpl{Exclude: exclude}
}

// Walk lists the immediate entries of root and returns one Namespace per
// subdirectory. Plain files are skipped. Results are in lexical name order,
// as returned by os.ReadDir, so repeated runs over an unchanged root yield
// the same sequence on every platform.
func (w *NamespaceWalkerImpl) Walk(root string) ([]models.Namespace, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &models.IOError{Op: "list", Path: root, Err: err}
	}

	var namespaces []models.Namespace
	for _, entry := range entries {
		name := entry.Name()
		if w.isExcluded(name) {
			logger.Debug("Skipping excluded entry: %s", name)
			continue
		}

		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err != nil {
			return nil, &models.IOError{Op: "stat", Path: path, Err: err}
		}
		if !info.IsDir() {
			continue
		}

		if !utf8.ValidString(name) {
			return nil, &models.NamingError{Path: root, Name: name}
		}

		namespaces = append(namespaces, models.Namespace{Name: name, Path: path})
		logger.Debug("Discovered namespace: %s", name)
	}

	return namespaces, nil
}

func (w *NamespaceWalkerImpl) isExcluded(name string) bool {
	for _, ex := range w.Exclude {
		if name == ex {
			return true
		}
	}
	return false
}
