package walker_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"nsgen/core/models"
	"nsgen/core/walker"
)

func TestWalkDiscoversOnlyDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "alpha"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "beta"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.txt"), []byte("not a namespace"), 0644))

	w := walker.NewNamespaceWalker()
	namespaces, err := w.Walk(root)
	require.NoError(t, err)

	require.Len(t, namespaces, 2)
	require.Equal(t, "alpha", namespaces[0].Name)
	require.Equal(t, "beta", namespaces[1].Name)
}

func TestWalkEmptyRoot(t *testing.T) {
	w := walker.NewNamespaceWalker()
	namespaces, err := w.Walk(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, namespaces)
}

func TestWalkMissingRoot(t *testing.T) {
	w := walker.NewNamespaceWalker()
	_, err := w.Walk(filepath.Join(t.TempDir(), "does-not-exist"))

	var ioErr *models.IOError
	require.True(t, errors.As(err, &ioErr))
}

func TestWalkExcludesOutputName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "alpha"), 0755))
	// even a directory named like the output must not count
	require.NoError(t, os.Mkdir(filepath.Join(root, "namespaces.go"), 0755))

	w := walker.NewNamespaceWalker("namespaces.go")
	namespaces, err := w.Walk(root)
	require.NoError(t, err)

	require.Len(t, namespaces, 1)
	require.Equal(t, "alpha", namespaces[0].Name)
}

func TestWalkLexicalOrder(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mu"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
	}

	w := walker.NewNamespaceWalker()
	namespaces, err := w.Walk(root)
	require.NoError(t, err)

	names := make([]string, len(namespaces))
	for i, ns := range namespaces {
		names[i] = ns.Name
	}
	require.Equal(t, []string{"alpha", "mu", "zeta"}, names)
}

func TestWalkKeepsNameVerbatim(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "MiXed_Case123"), 0755))

	w := walker.NewNamespaceWalker()
	namespaces, err := w.Walk(root)
	require.NoError(t, err)

	require.Len(t, namespaces, 1)
	require.Equal(t, "MiXed_Case123", namespaces[0].Name)
}

func TestWalkRejectsUndecodableName(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("non-UTF-8 filenames need a linux filesystem")
	}

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "bad\xffname"), 0755))

	w := walker.NewNamespaceWalker()
	_, err := w.Walk(root)

	var namingErr *models.NamingError
	require.True(t, errors.As(err, &namingErr))
}
