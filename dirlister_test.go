package dirlister

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList_ModuleRoot(t *testing.T) {
	require := require.New(t)

	files, err := List("./")
	require.NoError(err)

	var found bool
	for _, f := range files {
		if f.Name() == "go.mod" {
			found = true
			require.False(f.IsDir())
			require.Equal("./go.mod", f.Path())
		}
		if f.Name() == "internal" {
			require.True(f.IsDir())
		}
	}
	require.True(found, "go.mod が一覧に含まれていません")

	content, err := ReadFile("./go.mod")
	require.NoError(err)
	require.True(strings.HasPrefix(string(content), "module"))
}

func TestList_PathIsNotCleaned(t *testing.T) {
	require := require.New(t)

	files, err := List("internal/../cmd")
	require.NoError(err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path())
	}
	require.Contains(paths, "internal/../cmd/dirlister")
}

func TestList_NotFound(t *testing.T) {
	require := require.New(t)

	_, err := List(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(err, ErrNotFound)

	var le *ListError
	require.True(errors.As(err, &le))
	require.Equal(KindNotFound, le.Kind)
	require.Equal("Not Found", le.Error())
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, fs.ErrNotExist)
}
