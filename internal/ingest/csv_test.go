package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("parses header and rows with 1-based ids", func(t *testing.T) {
		input := "x,y,z\n1.5,2,-3\n0,0,0\n4,5.25,6\n"

		ds, err := Read(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []string{"x", "y", "z"}, ds.Names)
		require.Len(t, ds.Points, 3)
		assert.Equal(t, int64(1), ds.Points[0].ID)
		assert.Equal(t, int64(3), ds.Points[2].ID)
		assert.Equal(t, []float64{1.5, 2, -3}, ds.Points[0].Attrs)
		assert.Equal(t, []float64{4, 5.25, 6}, ds.Points[2].Attrs)
	})

	t.Run("header only yields empty dataset", func(t *testing.T) {
		ds, err := Read(strings.NewReader("a,b\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ds.Names)
		assert.Empty(t, ds.Points)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "header")
	})

	t.Run("non-numeric cell names row and column", func(t *testing.T) {
		_, err := Read(strings.NewReader("x,y\n1,2\n3,oops\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 3")
		assert.Contains(t, err.Error(), `column "y"`)
		assert.Contains(t, err.Error(), "oops")
	})

	t.Run("ragged row is an error", func(t *testing.T) {
		_, err := Read(strings.NewReader("x,y\n1,2\n3\n"))
		require.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	t.Run("round trip through a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "points.csv")
		require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n3,4\n"), 0o644))

		ds, err := ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, ds.Points, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
		require.Error(t, err)
	})

	t.Run("parse error carries the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		require.NoError(t, os.WriteFile(path, []byte("a\nnope\n"), 0o644))

		_, err := ReadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.csv")
	})
}
